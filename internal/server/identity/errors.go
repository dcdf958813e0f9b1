package identity

import "errors"

// Kind enumerates the provider error categories the rest of the system
// branches on. Anything the provider reports outside these categories is
// KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindAccountExists
	KindAccountNotFound
	KindCodeMismatch
	KindCodeExpired
	KindNotAuthorized
	KindNotConfirmed
	KindInvalidParameter
)

func (k Kind) String() string {
	switch k {
	case KindAccountExists:
		return "account_exists"
	case KindAccountNotFound:
		return "account_not_found"
	case KindCodeMismatch:
		return "code_mismatch"
	case KindCodeExpired:
		return "code_expired"
	case KindNotAuthorized:
		return "not_authorized"
	case KindNotConfirmed:
		return "not_confirmed"
	case KindInvalidParameter:
		return "invalid_parameter"
	default:
		return "other"
	}
}

// Error is the tagged error returned from the provider boundary. The message
// is client-facing; the wrapped cause (if any) keeps the SDK error reachable
// for errors.As.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func wrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.cause }

// ErrorKind extracts the category from an error returned by the provider
// boundary. The second result is false when err carries no category.
func ErrorKind(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return KindOther, false
}
