// Package identity adapts the external identity provider (AWS Cognito) that
// owns credentials, confirmation state, and group membership for accounts.
// Provider failures are surfaced as tagged *Error values so callers can map
// them to response statuses without inspecting SDK types.
package identity

import "context"

// SignUpInput carries the attributes for a new provider account.
type SignUpInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// Tokens is the session material issued by the provider on a successful
// credential check.
type Tokens struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
}

// Provider is the boundary to the identity provider. Every call is attempted
// exactly once; no retries.
type Provider interface {
	// SignUp creates an unconfirmed account with the given attributes.
	SignUp(ctx context.Context, in *SignUpInput) error

	// ConfirmSignUp completes account confirmation with a verification code.
	ConfirmSignUp(ctx context.Context, username, code string) error

	// ResendConfirmationCode sends a fresh verification code.
	ResendConfirmationCode(ctx context.Context, username string) error

	// AddToGroup assigns the account to a provider group (role).
	AddToGroup(ctx context.Context, username, group string) error

	// UserExists reports whether an account with the given identifier exists.
	UserExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether any account carries the given email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UserAttributes returns the account's attributes keyed by provider
	// attribute name (given_name, family_name, ...).
	UserAttributes(ctx context.Context, username string) (map[string]string, error)

	// InitiateAuth performs a username/password credential check and returns
	// session tokens.
	InitiateAuth(ctx context.Context, username, password string) (*Tokens, error)

	// ForgotPassword starts the password-reset flow.
	ForgotPassword(ctx context.Context, username string) error

	// ConfirmForgotPassword completes the password-reset flow.
	ConfirmForgotPassword(ctx context.Context, username, code, newPassword string) error
}
