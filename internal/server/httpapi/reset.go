package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/logging"
	"github.com/dmitrijs2005/campusauth/internal/server/recovery"
)

// ResetHandler is the credential-recovery entry point. Actions: initiate
// (default), confirm_reset.
type ResetHandler struct {
	recovery *recovery.Service
	logger   logging.Logger
	timeout  time.Duration
}

func NewResetHandler(svc *recovery.Service, logger logging.Logger, timeout time.Duration) *ResetHandler {
	return &ResetHandler{
		recovery: svc,
		logger:   logger.With("module", "reset_handler"),
		timeout:  timeout,
	}
}

func (h *ResetHandler) Handle(ctx context.Context, body []byte) Response {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	fields, err := parseBody(body)
	if err != nil {
		return failure(statusFor(err))
	}

	action := optionalString(fields, "action", "initiate")

	switch action {
	case "initiate":
		return h.initiate(ctx, fields)
	case "confirm_reset":
		return h.confirmReset(ctx, fields)
	default:
		return failure(http.StatusBadRequest, "Invalid action: "+action)
	}
}

func (h *ResetHandler) initiate(ctx context.Context, fields map[string]any) Response {
	email, err := requireString(fields, "email", "Email")
	if err != nil {
		return failure(statusFor(err))
	}

	if err := h.recovery.Initiate(ctx, email); err != nil {
		h.logger.Error(ctx, "reset initiation failed", "email", email, "error", err)
		return h.fail(err)
	}

	return success(http.StatusOK, "Password reset initiated. Please check your email.", nil)
}

func (h *ResetHandler) confirmReset(ctx context.Context, fields map[string]any) Response {
	email, err := requireString(fields, "email", "Email")
	if err != nil {
		return failure(statusFor(err))
	}
	code, err := requireString(fields, "verificationCode", "Verification code")
	if err != nil {
		return failure(statusFor(err))
	}
	newPassword, err := requireString(fields, "newPassword", "New password")
	if err != nil {
		return failure(statusFor(err))
	}

	if err := h.recovery.ConfirmReset(ctx, email, code, newPassword); err != nil {
		h.logger.Error(ctx, "reset confirmation failed", "email", email, "error", err)
		return h.fail(err)
	}

	return success(http.StatusOK, "Password reset successful.", nil)
}

// fail maps an error like the other entry points, except that unexpected
// failures do not echo raw error text back to the caller.
func (h *ResetHandler) fail(err error) Response {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		msg = "An internal error occurred. Please try again later."
	}
	return failure(status, msg)
}
