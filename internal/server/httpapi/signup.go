package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/logging"
	"github.com/dmitrijs2005/campusauth/internal/server/accounts"
)

// SignupHandler is the account-creation entry point. Actions: signup
// (default), confirm, resend_verification.
type SignupHandler struct {
	accounts *accounts.Service
	logger   logging.Logger
	timeout  time.Duration
}

func NewSignupHandler(svc *accounts.Service, logger logging.Logger, timeout time.Duration) *SignupHandler {
	return &SignupHandler{
		accounts: svc,
		logger:   logger.With("module", "signup_handler"),
		timeout:  timeout,
	}
}

func (h *SignupHandler) Handle(ctx context.Context, body []byte) Response {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	fields, err := parseBody(body)
	if err != nil {
		return failure(statusFor(err))
	}

	action := optionalString(fields, "action", "signup")

	switch action {
	case "signup":
		return h.signUp(ctx, fields)
	case "confirm":
		return h.confirm(ctx, fields)
	case "resend_verification":
		return h.resendCode(ctx, fields)
	default:
		return failure(http.StatusBadRequest, "Invalid action: "+action)
	}
}

func (h *SignupHandler) signUp(ctx context.Context, fields map[string]any) Response {
	in := &accounts.SignUpInput{}
	var err error

	if in.Email, err = requireString(fields, "email", "Email"); err != nil {
		return failure(statusFor(err))
	}
	if in.Password, err = requireString(fields, "password", "Password"); err != nil {
		return failure(statusFor(err))
	}
	if in.FirstName, err = requireString(fields, "firstName", "First name"); err != nil {
		return failure(statusFor(err))
	}
	if in.LastName, err = requireString(fields, "lastName", "Last name"); err != nil {
		return failure(statusFor(err))
	}
	if in.Role, err = requireString(fields, "userRole", "User role"); err != nil {
		return failure(statusFor(err))
	}
	in.Phone = optionalString(fields, "phone", "")

	username, err := h.accounts.SignUp(ctx, in)
	if err != nil {
		h.logger.Error(ctx, "sign-up failed", "email", in.Email, "error", err)
		return failure(statusFor(err))
	}

	h.logger.Info(ctx, "sign-up accepted", "username", username)
	return success(http.StatusCreated, "Sign-up successful! Check your email for verification.", map[string]any{
		"username": username,
	})
}

func (h *SignupHandler) confirm(ctx context.Context, fields map[string]any) Response {
	username, err := requireString(fields, "username", "Username")
	if err != nil {
		return failure(statusFor(err))
	}
	code, err := requireString(fields, "verificationCode", "Verification code")
	if err != nil {
		return failure(statusFor(err))
	}
	role, err := requireString(fields, "userRole", "User role")
	if err != nil {
		return failure(statusFor(err))
	}

	if err := h.accounts.Confirm(ctx, username, code, role); err != nil {
		h.logger.Error(ctx, "confirmation failed", "username", username, "error", err)
		return failure(statusFor(err))
	}

	h.logger.Info(ctx, "account confirmed", "username", username)
	return success(http.StatusOK, "Account verified successfully!", map[string]any{
		"redirect": "/login",
	})
}

func (h *SignupHandler) resendCode(ctx context.Context, fields map[string]any) Response {
	username, err := requireString(fields, "username", "Username")
	if err != nil {
		return failure(statusFor(err))
	}

	if err := h.accounts.ResendCode(ctx, username); err != nil {
		h.logger.Error(ctx, "resend failed", "username", username, "error", err)
		return failure(statusFor(err))
	}

	return success(http.StatusOK, "Verification code resent successfully.", nil)
}
