package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/logging"
	"github.com/dmitrijs2005/campusauth/internal/server/sessions"
)

// LoginHandler is the session-issuance entry point. Actions: login
// (default), check.
type LoginHandler struct {
	sessions *sessions.Service
	logger   logging.Logger
	timeout  time.Duration
}

func NewLoginHandler(svc *sessions.Service, logger logging.Logger, timeout time.Duration) *LoginHandler {
	return &LoginHandler{
		sessions: svc,
		logger:   logger.With("module", "login_handler"),
		timeout:  timeout,
	}
}

func (h *LoginHandler) Handle(ctx context.Context, body []byte) Response {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	fields, err := parseBody(body)
	if err != nil {
		return failure(statusFor(err))
	}

	action := optionalString(fields, "action", "login")

	switch action {
	case "login":
		return h.login(ctx, fields)
	case "check":
		return h.check(ctx, fields)
	default:
		return failure(http.StatusBadRequest, "Invalid action: "+action)
	}
}

func (h *LoginHandler) check(ctx context.Context, fields map[string]any) Response {
	email, err := requireString(fields, "email", "Email")
	if err != nil {
		return failure(statusFor(err))
	}

	exists, err := h.sessions.Check(ctx, email)
	if err != nil {
		h.logger.Error(ctx, "existence check failed", "email", email, "error", err)
		return failure(statusFor(err))
	}

	if !exists {
		return failure(http.StatusNotFound, "User not found")
	}
	return success(http.StatusOK, "User exists", nil)
}

func (h *LoginHandler) login(ctx context.Context, fields map[string]any) Response {
	email, err := requireString(fields, "email", "Email")
	if err != nil {
		return failure(statusFor(err))
	}
	password, err := requireString(fields, "password", "Password")
	if err != nil {
		return failure(statusFor(err))
	}
	remember := optionalBool(fields, "remember")

	session, err := h.sessions.Login(ctx, email, password)
	if err != nil {
		h.logger.Warn(ctx, "login failed", "email", email, "error", err)
		return failure(statusFor(err))
	}

	extra := map[string]any{
		"idToken":     session.IDToken,
		"accessToken": session.AccessToken,
	}
	// the refresh token is handed out only when the caller asked to be
	// remembered; otherwise the field is explicitly null
	if remember {
		extra["refreshToken"] = session.RefreshToken
	} else {
		extra["refreshToken"] = nil
	}
	if session.Role != "" {
		extra["redirect"] = "/" + session.Role
	}

	h.logger.Info(ctx, "login successful", "email", email)
	return success(http.StatusOK, "Login successful for "+email, extra)
}
