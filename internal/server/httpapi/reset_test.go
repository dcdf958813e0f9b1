package httpapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/server/identity"
	"github.com/dmitrijs2005/campusauth/internal/server/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResetHandler(t *testing.T, fp *fakeProvider) *ResetHandler {
	t.Helper()
	return NewResetHandler(recovery.NewService(fp), newTestLogger(t), 5*time.Second)
}

func TestInitiate_Success(t *testing.T) {
	fp := &fakeProvider{userExists: true}
	h := newResetHandler(t, fp)

	resp := h.Handle(context.Background(), []byte(`{"email":"jane@example.edu"}`))

	assert.Equal(t, 200, resp.StatusCode)
	requireCORS(t, resp)
	payload := decodeBody(t, resp)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, []string{"jane@example.edu"}, fp.forgots)
}

func TestInitiate_UserNotFound(t *testing.T) {
	fp := &fakeProvider{userExists: false}
	h := newResetHandler(t, fp)

	resp := h.Handle(context.Background(), []byte(`{"email":"ghost@example.edu"}`))

	assert.Equal(t, 404, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "User not found: ghost@example.edu", payload["message"])
	assert.Empty(t, fp.forgots)
}

func TestConfirmReset_Success(t *testing.T) {
	fp := &fakeProvider{userExists: true}
	h := newResetHandler(t, fp)

	resp := h.Handle(context.Background(), []byte(`{
		"action": "confirm_reset",
		"email": "jane@example.edu",
		"verificationCode": "123456",
		"newPassword": "NewHunter2hunter2"
	}`))

	require.Equal(t, 200, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "Password reset successful.", payload["message"])
	require.Len(t, fp.confirmResets, 1)
	assert.Equal(t, [3]string{"jane@example.edu", "123456", "NewHunter2hunter2"}, fp.confirmResets[0])
}

func TestConfirmReset_CodeErrorsAreDistinguishable(t *testing.T) {
	confirm := func(confirmErr error) Response {
		fp := &fakeProvider{userExists: true, confirmForgotErr: confirmErr}
		h := newResetHandler(t, fp)
		return h.Handle(context.Background(), []byte(`{
			"action": "confirm_reset",
			"email": "jane@example.edu",
			"verificationCode": "000000",
			"newPassword": "NewHunter2hunter2"
		}`))
	}

	mismatch := confirm(identity.NewError(identity.KindCodeMismatch, "Invalid verification code."))
	expired := confirm(identity.NewError(identity.KindCodeExpired, "Verification code expired."))

	assert.Equal(t, 400, mismatch.StatusCode)
	assert.Equal(t, 400, expired.StatusCode)

	mm := decodeBody(t, mismatch)
	em := decodeBody(t, expired)
	assert.Equal(t, "Invalid verification code.", mm["message"])
	assert.Equal(t, "Verification code expired.", em["message"])
	assert.NotEqual(t, mm["message"], em["message"])
}

func TestConfirmReset_MissingNewPassword(t *testing.T) {
	h := newResetHandler(t, &fakeProvider{userExists: true})

	resp := h.Handle(context.Background(), []byte(`{
		"action": "confirm_reset",
		"email": "jane@example.edu",
		"verificationCode": "123456"
	}`))

	assert.Equal(t, 400, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "New password is required", payload["message"])
}

func TestReset_UnexpectedErrorIsMasked(t *testing.T) {
	fp := &fakeProvider{userExists: true, forgotErr: errors.New("dial tcp: connection refused")}
	h := newResetHandler(t, fp)

	resp := h.Handle(context.Background(), []byte(`{"email":"jane@example.edu"}`))

	assert.Equal(t, 500, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "An internal error occurred. Please try again later.", payload["message"])
	assert.NotContains(t, resp.Body, "connection refused")
}

func TestReset_UnknownAction(t *testing.T) {
	h := newResetHandler(t, &fakeProvider{})

	resp := h.Handle(context.Background(), []byte(`{"action":"confirm","email":"a@b.c"}`))

	assert.Equal(t, 400, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "Invalid action: confirm", payload["message"])
}
