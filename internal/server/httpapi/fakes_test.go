package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/campusauth/internal/logging"
	"github.com/dmitrijs2005/campusauth/internal/server/identity"
	"github.com/dmitrijs2005/campusauth/internal/server/records"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newTestLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decodeBody(t *testing.T, resp Response) map[string]any {
	t.Helper()
	payload := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &payload))
	return payload
}

func requireCORS(t *testing.T, resp Response) {
	t.Helper()
	require.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	require.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])
	require.Equal(t, "OPTIONS,POST", resp.Headers["Access-Control-Allow-Methods"])
}

// --- fakes ---

type groupCall struct {
	Username string
	Group    string
}

type fakeProvider struct {
	signUpErr        error
	confirmErr       error
	resendErr        error
	addToGroupErr    error
	emailExists      bool
	emailExistsErr   error
	userExists       bool
	userExistsErr    error
	attrs            map[string]string
	attrsErr         error
	tokens           *identity.Tokens
	initiateErr      error
	forgotErr        error
	confirmForgotErr error

	signUps       []identity.SignUpInput
	confirms      [][2]string
	resends       []string
	groups        []groupCall
	initiates     [][2]string
	forgots       []string
	confirmResets [][3]string
}

func (f *fakeProvider) SignUp(ctx context.Context, in *identity.SignUpInput) error {
	f.signUps = append(f.signUps, *in)
	return f.signUpErr
}

func (f *fakeProvider) ConfirmSignUp(ctx context.Context, username, code string) error {
	f.confirms = append(f.confirms, [2]string{username, code})
	return f.confirmErr
}

func (f *fakeProvider) ResendConfirmationCode(ctx context.Context, username string) error {
	f.resends = append(f.resends, username)
	return f.resendErr
}

func (f *fakeProvider) AddToGroup(ctx context.Context, username, group string) error {
	f.groups = append(f.groups, groupCall{Username: username, Group: group})
	return f.addToGroupErr
}

func (f *fakeProvider) UserExists(ctx context.Context, username string) (bool, error) {
	return f.userExists, f.userExistsErr
}

func (f *fakeProvider) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emailExists, f.emailExistsErr
}

func (f *fakeProvider) UserAttributes(ctx context.Context, username string) (map[string]string, error) {
	return f.attrs, f.attrsErr
}

func (f *fakeProvider) InitiateAuth(ctx context.Context, username, password string) (*identity.Tokens, error) {
	f.initiates = append(f.initiates, [2]string{username, password})
	if f.initiateErr != nil {
		return nil, f.initiateErr
	}
	return f.tokens, nil
}

func (f *fakeProvider) ForgotPassword(ctx context.Context, username string) error {
	f.forgots = append(f.forgots, username)
	return f.forgotErr
}

func (f *fakeProvider) ConfirmForgotPassword(ctx context.Context, username, code, newPassword string) error {
	f.confirmResets = append(f.confirmResets, [3]string{username, code, newPassword})
	return f.confirmForgotErr
}

type fakeStore struct {
	putErr error
	puts   []records.AccountRecord
}

func (f *fakeStore) Put(ctx context.Context, rec *records.AccountRecord) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts = append(f.puts, *rec)
	return nil
}
