// Package accounts implements the account-creation flow: provider sign-up,
// confirmation, group assignment, and the record-store write. One
// parametrized service covers the previously separate handler variants.
package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/server/identity"
	"github.com/dmitrijs2005/campusauth/internal/server/records"
	"github.com/google/uuid"
)

// Options selects which steps of the flow are active.
type Options struct {
	// CheckDuplicateEmail rejects sign-ups whose email already exists in
	// the provider before creating the account.
	CheckDuplicateEmail bool

	// RequireConfirmation defers group assignment and the record write to
	// the confirm action. When false, provisioning happens right after
	// sign-up (pools configured to auto-confirm).
	RequireConfirmation bool
}

type Service struct {
	provider identity.Provider
	store    records.Store
	opts     Options
}

func NewService(provider identity.Provider, store records.Store, opts Options) *Service {
	return &Service{provider: provider, store: store, opts: opts}
}

// SignUpInput carries the validated fields of a sign-up request.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// SignUp creates the provider account under a generated handle and returns
// the handle. With RequireConfirmation unset it also provisions the account
// immediately.
func (s *Service) SignUp(ctx context.Context, in *SignUpInput) (string, error) {

	if s.opts.CheckDuplicateEmail {
		exists, err := s.provider.EmailExists(ctx, in.Email)
		if err != nil {
			return "", fmt.Errorf("checking email: %w", err)
		}
		if exists {
			return "", identity.NewError(identity.KindAccountExists, "Email already exists!")
		}
	}

	username := NewHandle(in.FirstName, in.LastName)

	err := s.provider.SignUp(ctx, &identity.SignUpInput{
		Username:  username,
		Password:  in.Password,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Role:      in.Role,
	})
	if err != nil {
		return "", err
	}

	if !s.opts.RequireConfirmation {
		attrs := map[string]string{
			"email":        in.Email,
			"given_name":   in.FirstName,
			"family_name":  in.LastName,
			"phone_number": in.Phone,
		}
		if err := s.provision(ctx, username, in.Role, attrs); err != nil {
			return "", err
		}
	}

	return username, nil
}

// Confirm completes the flow for a pending account: provider confirmation,
// group assignment, record write. A failure at any step aborts the rest;
// there is no rollback of steps that already succeeded.
func (s *Service) Confirm(ctx context.Context, username, code, role string) error {

	if err := s.provider.ConfirmSignUp(ctx, username, code); err != nil {
		return err
	}

	attrs, err := s.provider.UserAttributes(ctx, username)
	if err != nil {
		return fmt.Errorf("fetching user attributes: %w", err)
	}

	return s.provision(ctx, username, role, attrs)
}

// ResendCode sends a fresh verification code for a pending account.
func (s *Service) ResendCode(ctx context.Context, username string) error {
	return s.provider.ResendConfirmationCode(ctx, username)
}

// provision assigns the provider group and mirrors the profile into the
// record store. The provider attribute names map onto record fields as a
// fixed bijection (given_name -> firstName, family_name -> lastName,
// phone_number -> phone).
func (s *Service) provision(ctx context.Context, username, role string, attrs map[string]string) error {

	if err := s.provider.AddToGroup(ctx, username, role); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rec := &records.AccountRecord{
		UserID:    uuid.NewString(),
		Username:  username,
		Email:     attrs["email"],
		FirstName: attrs["given_name"],
		LastName:  attrs["family_name"],
		Phone:     attrs["phone_number"],
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Put(ctx, rec); err != nil {
		return fmt.Errorf("storing account record: %w", err)
	}

	return nil
}
