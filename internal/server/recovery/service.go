// Package recovery implements the password-reset flow: initiate sends a
// verification code, confirm sets the new password.
package recovery

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/campusauth/internal/server/identity"
)

type Service struct {
	provider identity.Provider
}

func NewService(provider identity.Provider) *Service {
	return &Service{provider: provider}
}

// Initiate starts a password reset for an existing account.
func (s *Service) Initiate(ctx context.Context, email string) error {

	if err := s.requireUser(ctx, email); err != nil {
		return err
	}

	return s.provider.ForgotPassword(ctx, email)
}

// ConfirmReset completes a password reset with the emailed code.
func (s *Service) ConfirmReset(ctx context.Context, email, code, newPassword string) error {

	if err := s.requireUser(ctx, email); err != nil {
		return err
	}

	return s.provider.ConfirmForgotPassword(ctx, email, code, newPassword)
}

func (s *Service) requireUser(ctx context.Context, email string) error {
	exists, err := s.provider.UserExists(ctx, email)
	if err != nil {
		return fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return identity.NewError(identity.KindAccountNotFound, "User not found: "+email)
	}
	return nil
}
