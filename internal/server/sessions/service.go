// Package sessions implements the credential-check flow against the
// identity provider.
package sessions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/campusauth/internal/server/identity"
	"github.com/dmitrijs2005/campusauth/internal/server/tokens"
)

type Service struct {
	provider identity.Provider
}

func NewService(provider identity.Provider) *Service {
	return &Service{provider: provider}
}

// Session is the material returned on a successful login. Role is a best
// effort read of the ID token's role claim; empty when the claim is absent
// or unreadable.
type Session struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
	Role         string
}

// Check reports whether an account with the given email exists.
func (s *Service) Check(ctx context.Context, email string) (bool, error) {
	exists, err := s.provider.UserExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}
	return exists, nil
}

// Login verifies the account exists, then performs the credential check.
// A missing account short-circuits before any credentials reach the
// provider.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {

	exists, err := s.provider.UserExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return nil, identity.NewError(identity.KindAccountNotFound, "User not found")
	}

	tk, err := s.provider.InitiateAuth(ctx, email, password)
	if err != nil {
		return nil, err
	}

	role, _ := tokens.Role(tk.IDToken)

	return &Session{
		IDToken:      tk.IDToken,
		AccessToken:  tk.AccessToken,
		RefreshToken: tk.RefreshToken,
		Role:         role,
	}, nil
}
