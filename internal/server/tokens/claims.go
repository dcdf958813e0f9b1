// Package tokens reads claims out of provider-issued ID tokens.
package tokens

import (
	"github.com/golang-jwt/jwt/v5"
)

// roleClaim is the custom attribute the pool stamps into ID tokens.
const roleClaim = "custom:userRole"

// Role extracts the role claim from an ID token. The token is parsed without
// signature verification: it was issued by the provider on this same call
// and is used only to pick a dashboard redirect, not to authorize anything.
func Role(idToken string) (string, error) {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return "", err
	}

	role, _ := claims[roleClaim].(string)
	return role, nil
}
