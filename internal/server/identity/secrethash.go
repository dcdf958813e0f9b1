package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash computes the keyed hash the provider requires on calls when an
// app client secret is configured: base64(HMAC-SHA256(username+clientID))
// keyed by the secret. It returns nil when clientSecret is empty, and
// callers must then omit the parameter entirely.
func SecretHash(username, clientID, clientSecret string) *string {
	if clientSecret == "" {
		return nil
	}

	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	hash := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return &hash
}
