package accounts

import (
	"strings"

	"github.com/google/uuid"
)

// NewHandle builds the human-readable account handle:
// lowercase(firstName).lowercase(lastName) plus a 6-character random hex
// suffix. The suffix makes collisions unlikely but uniqueness is not
// enforced against the provider.
func NewHandle(firstName, lastName string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return strings.ToLower(firstName) + "." + strings.ToLower(lastName) + suffix
}
