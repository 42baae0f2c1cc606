package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token names recorded with each issued credential.
const (
	TokenNameLogin    = "api-token"
	TokenNameRegister = "auth_token"
)

// AuthToken is a persisted bearer credential bound to exactly one user.
// Only a hash of the credential is stored; the plaintext is returned to the
// client once, when the token is issued.
type AuthToken struct {
	ID         uuid.UUID
	UserID     int64
	Name       string
	TokenHash  string
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the token has an expiry that is not after now.
func (t *AuthToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
