package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for signing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for userID whose jti is tokenID.
	// A zero expiresAt produces a token without an exp claim.
	GenerateToken(ctx context.Context, userID int64, tokenID uuid.UUID, expiresAt time.Time) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString and
	// extracts the claims. It does not consult the token store.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a bearer token.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID int64

	// TokenID is the jti claim; it is the primary key of the persisted token.
	TokenID uuid.UUID

	IssuedAt time.Time

	// ExpiresAt is zero for tokens that never expire.
	ExpiresAt time.Time
}

// HashToken returns the hex SHA-256 digest stored in place of the plaintext token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
