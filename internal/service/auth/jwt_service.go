package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token asserting the user's
	// identity. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the token's signature, expiry, issuer and
	// audience, and extracts the claims. No claim may be trusted unless
	// validation succeeds.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified identity carried by a token.
type Claims struct {
	// UserID is the user the token was issued for (the subject claim).
	UserID uuid.UUID

	// Email and Username mirror the user record at issuance time.
	Email    string
	Username string

	// Standard registered JWT claims.
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
