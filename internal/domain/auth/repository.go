package auth

import (
	"context"
)

// RefreshTokenRepository defines data access methods for refresh sessions
type RefreshTokenRepository interface {
	// Store persists a new refresh session
	Store(ctx context.Context, token RefreshToken) error

	// GetByTokenHash retrieves a refresh session by its token hash
	GetByTokenHash(ctx context.Context, tokenHash string) (RefreshToken, error)

	// Revoke marks a refresh session revoked
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForEmployee revokes every live session for an employee
	RevokeAllForEmployee(ctx context.Context, employeeID string) error
}
