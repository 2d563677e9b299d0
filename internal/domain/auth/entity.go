package auth

import (
	"time"
)

// RefreshToken is a persisted refresh session. TokenHash stores a SHA-256
// digest; the raw token never touches the database.
type RefreshToken struct {
	ID         string
	EmployeeID string
	TokenHash  string
	UserAgent  *string
	IPAddress  *string
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

func (t RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

func (t RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
