package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh token. Revoked tokens stay on
// record so a replay after logout is rejected rather than silently
// reissued.
type RefreshToken struct {
	ID         int64
	EmployeeID int64
	TokenHash  string
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForEmployee(ctx context.Context, employeeID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}
