package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Store implements auth.RefreshTokenRepository. Pruning the employee's
// expired sessions and inserting the new one happen in one transaction.
func (r *refreshTokenRepository) Store(ctx context.Context, token auth.RefreshToken) error {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		prune := `
			DELETE FROM refresh_tokens
			WHERE employee_id = $1
			  AND expires_at < NOW()
		`
		if _, err := q.Exec(txCtx, prune, token.EmployeeID); err != nil {
			return fmt.Errorf("failed to prune expired refresh tokens: %w", err)
		}

		insert := `
			INSERT INTO refresh_tokens (
				id, employee_id, token_hash, user_agent, ip_address, expires_at
			) VALUES (
				$1, $2, $3, $4, $5, $6
			)
		`
		_, err := q.Exec(txCtx, insert,
			token.ID,
			token.EmployeeID,
			token.TokenHash,
			token.UserAgent,
			token.IPAddress,
			token.ExpiresAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert refresh token: %w", err)
		}

		return nil
	})
	if err != nil {
		return storeErr("failed to store refresh token", err)
	}

	return nil
}

// GetByTokenHash implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, token_hash, user_agent, ip_address,
			   expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var token auth.RefreshToken
	err := q.QueryRow(ctx, query, tokenHash).Scan(
		&token.ID, &token.EmployeeID, &token.TokenHash, &token.UserAgent, &token.IPAddress,
		&token.ExpiresAt, &token.RevokedAt, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, storeErr("failed to get refresh token", err)
	}

	return token, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1
		  AND revoked_at IS NULL
	`

	tag, err := q.Exec(ctx, query, tokenHash)
	if err != nil {
		return storeErr("failed to revoke refresh token", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}

	return nil
}

// RevokeAllForEmployee implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) RevokeAllForEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE employee_id = $1
		  AND revoked_at IS NULL
	`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return storeErr("failed to revoke employee refresh tokens", err)
	}

	return nil
}
