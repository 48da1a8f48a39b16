package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
	"github.com/jhoicas/commerce-api/internal/domain/repository"
)

var _ repository.RefreshTokenRepository = (*RefreshTokenRepo)(nil)

// RefreshTokenRepo implementación del puerto RefreshTokenRepository sobre PostgreSQL.
type RefreshTokenRepo struct {
	q Querier
}

// NewRefreshTokenRepository construye el adaptador de persistencia para refresh tokens.
func NewRefreshTokenRepository(q Querier) *RefreshTokenRepo {
	return &RefreshTokenRepo{q: q}
}

// Create persiste un nuevo refresh token y asigna el ID generado.
func (r *RefreshTokenRepo) Create(ctx context.Context, token *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, revoked, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		token.Token, token.UserID, token.Revoked, token.ExpiresAt, token.CreatedAt,
	).Scan(&token.ID)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// GetByToken obtiene un refresh token por su valor. Retorna (nil, nil) si no existe.
func (r *RefreshTokenRepo) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	query := `
		SELECT id, token, user_id, revoked, expires_at, created_at
		FROM refresh_tokens WHERE token = $1`
	var t entity.RefreshToken
	err := r.q.QueryRow(ctx, query, token).Scan(
		&t.ID, &t.Token, &t.UserID, &t.Revoked, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	return &t, nil
}

// Revoke marca un refresh token como revocado.
func (r *RefreshTokenRepo) Revoke(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE refresh_tokens SET revoked = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
