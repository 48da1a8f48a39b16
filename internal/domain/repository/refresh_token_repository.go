package repository

import (
	"context"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// RefreshTokenRepository define el puerto de persistencia para RefreshToken.
// GetByToken retorna (nil, nil) cuando el token no existe.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	Revoke(ctx context.Context, id int64) error
}
