package repository

import (
	"context"

	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID retorna (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
