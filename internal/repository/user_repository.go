package repository

import (
	"context"

	"shopapi/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)

	Create(ctx context.Context, u model.User) (model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
