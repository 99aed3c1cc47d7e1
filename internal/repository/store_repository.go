package repository

import (
	"context"

	"app/internal/domain/model"
)

type StoreRepository interface {
	FindByID(ctx context.Context, id string) (model.Store, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Store, error)
	Create(ctx context.Context, s model.Store) error
	Update(ctx context.Context, s model.Store) error
	Delete(ctx context.Context, id string) error
}
