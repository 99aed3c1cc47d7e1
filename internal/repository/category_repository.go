package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (model.Category, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Category, error)
	Create(ctx context.Context, c model.Category) error
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id string) error
}
