package repository

import (
	"context"

	"app/internal/domain/model"
)

type SizeRepository interface {
	FindByID(ctx context.Context, id string) (model.Size, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Size, error)
	Create(ctx context.Context, s model.Size) error
	Update(ctx context.Context, s model.Size) error
	Delete(ctx context.Context, id string) error
}
