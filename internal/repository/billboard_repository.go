package repository

import (
	"context"

	"app/internal/domain/model"
)

type BillboardRepository interface {
	FindByID(ctx context.Context, id string) (model.Billboard, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Billboard, error)
	Create(ctx context.Context, b model.Billboard) error
	Update(ctx context.Context, b model.Billboard) error
	Delete(ctx context.Context, id string) error
}
