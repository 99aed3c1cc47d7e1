package repository

import (
	"context"

	"app/internal/domain/model"
)

type ColorRepository interface {
	FindByID(ctx context.Context, id string) (model.Color, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Color, error)
	Create(ctx context.Context, c model.Color) error
	Update(ctx context.Context, c model.Color) error
	Delete(ctx context.Context, id string) error
}
