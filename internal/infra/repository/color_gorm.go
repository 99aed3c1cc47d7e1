package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ColorGormRepository struct {
	db *gorm.DB
}

func NewColorGormRepository(db *gorm.DB) *ColorGormRepository {
	return &ColorGormRepository{db: db}
}

func (r *ColorGormRepository) FindByID(ctx context.Context, id string) (model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Color{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Color{}, err
	}
	return c, nil
}

func (r *ColorGormRepository) ListByStore(ctx context.Context, storeID string) ([]model.Color, error) {
	var colors []model.Color
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&colors).Error
	if err != nil {
		return []model.Color{}, err
	}
	return colors, nil
}

func (r *ColorGormRepository) Create(ctx context.Context, c model.Color) error {
	return r.db.WithContext(ctx).Create(&c).Error
}

func (r *ColorGormRepository) Update(ctx context.Context, c model.Color) error {
	res := r.db.WithContext(ctx).Model(&model.Color{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":  c.Name,
			"value": c.Value,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ColorGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Color{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
