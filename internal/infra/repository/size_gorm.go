package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SizeGormRepository struct {
	db *gorm.DB
}

func NewSizeGormRepository(db *gorm.DB) *SizeGormRepository {
	return &SizeGormRepository{db: db}
}

func (r *SizeGormRepository) FindByID(ctx context.Context, id string) (model.Size, error) {
	var s model.Size
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Size{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Size{}, err
	}
	return s, nil
}

func (r *SizeGormRepository) ListByStore(ctx context.Context, storeID string) ([]model.Size, error) {
	var sizes []model.Size
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&sizes).Error
	if err != nil {
		return []model.Size{}, err
	}
	return sizes, nil
}

func (r *SizeGormRepository) Create(ctx context.Context, s model.Size) error {
	return r.db.WithContext(ctx).Create(&s).Error
}

func (r *SizeGormRepository) Update(ctx context.Context, s model.Size) error {
	res := r.db.WithContext(ctx).Model(&model.Size{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"name":  s.Name,
			"value": s.Value,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SizeGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Size{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
