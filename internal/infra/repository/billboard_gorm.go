package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BillboardGormRepository struct {
	db *gorm.DB
}

func NewBillboardGormRepository(db *gorm.DB) *BillboardGormRepository {
	return &BillboardGormRepository{db: db}
}

func (r *BillboardGormRepository) FindByID(ctx context.Context, id string) (model.Billboard, error) {
	var b model.Billboard
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Billboard{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Billboard{}, err
	}
	return b, nil
}

func (r *BillboardGormRepository) ListByStore(ctx context.Context, storeID string) ([]model.Billboard, error) {
	var billboards []model.Billboard
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&billboards).Error
	if err != nil {
		return []model.Billboard{}, err
	}
	return billboards, nil
}

func (r *BillboardGormRepository) Create(ctx context.Context, b model.Billboard) error {
	return r.db.WithContext(ctx).Create(&b).Error
}

func (r *BillboardGormRepository) Update(ctx context.Context, b model.Billboard) error {
	res := r.db.WithContext(ctx).Model(&model.Billboard{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"label":     b.Label,
			"image_url": b.ImageURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BillboardGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Billboard{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
