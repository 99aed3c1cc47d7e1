package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// ストアフロント向けの一覧。アーカイブ済みは出さない。
func (r *ProductGormRepository) ListByStore(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).
		Preload("Images").
		Where("store_id = ?", q.StoreID).
		Where("is_archived = ?", false)

	if q.CategoryID != "" {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}
	if q.SizeID != "" {
		tx = tx.Where("size_id = ?", q.SizeID)
	}
	if q.ColorID != "" {
		tx = tx.Where("color_id = ?", q.ColorID)
	}
	if q.IsFeatured != nil {
		tx = tx.Where("is_featured = ?", *q.IsFeatured)
	}

	var products []model.Product
	if err := tx.Order("created_at desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDの集合で取得。見つからないIDは黙って落ちる。
func (r *ProductGormRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成（画像も一緒に保存される）
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) error {
	return r.db.WithContext(ctx).Create(&p).Error
}

// 商品の更新。画像は全入れ替え。
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"category_id": p.CategoryID,
			"size_id":     p.SizeID,
			"color_id":    p.ColorID,
			"name":        p.Name,
			"price":       p.Price,
			"is_featured": p.IsFeatured,
			"is_archived": p.IsArchived,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		//画像を消して入れ直す
		if err := tx.Where("product_id = ?", p.ID).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		if len(p.Images) > 0 {
			if err := tx.Create(&p.Images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// 商品削除
func (r *ProductGormRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 決済確定した注文に入っていた商品をまとめて販売停止にする。
// 既にarchivedの行も対象のままでよい（再実行しても結果が変わらない）。
func (r *ProductGormRepository) ArchiveByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id IN ?", ids).
		Update("is_archived", true).Error
}

func (r *ProductGormRepository) CountInStock(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("store_id = ?", storeID).
		Where("is_archived = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
