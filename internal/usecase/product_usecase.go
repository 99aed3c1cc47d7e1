package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	stores    repo.StoreRepository
	products  repo.ProductRepository
	auditRepo repo.AuditLogRepository
	idGen     IDGenerator
}

func NewProductUsecase(
	stores repo.StoreRepository,
	products repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
	idGen IDGenerator,
) *ProductUsecase {
	return &ProductUsecase{stores: stores, products: products, auditRepo: auditRepo, idGen: idGen}
}

type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID string
	SizeID     string
	ColorID    string
	Images     []string // 画像URLの並び
	IsFeatured bool
	IsArchived bool
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.CategoryID == "" {
		return NewHTTPError(http.StatusBadRequest, "category id required")
	}
	if in.SizeID == "" {
		return NewHTTPError(http.StatusBadRequest, "size id required")
	}
	if in.ColorID == "" {
		return NewHTTPError(http.StatusBadRequest, "color id required")
	}
	if len(in.Images) == 0 {
		return NewHTTPError(http.StatusBadRequest, "images required")
	}
	return nil
}

func (u *ProductUsecase) Create(ctx context.Context, userID string, storeID string, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Product{}, err
	}

	now := time.Now()
	productID := u.idGen.NewID()

	images := make([]model.Image, 0, len(in.Images))
	for _, url := range in.Images {
		images = append(images, model.Image{
			ID:        u.idGen.NewID(),
			ProductID: productID,
			URL:       url,
		})
	}

	p := model.Product{
		ID:         productID,
		StoreID:    storeID,
		CategoryID: in.CategoryID,
		SizeID:     in.SizeID,
		ColorID:    in.ColorID,
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		Images:     images,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.products.Create(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, userID, model.AuditActionCreateProduct, productID)
	return p, nil
}

type ProductListInput struct {
	CategoryID string
	SizeID     string
	ColorID    string
	IsFeatured *bool
}

// ストアフロント向け一覧（アーカイブ済みは出ない）
func (u *ProductUsecase) List(ctx context.Context, storeID string, in ProductListInput) ([]model.Product, error) {
	if storeID == "" {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}

	products, err := u.products.ListByStore(ctx, repo.ProductListQuery{
		StoreID:    storeID,
		CategoryID: in.CategoryID,
		SizeID:     in.SizeID,
		ColorID:    in.ColorID,
		IsFeatured: in.IsFeatured,
	})
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "product id required")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, userID string, storeID string, productID string, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Product{}, err
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound || (err == nil && p.StoreID != storeID) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//画像は全入れ替え
	images := make([]model.Image, 0, len(in.Images))
	for _, url := range in.Images {
		images = append(images, model.Image{
			ID:        u.idGen.NewID(),
			ProductID: productID,
			URL:       url,
		})
	}

	p.CategoryID = in.CategoryID
	p.SizeID = in.SizeID
	p.ColorID = in.ColorID
	p.Name = strings.TrimSpace(in.Name)
	p.Price = in.Price
	p.IsFeatured = in.IsFeatured
	p.IsArchived = in.IsArchived
	p.Images = images
	p.UpdatedAt = time.Now()

	if err := u.products.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, userID, model.AuditActionUpdateProduct, productID)
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, userID string, storeID string, productID string) error {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return err
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound || (err == nil && p.StoreID != storeID) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.products.SoftDelete(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, userID, model.AuditActionDeleteProduct, productID)
	return nil
}

// 監査ログ。書けなくても本処理は失敗させない。
func (u *ProductUsecase) writeAudit(ctx context.Context, userID string, action model.AuditAction, productID string) {
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  userID,
		Action:       action,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		CreatedAt:    time.Now(),
	})
}
