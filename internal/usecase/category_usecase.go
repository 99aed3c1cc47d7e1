package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	stores     repo.StoreRepository
	billboards repo.BillboardRepository
	categories repo.CategoryRepository
	idGen      IDGenerator
}

func NewCategoryUsecase(
	stores repo.StoreRepository,
	billboards repo.BillboardRepository,
	categories repo.CategoryRepository,
	idGen IDGenerator,
) *CategoryUsecase {
	return &CategoryUsecase{stores: stores, billboards: billboards, categories: categories, idGen: idGen}
}

type CategoryInput struct {
	Name        string
	BillboardID string
}

func (in CategoryInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.BillboardID == "" {
		return NewHTTPError(http.StatusBadRequest, "billboard id required")
	}
	return nil
}

// billboardが同じストアのものか確認する
func (u *CategoryUsecase) checkBillboard(ctx context.Context, storeID string, billboardID string) error {
	b, err := u.billboards.FindByID(ctx, billboardID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusBadRequest, "billboard not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if b.StoreID != storeID {
		return NewHTTPError(http.StatusBadRequest, "billboard belongs to another store")
	}
	return nil
}

func (u *CategoryUsecase) Create(ctx context.Context, userID string, storeID string, in CategoryInput) (model.Category, error) {
	if err := in.validate(); err != nil {
		return model.Category{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Category{}, err
	}
	if err := u.checkBillboard(ctx, storeID, in.BillboardID); err != nil {
		return model.Category{}, err
	}

	now := time.Now()
	c := model.Category{
		ID:          u.idGen.NewID(),
		StoreID:     storeID,
		BillboardID: in.BillboardID,
		Name:        strings.TrimSpace(in.Name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.categories.Create(ctx, c); err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) List(ctx context.Context, storeID string) ([]model.Category, error) {
	if storeID == "" {
		return []model.Category{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}

	categories, err := u.categories.ListByStore(ctx, storeID)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, categoryID string) (model.Category, error) {
	if categoryID == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "category id required")
	}

	c, err := u.categories.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, userID string, storeID string, categoryID string, in CategoryInput) (model.Category, error) {
	if err := in.validate(); err != nil {
		return model.Category{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Category{}, err
	}
	if err := u.checkBillboard(ctx, storeID, in.BillboardID); err != nil {
		return model.Category{}, err
	}

	c, err := u.categories.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound || (err == nil && c.StoreID != storeID) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Name = strings.TrimSpace(in.Name)
	c.BillboardID = in.BillboardID
	if err := u.categories.Update(ctx, c); err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, userID string, storeID string, categoryID string) error {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return err
	}

	c, err := u.categories.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound || (err == nil && c.StoreID != storeID) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.categories.Delete(ctx, categoryID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
