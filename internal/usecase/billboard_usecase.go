package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type BillboardUsecase struct {
	stores     repo.StoreRepository
	billboards repo.BillboardRepository
	idGen      IDGenerator
}

func NewBillboardUsecase(
	stores repo.StoreRepository,
	billboards repo.BillboardRepository,
	idGen IDGenerator,
) *BillboardUsecase {
	return &BillboardUsecase{stores: stores, billboards: billboards, idGen: idGen}
}

type BillboardInput struct {
	Label    string
	ImageURL string
}

func (in BillboardInput) validate() error {
	if strings.TrimSpace(in.Label) == "" {
		return NewHTTPError(http.StatusBadRequest, "label required")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return NewHTTPError(http.StatusBadRequest, "image url required")
	}
	return nil
}

func (u *BillboardUsecase) Create(ctx context.Context, userID string, storeID string, in BillboardInput) (model.Billboard, error) {
	if err := in.validate(); err != nil {
		return model.Billboard{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Billboard{}, err
	}

	now := time.Now()
	b := model.Billboard{
		ID:        u.idGen.NewID(),
		StoreID:   storeID,
		Label:     strings.TrimSpace(in.Label),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.billboards.Create(ctx, b); err != nil {
		return model.Billboard{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

// ストアフロントも読むので認可なし
func (u *BillboardUsecase) List(ctx context.Context, storeID string) ([]model.Billboard, error) {
	if storeID == "" {
		return []model.Billboard{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}

	billboards, err := u.billboards.ListByStore(ctx, storeID)
	if err != nil {
		return []model.Billboard{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return billboards, nil
}

func (u *BillboardUsecase) Get(ctx context.Context, billboardID string) (model.Billboard, error) {
	if billboardID == "" {
		return model.Billboard{}, NewHTTPError(http.StatusBadRequest, "billboard id required")
	}

	b, err := u.billboards.FindByID(ctx, billboardID)
	if err == repo.ErrNotFound {
		return model.Billboard{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Billboard{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BillboardUsecase) Update(ctx context.Context, userID string, storeID string, billboardID string, in BillboardInput) (model.Billboard, error) {
	if err := in.validate(); err != nil {
		return model.Billboard{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Billboard{}, err
	}

	b, err := u.billboards.FindByID(ctx, billboardID)
	if err == repo.ErrNotFound || (err == nil && b.StoreID != storeID) {
		return model.Billboard{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Billboard{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b.Label = strings.TrimSpace(in.Label)
	b.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := u.billboards.Update(ctx, b); err != nil {
		return model.Billboard{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BillboardUsecase) Delete(ctx context.Context, userID string, storeID string, billboardID string) error {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return err
	}

	b, err := u.billboards.FindByID(ctx, billboardID)
	if err == repo.ErrNotFound || (err == nil && b.StoreID != storeID) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.billboards.Delete(ctx, billboardID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
