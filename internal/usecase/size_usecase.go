package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SizeUsecase struct {
	stores repo.StoreRepository
	sizes  repo.SizeRepository
	idGen  IDGenerator
}

func NewSizeUsecase(stores repo.StoreRepository, sizes repo.SizeRepository, idGen IDGenerator) *SizeUsecase {
	return &SizeUsecase{stores: stores, sizes: sizes, idGen: idGen}
}

type SizeInput struct {
	Name  string
	Value string
}

func (in SizeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Value) == "" {
		return NewHTTPError(http.StatusBadRequest, "value required")
	}
	return nil
}

func (u *SizeUsecase) Create(ctx context.Context, userID string, storeID string, in SizeInput) (model.Size, error) {
	if err := in.validate(); err != nil {
		return model.Size{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Size{}, err
	}

	now := time.Now()
	s := model.Size{
		ID:        u.idGen.NewID(),
		StoreID:   storeID,
		Name:      strings.TrimSpace(in.Name),
		Value:     strings.TrimSpace(in.Value),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sizes.Create(ctx, s); err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SizeUsecase) List(ctx context.Context, storeID string) ([]model.Size, error) {
	if storeID == "" {
		return []model.Size{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}

	sizes, err := u.sizes.ListByStore(ctx, storeID)
	if err != nil {
		return []model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sizes, nil
}

func (u *SizeUsecase) Get(ctx context.Context, sizeID string) (model.Size, error) {
	if sizeID == "" {
		return model.Size{}, NewHTTPError(http.StatusBadRequest, "size id required")
	}

	s, err := u.sizes.FindByID(ctx, sizeID)
	if err == repo.ErrNotFound {
		return model.Size{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SizeUsecase) Update(ctx context.Context, userID string, storeID string, sizeID string, in SizeInput) (model.Size, error) {
	if err := in.validate(); err != nil {
		return model.Size{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Size{}, err
	}

	s, err := u.sizes.FindByID(ctx, sizeID)
	if err == repo.ErrNotFound || (err == nil && s.StoreID != storeID) {
		return model.Size{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s.Name = strings.TrimSpace(in.Name)
	s.Value = strings.TrimSpace(in.Value)
	if err := u.sizes.Update(ctx, s); err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SizeUsecase) Delete(ctx context.Context, userID string, storeID string, sizeID string) error {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return err
	}

	s, err := u.sizes.FindByID(ctx, sizeID)
	if err == repo.ErrNotFound || (err == nil && s.StoreID != storeID) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.sizes.Delete(ctx, sizeID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
