package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ColorUsecase struct {
	stores repo.StoreRepository
	colors repo.ColorRepository
	idGen  IDGenerator
}

func NewColorUsecase(stores repo.StoreRepository, colors repo.ColorRepository, idGen IDGenerator) *ColorUsecase {
	return &ColorUsecase{stores: stores, colors: colors, idGen: idGen}
}

type ColorInput struct {
	Name  string
	Value string // 表示用の色コード（#FFFFFFなど）
}

func (in ColorInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Value) == "" {
		return NewHTTPError(http.StatusBadRequest, "value required")
	}
	return nil
}

func (u *ColorUsecase) Create(ctx context.Context, userID string, storeID string, in ColorInput) (model.Color, error) {
	if err := in.validate(); err != nil {
		return model.Color{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Color{}, err
	}

	now := time.Now()
	c := model.Color{
		ID:        u.idGen.NewID(),
		StoreID:   storeID,
		Name:      strings.TrimSpace(in.Name),
		Value:     strings.TrimSpace(in.Value),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.colors.Create(ctx, c); err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ColorUsecase) List(ctx context.Context, storeID string) ([]model.Color, error) {
	if storeID == "" {
		return []model.Color{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}

	colors, err := u.colors.ListByStore(ctx, storeID)
	if err != nil {
		return []model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return colors, nil
}

func (u *ColorUsecase) Get(ctx context.Context, colorID string) (model.Color, error) {
	if colorID == "" {
		return model.Color{}, NewHTTPError(http.StatusBadRequest, "color id required")
	}

	c, err := u.colors.FindByID(ctx, colorID)
	if err == repo.ErrNotFound {
		return model.Color{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ColorUsecase) Update(ctx context.Context, userID string, storeID string, colorID string, in ColorInput) (model.Color, error) {
	if err := in.validate(); err != nil {
		return model.Color{}, err
	}
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return model.Color{}, err
	}

	c, err := u.colors.FindByID(ctx, colorID)
	if err == repo.ErrNotFound || (err == nil && c.StoreID != storeID) {
		return model.Color{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Name = strings.TrimSpace(in.Name)
	c.Value = strings.TrimSpace(in.Value)
	if err := u.colors.Update(ctx, c); err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ColorUsecase) Delete(ctx context.Context, userID string, storeID string, colorID string) error {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return err
	}

	c, err := u.colors.FindByID(ctx, colorID)
	if err == repo.ErrNotFound || (err == nil && c.StoreID != storeID) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.colors.Delete(ctx, colorID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
