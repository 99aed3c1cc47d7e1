package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type StoreUsecase struct {
	stores repo.StoreRepository
	idGen  IDGenerator
}

func NewStoreUsecase(stores repo.StoreRepository, idGen IDGenerator) *StoreUsecase {
	return &StoreUsecase{stores: stores, idGen: idGen}
}

func (u *StoreUsecase) Create(ctx context.Context, userID string, name string) (model.Store, error) {
	if userID == "" {
		return model.Store{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(name) == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	now := time.Now()
	s := model.Store{
		ID:        u.idGen.NewID(),
		Name:      strings.TrimSpace(name),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.stores.Create(ctx, s); err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *StoreUsecase) ListMine(ctx context.Context, userID string) ([]model.Store, error) {
	if userID == "" {
		return []model.Store{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	stores, err := u.stores.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return stores, nil
}

func (u *StoreUsecase) Update(ctx context.Context, userID string, storeID string, name string) (model.Store, error) {
	if strings.TrimSpace(name) == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	s, err := authorizeStoreOwner(ctx, u.stores, userID, storeID)
	if err != nil {
		return model.Store{}, err
	}

	s.Name = strings.TrimSpace(name)
	if err := u.stores.Update(ctx, s); err != nil {
		if err == repo.ErrNotFound {
			return model.Store{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *StoreUsecase) Delete(ctx context.Context, userID string, storeID string) error {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return err
	}

	if err := u.stores.Delete(ctx, storeID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
