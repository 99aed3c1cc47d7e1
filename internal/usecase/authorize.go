package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 書き込み系の操作は全部これを先に通す。
// ストアが無ければ404、他人のストアなら403。どちらの場合も何も書き込まない。
func authorizeStoreOwner(ctx context.Context, stores repo.StoreRepository, userID string, storeID string) (model.Store, error) {
	if userID == "" {
		return model.Store{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if storeID == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}

	s, err := stores.FindByID(ctx, storeID)
	if err == repo.ErrNotFound {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if s.UserID != userID {
		return model.Store{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return s, nil
}
