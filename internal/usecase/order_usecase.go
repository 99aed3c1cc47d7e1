package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理画面の注文一覧。注文の状態はwebhook経由でしか変わらないので読み取り専用。
type OrderUsecase struct {
	stores repo.StoreRepository
	orders repo.OrderRepository
}

func NewOrderUsecase(stores repo.StoreRepository, orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{stores: stores, orders: orders}
}

func (u *OrderUsecase) ListByStore(ctx context.Context, userID string, storeID string) ([]model.Order, error) {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return []model.Order{}, err
	}

	orders, err := u.orders.ListByStore(ctx, storeID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}
