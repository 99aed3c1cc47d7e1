package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索（ストアフロント向けフィルタ）
type ProductListQuery struct {
	StoreID    string
	CategoryID string
	SizeID     string
	ColorID    string
	IsFeatured *bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListByStore(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	//見つからないIDは結果から落ちる（エラーにしない）
	ListByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) error
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id string) error

	//決済確定時の一括アーカイブ（既にarchivedでもエラーにしない）
	ArchiveByIDs(ctx context.Context, ids []string) error
	//在庫数 = アーカイブされていない商品の件数
	CountInStock(ctx context.Context, storeID string) (int64, error)
}
