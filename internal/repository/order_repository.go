package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	//明細込みで注文を作る（注文と明細は同時に確定、後から増減しない）
	Create(ctx context.Context, order model.Order) error
	FindByIDWithItems(ctx context.Context, orderID string) (model.Order, error)

	//支払い確定。同じ内容で何度呼んでも結果は同じ（webhook再送対策）
	MarkPaid(ctx context.Context, orderID string, address string, phone string) error

	//管理画面用の注文一覧（明細・商品込み、新しい順）
	ListByStore(ctx context.Context, storeID string) ([]model.Order, error)
	//売上集計用。isPaid=trueのみ、明細と商品の現在価格込み。
	//注文件数もこの結果のlenから出す（別カウントを取ると読み取り間でずれうる）。
	ListPaidByStore(ctx context.Context, storeID string) ([]model.Order, error)
}
