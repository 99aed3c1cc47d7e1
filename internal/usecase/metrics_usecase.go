package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type MetricsUsecase struct {
	tx     repo.TransactionManager
	stores repo.StoreRepository
}

func NewMetricsUsecase(tx repo.TransactionManager, stores repo.StoreRepository) *MetricsUsecase {
	return &MetricsUsecase{tx: tx, stores: stores}
}

type MonthlyRevenue struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type StoreMetrics struct {
	TotalRevenue        decimal.Decimal  `json:"total_revenue"`
	MonthlySeries       []MonthlyRevenue `json:"monthly_series"`
	PaidOrderCount      int64            `json:"paid_order_count"`
	InStockProductCount int64            `json:"in_stock_product_count"`
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ダッシュボード用の4つの集計値を返す。
// 売上・月別・注文件数は同じ1回の読み取りから導くので、互いに矛盾しない
// （売上に入った注文は必ず件数にも入る）。
func (u *MetricsUsecase) ComputeMetrics(ctx context.Context, userID string, storeID string) (StoreMetrics, error) {
	if _, err := authorizeStoreOwner(ctx, u.stores, userID, storeID); err != nil {
		return StoreMetrics{}, err
	}

	out := StoreMetrics{
		TotalRevenue:  decimal.Zero,
		MonthlySeries: make([]MonthlyRevenue, 12),
	}
	//12ヶ月ぶんを常に返す（データの無い月も0で埋める）
	for i, name := range monthNames {
		out.MonthlySeries[i] = MonthlyRevenue{Name: name, Total: decimal.Zero}
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListPaidByStore(ctx, storeID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//件数も同じ読み取り結果から出す。READ COMMITTEDではステートメントごとに
		//スナップショットが変わるので、別カウントを取ると売上と件数がずれうる。
		out.PaidOrderCount = int64(len(orders))

		for _, o := range orders {
			//金額は明細が参照する商品の「現在」の価格を合計する。
			//注文時点の価格は保存していない。
			orderTotal := decimal.Zero
			for _, it := range o.OrderItems {
				orderTotal = orderTotal.Add(it.Product.Price)
			}

			out.TotalRevenue = out.TotalRevenue.Add(orderTotal)

			//年は区別しない。全部の1月が同じJanに入る。
			m := int(o.CreatedAt.Month()) - 1
			out.MonthlySeries[m].Total = out.MonthlySeries[m].Total.Add(orderTotal)
		}

		stock, err := r.Products().CountInStock(ctx, storeID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.InStockProductCount = stock

		return nil
	})
	if err != nil {
		return StoreMetrics{}, err
	}

	return out, nil
}
