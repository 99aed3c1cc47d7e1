package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "app/internal/repository"
)

type SettlementUsecase struct {
	tx      repo.TransactionManager
	gateway PaymentGateway
}

func NewSettlementUsecase(tx repo.TransactionManager, gateway PaymentGateway) *SettlementUsecase {
	return &SettlementUsecase{tx: tx, gateway: gateway}
}

// 決済事業者からのwebhookを1回分処理する。
// checkout完了以外のイベントは成功扱いで無視。
// 署名NGと注文不明はエラーで返す（エラーで返せば事業者側が再送してくれる。
// 黙って捨てると注文が永久に未払いのまま残る）。
// 再送されても安全：paid/address/phoneはset書き込み、アーカイブも冪等。
func (u *SettlementUsecase) HandlePaymentEvent(ctx context.Context, payload []byte, sigHeader string) error {
	ev, err := u.gateway.VerifyEvent(payload, sigHeader)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "webhook signature verification failed")
	}

	if ev.Type != EventCheckoutCompleted {
		return nil
	}

	address := joinAddress(ev.AddressParts)

	if ev.OrderID == "" {
		return NewHTTPError(http.StatusNotFound, "order id missing in event metadata")
	}

	//支払いフラグ更新と商品アーカイブはまとめて確定させる
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByIDWithItems(ctx, ev.OrderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Orders().MarkPaid(ctx, order.ID, address, ev.Phone); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文に入っていた商品をすべて販売停止にする。
		//別の未払い注文が同じ商品を参照していても対象になる（仕様）。
		productIDs := make([]string, 0, len(order.OrderItems))
		for _, it := range order.OrderItems {
			productIDs = append(productIDs, it.ProductID)
		}
		if err := r.Products().ArchiveByIDs(ctx, productIDs); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
}

// 空でない項目だけを", "でつなぐ。無い項目は詰める（placeholderを入れない）。
func joinAddress(parts []string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, ", ")
}
