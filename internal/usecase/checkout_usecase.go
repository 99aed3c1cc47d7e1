package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type CheckoutUsecase struct {
	products repo.ProductRepository
	orders   repo.OrderRepository
	gateway  PaymentGateway
	idGen    IDGenerator
	storeURL string // 決済後に戻すストアフロントのURL
}

func NewCheckoutUsecase(
	products repo.ProductRepository,
	orders repo.OrderRepository,
	gateway PaymentGateway,
	idGen IDGenerator,
	storeURL string,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		products: products,
		orders:   orders,
		gateway:  gateway,
		idGen:    idGen,
		storeURL: storeURL,
	}
}

type CheckoutOutput struct {
	URL string `json:"url"`
}

// 価格×100を最小通貨単位の整数にする（小数点以下は切り捨て）
func toUnitAmount(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).IntPart()
}

// 未払いの注文を作って、決済セッションのリダイレクトURLを返す。
// 注文を先に保存してからセッションを作るので、セッション作成に失敗しても
// 注文は残る（補償処理は持たない。未払いのまま残った注文は外部の掃除に任せる）。
func (u *CheckoutUsecase) InitiateCheckout(ctx context.Context, storeID string, productIDs []string) (CheckoutOutput, error) {
	if storeID == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "store id required")
	}
	if len(productIDs) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "product ids are required")
	}

	products, err := u.products.ListByIDs(ctx, productIDs)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	//リクエストの並び順どおりに明細を作る。重複IDは重複のまま2行になる。
	//存在しないIDはここで落とす（存在しない商品への参照を保存しない）。
	lineItems := make([]SessionLineItem, 0, len(productIDs))
	orderItems := make([]model.OrderItem, 0, len(productIDs))
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			continue
		}
		lineItems = append(lineItems, SessionLineItem{
			Name:       p.Name,
			UnitAmount: toUnitAmount(p.Price),
		})
		orderItems = append(orderItems, model.OrderItem{
			ID:        u.idGen.NewID(),
			ProductID: p.ID,
		})
	}

	if len(orderItems) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "no valid products")
	}

	order := model.Order{
		ID:         u.idGen.NewID(),
		StoreID:    storeID,
		IsPaid:     false,
		OrderItems: orderItems,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	url, err := u.gateway.CreateSession(ctx, CreateSessionInput{
		LineItems:  lineItems,
		SuccessURL: u.storeURL + "/cart?success=1",
		CancelURL:  u.storeURL + "/cart?canceled=1",
		OrderID:    order.ID,
	})
	if err != nil {
		//作成済みの注文は未払いのまま残る
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "payment provider error")
	}

	return CheckoutOutput{URL: url}, nil
}
