package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSettlementUsecaseForTest(orders *OrderRepoMock, products *ProductRepoMock, gateway *PaymentGatewayMock) (*SettlementUsecase, *TxManagerMock) {
	tx := &TxManagerMock{Repos: &TxReposMock{orders: orders, products: products}}
	return NewSettlementUsecase(tx, gateway), tx
}

func TestHandlePaymentEvent_MarksPaidAndArchives(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	gateway := new(PaymentGatewayMock)
	uc, tx := newSettlementUsecaseForTest(orders, products, gateway)

	payload := []byte(`{"id":"evt_1"}`)
	gateway.On("VerifyEvent", payload, "sig").Return(PaymentEvent{
		Type:    EventCheckoutCompleted,
		OrderID: "o1",
		Phone:   "+15550001111",
		//Line2なし：詰めてつなぐ
		AddressParts: []string{"123 Main St", "", "Springfield", "IL", "62701", "US"},
	}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	order := model.Order{
		ID:      "o1",
		StoreID: "store-1",
		OrderItems: []model.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1"},
			{ID: "i2", OrderID: "o1", ProductID: "p2"},
		},
	}
	orders.On("FindByIDWithItems", mock.Anything, "o1").Return(order, nil)
	orders.On("MarkPaid", mock.Anything, "o1", "123 Main St, Springfield, IL, 62701, US", "+15550001111").Return(nil)
	products.On("ArchiveByIDs", mock.Anything, []string{"p1", "p2"}).Return(nil)

	err := uc.HandlePaymentEvent(context.Background(), payload, "sig")

	assert.NoError(t, err)
	orders.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestHandlePaymentEvent_Redelivery(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	gateway := new(PaymentGatewayMock)
	uc, tx := newSettlementUsecaseForTest(orders, products, gateway)

	payload := []byte(`{"id":"evt_1"}`)
	gateway.On("VerifyEvent", payload, "sig").Return(PaymentEvent{
		Type:         EventCheckoutCompleted,
		OrderID:      "o1",
		Phone:        "+15550001111",
		AddressParts: []string{"123 Main St"},
	}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	order := model.Order{
		ID:         "o1",
		OrderItems: []model.OrderItem{{ID: "i1", OrderID: "o1", ProductID: "p1"}},
	}
	orders.On("FindByIDWithItems", mock.Anything, "o1").Return(order, nil)
	orders.On("MarkPaid", mock.Anything, "o1", "123 Main St", "+15550001111").Return(nil)
	products.On("ArchiveByIDs", mock.Anything, []string{"p1"}).Return(nil)

	//同じイベントが2回届いても両方成功する（set書き込みなので状態は変わらない）
	assert.NoError(t, uc.HandlePaymentEvent(context.Background(), payload, "sig"))
	assert.NoError(t, uc.HandlePaymentEvent(context.Background(), payload, "sig"))

	orders.AssertNumberOfCalls(t, "MarkPaid", 2)
	products.AssertNumberOfCalls(t, "ArchiveByIDs", 2)
}

func TestHandlePaymentEvent_BadSignature(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	gateway := new(PaymentGatewayMock)
	uc, _ := newSettlementUsecaseForTest(orders, products, gateway)

	payload := []byte(`{"id":"evt_1"}`)
	gateway.On("VerifyEvent", payload, "bad").Return(PaymentEvent{}, errors.New("signature mismatch"))

	err := uc.HandlePaymentEvent(context.Background(), payload, "bad")

	assertStatus(t, err, http.StatusBadRequest)
	//署名NGなら何も書かない
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "ArchiveByIDs", mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_IgnoresOtherEventTypes(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	gateway := new(PaymentGatewayMock)
	uc, _ := newSettlementUsecaseForTest(orders, products, gateway)

	payload := []byte(`{"id":"evt_2"}`)
	gateway.On("VerifyEvent", payload, "sig").Return(PaymentEvent{Type: "payment_intent.succeeded"}, nil)

	err := uc.HandlePaymentEvent(context.Background(), payload, "sig")

	//成功扱いで無視（Stripeに再送させない）
	assert.NoError(t, err)
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_UnknownOrder(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	gateway := new(PaymentGatewayMock)
	uc, tx := newSettlementUsecaseForTest(orders, products, gateway)

	payload := []byte(`{"id":"evt_3"}`)
	gateway.On("VerifyEvent", payload, "sig").Return(PaymentEvent{
		Type:    EventCheckoutCompleted,
		OrderID: "ghost",
	}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)
	orders.On("FindByIDWithItems", mock.Anything, "ghost").Return(model.Order{}, repo.ErrNotFound)

	err := uc.HandlePaymentEvent(context.Background(), payload, "sig")

	assertStatus(t, err, http.StatusNotFound)
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "ArchiveByIDs", mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_MissingOrderID(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	gateway := new(PaymentGatewayMock)
	uc, _ := newSettlementUsecaseForTest(orders, products, gateway)

	payload := []byte(`{"id":"evt_4"}`)
	gateway.On("VerifyEvent", payload, "sig").Return(PaymentEvent{Type: EventCheckoutCompleted}, nil)

	err := uc.HandlePaymentEvent(context.Background(), payload, "sig")

	assertStatus(t, err, http.StatusNotFound)
}

func TestJoinAddress(t *testing.T) {
	assert.Equal(t, "a, b, c", joinAddress([]string{"a", "b", "c"}))
	assert.Equal(t, "a, c", joinAddress([]string{"a", "", "c"}))
	assert.Equal(t, "", joinAddress([]string{"", "", ""}))
	assert.Equal(t, "", joinAddress(nil))
}
