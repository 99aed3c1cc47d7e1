package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository     { return r.orders }
func (r *TxReposMock) Products() repo.ProductRepository { return r.products }

// =====================
// Repository mocks
// =====================

type StoreRepoMock struct{ mock.Mock }

func (m *StoreRepoMock) FindByID(ctx context.Context, id string) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

func (m *StoreRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Store, error) {
	args := m.Called(ctx, userID)
	stores, _ := args.Get(0).([]model.Store)
	return stores, args.Error(1)
}

func (m *StoreRepoMock) Create(ctx context.Context, s model.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *StoreRepoMock) Update(ctx context.Context, s model.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *StoreRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BillboardRepoMock struct{ mock.Mock }

func (m *BillboardRepoMock) FindByID(ctx context.Context, id string) (model.Billboard, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Billboard)
	return b, args.Error(1)
}

func (m *BillboardRepoMock) ListByStore(ctx context.Context, storeID string) ([]model.Billboard, error) {
	args := m.Called(ctx, storeID)
	billboards, _ := args.Get(0).([]model.Billboard)
	return billboards, args.Error(1)
}

func (m *BillboardRepoMock) Create(ctx context.Context, b model.Billboard) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BillboardRepoMock) Update(ctx context.Context, b model.Billboard) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BillboardRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListByStore(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) ListByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) ArchiveByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *ProductRepoMock) CountInStock(ctx context.Context, storeID string) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByIDWithItems(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) MarkPaid(ctx context.Context, orderID string, address string, phone string) error {
	args := m.Called(ctx, orderID, address, phone)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	args := m.Called(ctx, storeID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListPaidByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	args := m.Called(ctx, storeID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// =====================
// PaymentGateway mock
// =====================

type PaymentGatewayMock struct{ mock.Mock }

func (m *PaymentGatewayMock) CreateSession(ctx context.Context, in CreateSessionInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *PaymentGatewayMock) VerifyEvent(payload []byte, sigHeader string) (PaymentEvent, error) {
	args := m.Called(payload, sigHeader)
	ev, _ := args.Get(0).(PaymentEvent)
	return ev, args.Error(1)
}

// =====================
// Helpers
// =====================

// 採番を予測可能にする（id-1, id-2, ...）
type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// error contains（HTTPErrorの実装詳細に依存しない）
func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	he, ok := AsHTTPError(err)
	if assert.True(t, ok, "err=%v is not HTTPError", err) {
		assert.Equal(t, wantStatus, he.Status)
	}
}
