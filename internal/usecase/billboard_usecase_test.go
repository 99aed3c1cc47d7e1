package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBillboardUsecaseForTest(stores *StoreRepoMock, billboards *BillboardRepoMock) *BillboardUsecase {
	return NewBillboardUsecase(stores, billboards, &seqIDGen{})
}

func TestBillboardCreate_OK(t *testing.T) {
	stores := new(StoreRepoMock)
	billboards := new(BillboardRepoMock)
	uc := newBillboardUsecaseForTest(stores, billboards)

	stores.On("FindByID", mock.Anything, "store-1").Return(model.Store{ID: "store-1", UserID: "u1"}, nil)
	billboards.On("Create", mock.Anything, mock.AnythingOfType("model.Billboard")).Return(nil)

	b, err := uc.Create(context.Background(), "u1", "store-1", BillboardInput{
		Label:    "  Summer Sale  ",
		ImageURL: "https://img.example.com/summer.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, "id-1", b.ID)
	assert.Equal(t, "store-1", b.StoreID)
	//前後の空白は落とす
	assert.Equal(t, "Summer Sale", b.Label)
}

func TestBillboardCreate_ValidatesInput(t *testing.T) {
	stores := new(StoreRepoMock)
	billboards := new(BillboardRepoMock)
	uc := newBillboardUsecaseForTest(stores, billboards)

	_, err := uc.Create(context.Background(), "u1", "store-1", BillboardInput{Label: "  ", ImageURL: "x"})
	assertStatus(t, err, http.StatusBadRequest)
	assertErrContains(t, err, "label required")

	_, err = uc.Create(context.Background(), "u1", "store-1", BillboardInput{Label: "x", ImageURL: ""})
	assertStatus(t, err, http.StatusBadRequest)

	//バリデーションで弾いた時はDBを見に行かない
	stores.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	billboards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBillboardCreate_ForbiddenForNonOwner(t *testing.T) {
	stores := new(StoreRepoMock)
	billboards := new(BillboardRepoMock)
	uc := newBillboardUsecaseForTest(stores, billboards)

	stores.On("FindByID", mock.Anything, "store-1").Return(model.Store{ID: "store-1", UserID: "owner"}, nil)

	_, err := uc.Create(context.Background(), "intruder", "store-1", BillboardInput{
		Label:    "Summer Sale",
		ImageURL: "https://img.example.com/summer.png",
	})

	assertStatus(t, err, http.StatusForbidden)
	billboards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBillboardCreate_UnknownStore(t *testing.T) {
	stores := new(StoreRepoMock)
	billboards := new(BillboardRepoMock)
	uc := newBillboardUsecaseForTest(stores, billboards)

	stores.On("FindByID", mock.Anything, "ghost").Return(model.Store{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), "u1", "ghost", BillboardInput{
		Label:    "Summer Sale",
		ImageURL: "https://img.example.com/summer.png",
	})

	assertStatus(t, err, http.StatusNotFound)
}

func TestBillboardUpdate_RejectsCrossStoreBillboard(t *testing.T) {
	stores := new(StoreRepoMock)
	billboards := new(BillboardRepoMock)
	uc := newBillboardUsecaseForTest(stores, billboards)

	stores.On("FindByID", mock.Anything, "store-1").Return(model.Store{ID: "store-1", UserID: "u1"}, nil)
	//別ストアのbillboard：存在はするが404扱い（他ストアの資源を触らせない）
	billboards.On("FindByID", mock.Anything, "b9").Return(model.Billboard{ID: "b9", StoreID: "store-2"}, nil)

	_, err := uc.Update(context.Background(), "u1", "store-1", "b9", BillboardInput{
		Label:    "New",
		ImageURL: "https://img.example.com/new.png",
	})

	assertStatus(t, err, http.StatusNotFound)
	billboards.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBillboardGet_NotFound(t *testing.T) {
	stores := new(StoreRepoMock)
	billboards := new(BillboardRepoMock)
	uc := newBillboardUsecaseForTest(stores, billboards)

	billboards.On("FindByID", mock.Anything, "ghost").Return(model.Billboard{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), "ghost")

	assertStatus(t, err, http.StatusNotFound)
}
