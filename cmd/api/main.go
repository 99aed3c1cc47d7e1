package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/payment"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	//.envが無い環境（本番）では環境変数をそのまま使う
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Store{},
		&model.Billboard{},
		&model.Category{},
		&model.Size{},
		&model.Color{},
		&model.Product{},
		&model.Image{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	billboardRepo := infraRepo.NewBillboardGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	sizeRepo := infraRepo.NewSizeGormRepository(gormDB)
	colorRepo := infraRepo.NewColorGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	gateway := payment.NewStripeGateway(cfg.StripeAPIKey, cfg.StripeWebhookSecret, cfg.Currency)

	//Usecase生成
	storeUC := usecase.NewStoreUsecase(storeRepo, idGen)
	billboardUC := usecase.NewBillboardUsecase(storeRepo, billboardRepo, idGen)
	categoryUC := usecase.NewCategoryUsecase(storeRepo, billboardRepo, categoryRepo, idGen)
	sizeUC := usecase.NewSizeUsecase(storeRepo, sizeRepo, idGen)
	colorUC := usecase.NewColorUsecase(storeRepo, colorRepo, idGen)
	productUC := usecase.NewProductUsecase(storeRepo, productRepo, auditRepo, idGen)
	orderUC := usecase.NewOrderUsecase(storeRepo, orderRepo)
	checkoutUC := usecase.NewCheckoutUsecase(productRepo, orderRepo, gateway, idGen, cfg.FrontendStoreURL)
	settlementUC := usecase.NewSettlementUsecase(txManager, gateway)
	metricsUC := usecase.NewMetricsUsecase(txManager, storeRepo)

	//Handler生成とServer起動
	e := server.New(cfg, server.Handlers{
		Store:     handler.NewStoreHandler(storeUC),
		Billboard: handler.NewBillboardHandler(billboardUC),
		Category:  handler.NewCategoryHandler(categoryUC),
		Size:      handler.NewSizeHandler(sizeUC),
		Color:     handler.NewColorHandler(colorUC),
		Product:   handler.NewProductHandler(productUC),
		Order:     handler.NewOrderHandler(orderUC),
		Checkout:  handler.NewCheckoutHandler(checkoutUC),
		Webhook:   handler.NewWebhookHandler(settlementUC),
		Metrics:   handler.NewMetricsHandler(metricsUC),
	})

	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
