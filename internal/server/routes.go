package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Store     *handler.StoreHandler
	Billboard *handler.BillboardHandler
	Category  *handler.CategoryHandler
	Size      *handler.SizeHandler
	Color     *handler.ColorHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Checkout  *handler.CheckoutHandler
	Webhook   *handler.WebhookHandler
	Metrics   *handler.MetricsHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Store.RegisterRoutes(e, cfg)
	h.Billboard.RegisterRoutes(e, cfg)
	h.Category.RegisterRoutes(e, cfg)
	h.Size.RegisterRoutes(e, cfg)
	h.Color.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Metrics.RegisterRoutes(e, cfg)

	//認証なし（checkoutはストアフロント、webhookはStripeが叩く）
	h.Checkout.RegisterRoutes(e)
	h.Webhook.RegisterRoutes(e)
}
