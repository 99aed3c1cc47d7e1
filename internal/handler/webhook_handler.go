package handler

import (
	"io"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Stripeからのwebhook受け口。認証は署名検証のみ（ユーザーセッションは無い）。
type WebhookHandler struct {
	uc *usecase.SettlementUsecase
}

func NewWebhookHandler(uc *usecase.SettlementUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/webhook", h.handle)
}

func (h *WebhookHandler) handle(c echo.Context) error {
	//署名検証は生のボディに対して行うので、バインドせずそのまま読む
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	sig := c.Request().Header.Get("Stripe-Signature")

	if err := h.uc.HandlePaymentEvent(c.Request().Context(), payload, sig); err != nil {
		//非2xxで返せばStripeが再送する
		c.Logger().Errorf("webhook: %v", err)
		return writeError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
