package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ダッシュボード用の集計。オーナーだけが見られる。
type MetricsHandler struct {
	uc *usecase.MetricsUsecase
}

func NewMetricsHandler(uc *usecase.MetricsUsecase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

func (h *MetricsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/:storeId/metrics", h.get, middleware.AuthJWT(cfg))
}

func (h *MetricsHandler) get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ComputeMetrics(c.Request().Context(), userID, c.Param("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
