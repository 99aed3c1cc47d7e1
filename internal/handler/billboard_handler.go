package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BillboardHandler struct {
	uc *usecase.BillboardUsecase
}

func NewBillboardHandler(uc *usecase.BillboardUsecase) *BillboardHandler {
	return &BillboardHandler{uc: uc}
}

type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

// 読み取りはストアフロントも使うので公開、書き込みはオーナーのみ
func (h *BillboardHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/:storeId/billboards")

	g.GET("", h.list)
	g.GET("/:billboardId", h.detail)

	auth := middleware.AuthJWT(cfg)
	g.POST("", h.create, auth)
	g.PATCH("/:billboardId", h.update, auth)
	g.DELETE("/:billboardId", h.delete, auth)
}

func (h *BillboardHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req BillboardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), userID, c.Param("storeId"), usecase.BillboardInput{
		Label:    req.Label,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BillboardHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BillboardHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("billboardId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BillboardHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req BillboardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), userID, c.Param("storeId"), c.Param("billboardId"), usecase.BillboardInput{
		Label:    req.Label,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BillboardHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("storeId"), c.Param("billboardId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
