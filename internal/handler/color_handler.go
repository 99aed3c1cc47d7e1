package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ColorHandler struct {
	uc *usecase.ColorUsecase
}

func NewColorHandler(uc *usecase.ColorUsecase) *ColorHandler {
	return &ColorHandler{uc: uc}
}

type ColorRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *ColorHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/:storeId/colors")

	g.GET("", h.list)
	g.GET("/:colorId", h.detail)

	auth := middleware.AuthJWT(cfg)
	g.POST("", h.create, auth)
	g.PATCH("/:colorId", h.update, auth)
	g.DELETE("/:colorId", h.delete, auth)
}

func (h *ColorHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ColorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), userID, c.Param("storeId"), usecase.ColorInput{
		Name:  req.Name,
		Value: req.Value,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ColorHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ColorHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("colorId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ColorHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ColorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), userID, c.Param("storeId"), c.Param("colorId"), usecase.ColorInput{
		Name:  req.Name,
		Value: req.Value,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ColorHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("storeId"), c.Param("colorId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
