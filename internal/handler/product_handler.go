package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ProductImageRequest struct {
	URL string `json:"url"`
}

type ProductRequest struct {
	Name       string                `json:"name"`
	Price      decimal.Decimal       `json:"price"`
	CategoryID string                `json:"categoryId"`
	SizeID     string                `json:"sizeId"`
	ColorID    string                `json:"colorId"`
	Images     []ProductImageRequest `json:"images"`
	IsFeatured bool                  `json:"isFeatured"`
	IsArchived bool                  `json:"isArchived"`
}

func (req ProductRequest) toInput() usecase.ProductInput {
	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, img.URL)
	}
	return usecase.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		ColorID:    req.ColorID,
		Images:     images,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
	}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/:storeId/products")

	g.GET("", h.list)
	g.GET("/:productId", h.detail)

	auth := middleware.AuthJWT(cfg)
	g.POST("", h.create, auth)
	g.PATCH("/:productId", h.update, auth)
	g.DELETE("/:productId", h.delete, auth)
}

func (h *ProductHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), userID, c.Param("storeId"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ProductListInput{
		CategoryID: c.QueryParam("categoryId"),
		SizeID:     c.QueryParam("sizeId"),
		ColorID:    c.QueryParam("colorId"),
	}
	if c.QueryParam("isFeatured") == "true" {
		t := true
		in.IsFeatured = &t
	}

	out, err := h.uc.List(c.Request().Context(), c.Param("storeId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), userID, c.Param("storeId"), c.Param("productId"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("storeId"), c.Param("productId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
