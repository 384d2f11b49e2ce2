package rest

import (
	"context"
	"net/http"

	"agamOrganics/domain"

	"github.com/labstack/echo/v4"
)

type ProductService interface {
	ListProducts(ctx context.Context, f domain.ProductFilter) (domain.ProductPage, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	SimilarProducts(ctx context.Context, id string, limit int) ([]domain.Product, error)
}

type ProductHandler struct {
	productService ProductService
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

type ProductListQuery struct {
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	Category string `query:"category"`
	Search   string `query:"search"`
	SortBy   string `query:"sort_by"`
	Order    string `query:"order"`
}

type SimilarQuery struct {
	Limit int `query:"limit"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	var q ProductListQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	page, err := h.productService.ListProducts(ctx, domain.ProductFilter{
		Page:     q.Page,
		PageSize: q.PageSize,
		Category: q.Category,
		Search:   q.Search,
		SortBy:   q.SortBy,
		Order:    q.Order,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	product, err := h.productService.GetProduct(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) SimilarProducts(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var q SimilarQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	products, err := h.productService.SimilarProducts(ctx, id, q.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
	})
}
