package product

import (
	"context"
	"fmt"
	"strings"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
)

const (
	DefaultPageSize     = 20
	MaxPageSize         = 100
	DefaultSimilarLimit = 4
	MaxSimilarLimit     = 10
)

// ProductRepository contract interface
type ProductRepository interface {
	List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindSimilar(ctx context.Context, category, excludeID string, limit int) ([]domain.Product, error)
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

var defaultOrder = map[string]string{
	domain.SortByPrice:     "asc",
	domain.SortByPriceDesc: "desc",
	domain.SortByRating:    "desc",
	domain.SortByCreatedAt: "desc",
	domain.SortByName:      "asc",
}

// NormalizeFilter validates paging and sort input and fills in defaults.
func NormalizeFilter(f domain.ProductFilter) (domain.ProductFilter, error) {
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Page < 1 {
		return f, domain.Errorf(domain.ErrBadRequest, "page must be at least 1")
	}

	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		return f, domain.Errorf(domain.ErrBadRequest, "page_size must be between 1 and %d", MaxPageSize)
	}

	if f.SortBy == "" {
		f.SortBy = domain.SortByCreatedAt
	}
	def, ok := defaultOrder[f.SortBy]
	if !ok {
		return f, domain.Errorf(domain.ErrBadRequest, "invalid sort_by %q", f.SortBy)
	}

	f.Order = strings.ToLower(f.Order)
	switch {
	case f.SortBy == domain.SortByPrice || f.SortBy == domain.SortByPriceDesc:
		f.Order = def
	case f.Order == "":
		f.Order = def
	case f.Order != "asc" && f.Order != "desc":
		return f, domain.Errorf(domain.ErrBadRequest, "order must be asc or desc")
	}

	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.TrimSpace(f.Search)

	return f, nil
}

func (s *productService) ListProducts(ctx context.Context, f domain.ProductFilter) (domain.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProductPage{}, fmt.Errorf("context error: %w", err)
	}

	f, err := NormalizeFilter(f)
	if err != nil {
		return domain.ProductPage{}, err
	}

	products, total, err := s.productRepo.List(ctx, f)
	if err != nil {
		logger.Error("Failed to list products", "error", err)
		return domain.ProductPage{}, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return domain.ProductPage{
		Products: products,
		Total:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
	}, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find product", "product_id", id, "error", err)
		return domain.Product{}, err
	}

	return product, nil
}

func (s *productService) SimilarProducts(ctx context.Context, id string, limit int) ([]domain.Product, error) {
	if limit == 0 {
		limit = DefaultSimilarLimit
	}
	if limit < 1 || limit > MaxSimilarLimit {
		return nil, domain.Errorf(domain.ErrBadRequest, "limit must be between 1 and %d", MaxSimilarLimit)
	}

	source, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindSimilar(ctx, source.Category, source.ID, limit)
	if err != nil {
		logger.Error("Failed to find similar products", "product_id", id, "error", err)
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}
