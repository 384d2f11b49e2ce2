package product_test

import (
	"context"
	"errors"
	"testing"

	"agamOrganics/business/product"
	"agamOrganics/domain"
)

type fakeProductRepo struct {
	products    map[string]domain.Product
	lastFilter  domain.ProductFilter
	similarArgs []string
}

func (f *fakeProductRepo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	f.lastFilter = filter
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.Errorf(domain.ErrNotFound, "product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindSimilar(ctx context.Context, category, excludeID string, limit int) ([]domain.Product, error) {
	f.similarArgs = []string{category, excludeID}
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == category && p.ID != excludeID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestNormalizeFilterDefaults(t *testing.T) {
	t.Parallel()

	f, err := product.NormalizeFilter(domain.ProductFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.Page != 1 || f.PageSize != 20 || f.SortBy != domain.SortByCreatedAt || f.Order != "desc" {
		t.Fatalf("unexpected defaults %+v", f)
	}
}

func TestNormalizeFilterOrder(t *testing.T) {
	t.Parallel()

	f, _ := product.NormalizeFilter(domain.ProductFilter{SortBy: domain.SortByName, Order: "DESC"})
	if f.Order != "desc" {
		t.Fatalf("expected explicit order to win, got %s", f.Order)
	}

	f, _ = product.NormalizeFilter(domain.ProductFilter{SortBy: domain.SortByPriceDesc, Order: "asc"})
	if f.Order != "desc" {
		t.Fatalf("expected price_desc to stay descending, got %s", f.Order)
	}
}

func TestNormalizeFilterRejects(t *testing.T) {
	t.Parallel()

	bad := []domain.ProductFilter{
		{Page: -1},
		{PageSize: 101},
		{PageSize: -5},
		{SortBy: "popularity"},
		{SortBy: domain.SortByName, Order: "sideways"},
	}
	for _, f := range bad {
		if _, err := product.NormalizeFilter(f); !errors.Is(err, domain.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", f, err)
		}
	}
}

func TestListProductsPassesNormalizedFilter(t *testing.T) {
	t.Parallel()

	repo := &fakeProductRepo{products: map[string]domain.Product{"p1": {ID: "p1"}}}
	svc := product.NewProductService(repo)

	page, err := svc.ListProducts(context.Background(), domain.ProductFilter{Search: "  honey "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Total != 1 || page.Page != 1 || page.PageSize != 20 {
		t.Fatalf("unexpected page %+v", page)
	}
	if repo.lastFilter.Search != "honey" {
		t.Fatalf("expected trimmed search, got %q", repo.lastFilter.Search)
	}
}

func TestSimilarProducts(t *testing.T) {
	t.Parallel()

	repo := &fakeProductRepo{products: map[string]domain.Product{
		"p1": {ID: "p1", Category: "honey"},
		"p2": {ID: "p2", Category: "honey"},
		"p3": {ID: "p3", Category: "oils"},
	}}
	svc := product.NewProductService(repo)

	got, err := svc.SimilarProducts(context.Background(), "p1", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("unexpected similar %+v", got)
	}

	if _, err := svc.SimilarProducts(context.Background(), "missing", 4); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.SimilarProducts(context.Background(), "p1", 11); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
