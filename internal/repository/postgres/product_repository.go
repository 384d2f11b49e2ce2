package postgres

import (
	"context"
	"fmt"
	"strings"

	"agamOrganics/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

var sortColumns = map[string]string{
	domain.SortByPrice:     "COALESCE(discount_price, price)",
	domain.SortByPriceDesc: "COALESCE(discount_price, price)",
	domain.SortByRating:    "rating",
	domain.SortByCreatedAt: "created_at",
	domain.SortByName:      "name",
}

func (r *ProductRepository) filtered(ctx context.Context, f domain.ProductFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&domain.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	return q
}

// List returns one page of products and the count of all rows matching the filter.
func (r *ProductRepository) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[domain.SortByCreatedAt]
	}
	direction := "ASC"
	if strings.EqualFold(f.Order, "desc") {
		direction = "DESC"
	}

	var products []domain.Product
	err := r.filtered(ctx, f).
		Order(column + " " + direction).
		Order("id ASC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find products: %w", err)
	}

	return products, total, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product

	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return domain.Product{}, notFound(err, "product")
	}

	return product, nil
}

// FindByIDs returns the products that still exist, keyed by id.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var products []domain.Product
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	for _, p := range products {
		out[p.ID] = p
	}

	return out, nil
}

func (r *ProductRepository) FindSimilar(ctx context.Context, category, excludeID string, limit int) ([]domain.Product, error) {
	var products []domain.Product

	err := r.DB.WithContext(ctx).
		Where("category = ? AND id <> ?", category, excludeID).
		Order("rating DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find similar products: %w", err)
	}

	return products, nil
}

// DecrementStock subtracts qty only when enough stock remains. It reports whether a row changed.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	result := r.DB.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *ProductRepository) IncrementStock(ctx context.Context, id string, qty int) error {
	result := r.DB.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", qty))
	if result.Error != nil {
		return fmt.Errorf("failed to restore stock: %w", result.Error)
	}

	return nil
}

func (r *ProductRepository) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	err := r.DB.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count}).Error
	if err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}

	return nil
}
