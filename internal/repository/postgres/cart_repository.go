package postgres

import (
	"context"
	"fmt"

	"agamOrganics/domain"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

// ListByUser returns the user's lines with their products preloaded.
func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}

	return lines, nil
}

func (r *CartRepository) FindByProduct(ctx context.Context, userID, productID string) (domain.CartLine, error) {
	var line domain.CartLine

	err := r.DB.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
	if err != nil {
		return domain.CartLine{}, notFound(err, "cart item")
	}

	return line, nil
}

func (r *CartRepository) FindForUser(ctx context.Context, userID, id string) (domain.CartLine, error) {
	var line domain.CartLine

	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&line).Error
	if err != nil {
		return domain.CartLine{}, notFound(err, "cart item")
	}

	return line, nil
}

func (r *CartRepository) Create(ctx context.Context, line *domain.CartLine) error {
	if err := r.DB.WithContext(ctx).Omit("Product").Create(line).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrConflict, "product already in cart")
		}
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, id string, qty int) error {
	result := r.DB.WithContext(ctx).Model(&domain.CartLine{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", qty)
	if result.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "cart item not found")
	}

	return nil
}

func (r *CartRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.CartLine{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "cart item not found")
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartLine{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
