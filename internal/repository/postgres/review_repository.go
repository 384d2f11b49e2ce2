package postgres

import (
	"context"
	"fmt"

	"agamOrganics/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) withUserName(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&domain.Review{}).
		Select("reviews.*, users.full_name AS user_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id")
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrConflict, "you have already reviewed this product")
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (domain.Review, error) {
	var review domain.Review

	if err := r.withUserName(ctx).Where("reviews.id = ?", id).First(&review).Error; err != nil {
		return domain.Review{}, notFound(err, "review")
	}

	return review, nil
}

func (r *ReviewRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}

	return count > 0, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string, offset, limit int) ([]domain.Review, error) {
	var reviews []domain.Review

	err := r.withUserName(ctx).
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// Ratings returns every rating of the product, used for average recomputation.
func (r *ReviewRepository) Ratings(ctx context.Context, productID string) ([]int, error) {
	var ratings []int

	err := r.DB.WithContext(ctx).Model(&domain.Review{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	return ratings, nil
}

func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", id).
		Update("helpful_count", gorm.Expr("helpful_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to mark review helpful: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "review not found")
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "review not found")
	}

	return nil
}
