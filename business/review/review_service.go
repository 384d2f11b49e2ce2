package review

import (
	"context"
	"strings"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
	"agamOrganics/pkg/money"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (domain.Review, error)
	Exists(ctx context.Context, userID, productID string) (bool, error)
	ListByProduct(ctx context.Context, productID string, offset, limit int) ([]domain.Review, error)
	Ratings(ctx context.Context, productID string) ([]int, error)
	IncrementHelpful(ctx context.Context, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
}

type ReviewInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"max=200"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type reviewService struct {
	reviewRepo  ReviewRepository
	productRepo ProductRepository
	validate    *validator.Validate
}

func NewReviewService(reviewRepo ReviewRepository, productRepo ProductRepository, validate *validator.Validate) *reviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		validate:    validate,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, in ReviewInput) (domain.Review, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Review{}, domain.Errorf(domain.ErrBadRequest, "%s", err.Error())
	}

	if _, err := s.productRepo.FindByID(ctx, in.ProductID); err != nil {
		return domain.Review{}, err
	}

	exists, err := s.reviewRepo.Exists(ctx, userID, in.ProductID)
	if err != nil {
		return domain.Review{}, err
	}
	if exists {
		return domain.Review{}, domain.Errorf(domain.ErrConflict, "you have already reviewed this product")
	}

	review := domain.Review{
		UserID:    userID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Title:     strings.TrimSpace(in.Title),
		Comment:   strings.TrimSpace(in.Comment),
	}
	if err := s.reviewRepo.Create(ctx, &review); err != nil {
		return domain.Review{}, err
	}

	if err := s.recomputeRating(ctx, in.ProductID); err != nil {
		return domain.Review{}, err
	}

	// Re-read to pick up the reviewer name.
	created, err := s.reviewRepo.FindByID(ctx, review.ID)
	if err != nil {
		return review, nil
	}

	return created, nil
}

func (s *reviewService) ListReviews(ctx context.Context, productID string, page, pageSize int) (domain.ReviewPage, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return domain.ReviewPage{}, domain.Errorf(domain.ErrBadRequest, "page must be at least 1")
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return domain.ReviewPage{}, domain.Errorf(domain.ErrBadRequest, "page_size must be between 1 and %d", MaxPageSize)
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, productID, (page-1)*pageSize, pageSize)
	if err != nil {
		logger.Error("Failed to list reviews", "product_id", productID, "error", err)
		return domain.ReviewPage{}, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	ratings, err := s.reviewRepo.Ratings(ctx, productID)
	if err != nil {
		return domain.ReviewPage{}, err
	}

	return domain.ReviewPage{
		Reviews:       reviews,
		Total:         int64(len(ratings)),
		AverageRating: money.Average(ratings),
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkHelpful increments the counter unconditionally; repeated votes all count.
func (s *reviewService) MarkHelpful(ctx context.Context, id string) error {
	return s.reviewRepo.IncrementHelpful(ctx, id)
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, id string) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return domain.Errorf(domain.ErrNotFound, "review not found")
	}

	if err := s.reviewRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	return s.recomputeRating(ctx, review.ProductID)
}

func (s *reviewService) recomputeRating(ctx context.Context, productID string) error {
	ratings, err := s.reviewRepo.Ratings(ctx, productID)
	if err != nil {
		return err
	}

	avg := money.Average(ratings)
	if err := s.productRepo.UpdateRating(ctx, productID, avg, len(ratings)); err != nil {
		logger.Error("Failed to update product rating", "product_id", productID, "error", err)
		return err
	}

	return nil
}
