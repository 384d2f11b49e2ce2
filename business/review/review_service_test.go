package review_test

import (
	"context"
	"errors"
	"testing"

	"agamOrganics/business/review"
	"agamOrganics/domain"

	"github.com/go-playground/validator/v10"
)

const productID = "8d6c1a7e-3f8b-4f4e-9a51-2b9f0c7d1e11"

type fakeReviewRepo struct {
	reviews map[string]domain.Review
	seq     int
}

func (f *fakeReviewRepo) Create(ctx context.Context, r *domain.Review) error {
	f.seq++
	r.ID = "review-" + string(rune('0'+f.seq))
	f.reviews[r.ID] = *r
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id string) (domain.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return domain.Review{}, domain.Errorf(domain.ErrNotFound, "review not found")
	}
	r.UserName = "Reviewer " + r.UserID
	return r, nil
}

func (f *fakeReviewRepo) Exists(ctx context.Context, userID, pid string) (bool, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.ProductID == pid {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, pid string, offset, limit int) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.ProductID == pid {
			out = append(out, r)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReviewRepo) Ratings(ctx context.Context, pid string) ([]int, error) {
	var out []int
	for _, r := range f.reviews {
		if r.ProductID == pid {
			out = append(out, r.Rating)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) IncrementHelpful(ctx context.Context, id string) error {
	r, ok := f.reviews[id]
	if !ok {
		return domain.Errorf(domain.ErrNotFound, "review not found")
	}
	r.HelpfulCount++
	f.reviews[id] = r
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, userID, id string) error {
	r, ok := f.reviews[id]
	if !ok || r.UserID != userID {
		return domain.Errorf(domain.ErrNotFound, "review not found")
	}
	delete(f.reviews, id)
	return nil
}

type fakeProductRepo struct {
	rating float64
	count  int
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (domain.Product, error) {
	if id != productID {
		return domain.Product{}, domain.Errorf(domain.ErrNotFound, "product not found")
	}
	return domain.Product{ID: id, Name: "Millet Flakes"}, nil
}

func (f *fakeProductRepo) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	f.rating = rating
	f.count = count
	return nil
}

func newService() (*fakeReviewRepo, *fakeProductRepo, interface {
	CreateReview(ctx context.Context, userID string, in review.ReviewInput) (domain.Review, error)
	ListReviews(ctx context.Context, productID string, page, pageSize int) (domain.ReviewPage, error)
	MarkHelpful(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, userID, id string) error
}) {
	reviews := &fakeReviewRepo{reviews: map[string]domain.Review{}}
	products := &fakeProductRepo{}
	return reviews, products, review.NewReviewService(reviews, products, validator.New())
}

func TestCreateReview_RecomputesRating(t *testing.T) {
	t.Parallel()

	_, products, svc := newService()
	ctx := context.Background()

	first, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: productID, Rating: 5, Title: "Great"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.UserName == "" {
		t.Fatalf("expected reviewer name on created review")
	}

	if _, err := svc.CreateReview(ctx, "user-2", review.ReviewInput{ProductID: productID, Rating: 4}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.CreateReview(ctx, "user-3", review.ReviewInput{ProductID: productID, Rating: 4}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if products.rating != 4.33 || products.count != 3 {
		t.Fatalf("expected 4.33 over 3 reviews, got %v over %d", products.rating, products.count)
	}
}

func TestCreateReview_Rejections(t *testing.T) {
	t.Parallel()

	_, _, svc := newService()
	ctx := context.Background()

	if _, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: productID, Rating: 6}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected bad request for rating 6, got %v", err)
	}
	if _, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: "0f5b7c9e-1111-4d4e-8a51-2b9f0c7d1e11", Rating: 3}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for missing product, got %v", err)
	}

	if _, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: productID, Rating: 3}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: productID, Rating: 2}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict on second review, got %v", err)
	}
}

func TestListReviews_PagingAndAverage(t *testing.T) {
	t.Parallel()

	_, _, svc := newService()
	ctx := context.Background()

	for i, rating := range []int{5, 4, 2} {
		userID := "user-" + string(rune('a'+i))
		if _, err := svc.CreateReview(ctx, userID, review.ReviewInput{ProductID: productID, Rating: rating}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	page, err := svc.ListReviews(ctx, productID, 0, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Page != 1 || len(page.Reviews) != 2 || page.Total != 3 {
		t.Fatalf("expected page 1 with 2 of 3 reviews, got %+v", page)
	}
	if page.AverageRating != 3.67 {
		t.Fatalf("expected average 3.67, got %v", page.AverageRating)
	}

	page, err = svc.ListReviews(ctx, productID, 1, review.MaxPageSize)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.PageSize != review.MaxPageSize || len(page.Reviews) != 3 {
		t.Fatalf("expected all reviews on a max size page, got %+v", page)
	}

	for _, tc := range []struct{ page, size int }{{1, review.MaxPageSize + 1}, {1, -1}, {-1, 10}} {
		if _, err := svc.ListReviews(ctx, productID, tc.page, tc.size); !errors.Is(err, domain.ErrBadRequest) {
			t.Fatalf("page=%d page_size=%d: expected ErrBadRequest, got %v", tc.page, tc.size, err)
		}
	}

	empty, err := svc.ListReviews(ctx, "other", 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if empty.Reviews == nil || empty.AverageRating != 0 {
		t.Fatalf("expected empty page with zero average, got %+v", empty)
	}
}

func TestMarkHelpful(t *testing.T) {
	t.Parallel()

	reviews, _, svc := newService()
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: productID, Rating: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for range 2 {
		if err := svc.MarkHelpful(ctx, created.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if reviews.reviews[created.ID].HelpfulCount != 2 {
		t.Fatalf("expected helpful count 2, got %d", reviews.reviews[created.ID].HelpfulCount)
	}

	if err := svc.MarkHelpful(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteReview_OwnerOnly(t *testing.T) {
	t.Parallel()

	_, products, svc := newService()
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, "user-1", review.ReviewInput{ProductID: productID, Rating: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.DeleteReview(ctx, "user-2", created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for another user, got %v", err)
	}

	if err := svc.DeleteReview(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if products.rating != 0 || products.count != 0 {
		t.Fatalf("expected rating reset to 0, got %v over %d", products.rating, products.count)
	}
}
