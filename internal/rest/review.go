package rest

import (
	"context"
	"net/http"

	"agamOrganics/business/review"
	"agamOrganics/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, in review.ReviewInput) (domain.Review, error)
	ListReviews(ctx context.Context, productID string, page, pageSize int) (domain.ReviewPage, error)
	MarkHelpful(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, userID, id string) error
}

type ReviewHandler struct {
	reviewService ReviewService
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

type ReviewListQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// CreateReview validates through the service, which owns the rating bounds.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req review.ReviewInput

	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	created, err := h.reviewService.CreateReview(ctx, currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	productID, err := uuidParam(c, "product_id")
	if err != nil {
		return respondError(c, err)
	}

	var q ReviewListQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, err)
	}
	if q.Page < 0 || q.PageSize < 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "page and page_size must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	page, err := h.reviewService.ListReviews(ctx, productID, q.Page, q.PageSize)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

func (h *ReviewHandler) MarkHelpful(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	if err := h.reviewService.MarkHelpful(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Review marked as helpful"))
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	if err := h.reviewService.DeleteReview(ctx, currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Review deleted"))
}
