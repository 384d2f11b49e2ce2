package rest

import (
	"context"
	"net/http"

	"agamOrganics/domain"

	"github.com/labstack/echo/v4"
)

type BannerService interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
}

type BannerHandler struct {
	bannerService BannerService
}

func NewBannerHandler(bannerService BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

func (h *BannerHandler) ListBanners(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	banners, err := h.bannerService.ListBanners(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, banners)
}
