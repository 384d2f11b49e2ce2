package banner

import (
	"context"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
)

type BannerRepository interface {
	ListActive(ctx context.Context) ([]domain.Banner, error)
}

type bannerService struct {
	bannerRepo BannerRepository
}

func NewBannerService(bannerRepo BannerRepository) *bannerService {
	return &bannerService{
		bannerRepo: bannerRepo,
	}
}

func (s *bannerService) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.bannerRepo.ListActive(ctx)
	if err != nil {
		logger.Error("Failed to list banners", "error", err)
		return nil, err
	}
	if banners == nil {
		banners = []domain.Banner{}
	}

	return banners, nil
}
