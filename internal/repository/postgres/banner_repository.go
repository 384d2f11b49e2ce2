package postgres

import (
	"context"
	"fmt"

	"agamOrganics/domain"

	"gorm.io/gorm"
)

type BannerRepository struct {
	DB *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{
		DB: db,
	}
}

func (r *BannerRepository) ListActive(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner

	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&banners).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	return banners, nil
}
