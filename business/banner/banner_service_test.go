package banner_test

import (
	"context"
	"errors"
	"testing"

	"agamOrganics/business/banner"
	"agamOrganics/domain"
)

type fakeBannerRepo struct {
	banners []domain.Banner
	err     error
}

func (f fakeBannerRepo) ListActive(ctx context.Context) ([]domain.Banner, error) {
	return f.banners, f.err
}

func TestListBanners(t *testing.T) {
	t.Parallel()

	svc := banner.NewBannerService(fakeBannerRepo{banners: []domain.Banner{
		{ID: "b1", Title: "Monsoon Sale", DisplayOrder: 1},
		{ID: "b2", Title: "Fresh Millets", DisplayOrder: 2},
	}})

	got, err := svc.ListBanners(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 || got[0].ID != "b1" {
		t.Fatalf("expected repository order kept, got %+v", got)
	}
}

func TestListBanners_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	got, err := banner.NewBannerService(fakeBannerRepo{}).ListBanners(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestListBanners_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	if _, err := banner.NewBannerService(fakeBannerRepo{err: boom}).ListBanners(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}
