package domain_test

import (
	"errors"
	"testing"

	"agamOrganics/domain"
)

func TestCanTransitionCancel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    domain.OrderStatus
		allowed bool
	}{
		{domain.StatusPending, true},
		{domain.StatusConfirmed, true},
		{domain.StatusShipped, false},
		{domain.StatusDelivered, false},
		{domain.StatusCancelled, false},
	}

	for _, tc := range cases {
		err := domain.CanTransition(tc.from, domain.StatusCancelled)
		if tc.allowed && err != nil {
			t.Fatalf("%s -> cancelled: expected allowed, got %v", tc.from, err)
		}
		if !tc.allowed {
			if err == nil {
				t.Fatalf("%s -> cancelled: expected refusal", tc.from)
			}
			if !errors.Is(err, domain.ErrBadRequest) {
				t.Fatalf("expected ErrBadRequest, got %v", err)
			}
		}
	}
}

func TestNextStatusesTerminal(t *testing.T) {
	t.Parallel()

	if next := domain.NextStatuses(domain.StatusDelivered); len(next) != 0 {
		t.Fatalf("expected delivered to be terminal, got %v", next)
	}
	if next := domain.NextStatuses(domain.StatusPending); len(next) != 2 {
		t.Fatalf("expected 2 next states from pending, got %v", next)
	}
}

func TestEffectivePrice(t *testing.T) {
	t.Parallel()

	discount := 199.0
	p := domain.Product{Price: 250, DiscountPrice: &discount}
	if p.EffectivePrice() != 199 {
		t.Fatalf("expected 199, got %v", p.EffectivePrice())
	}

	p.DiscountPrice = nil
	if p.EffectivePrice() != 250 {
		t.Fatalf("expected 250, got %v", p.EffectivePrice())
	}
}

func TestErrorfKeepsMessageAndKind(t *testing.T) {
	t.Parallel()

	err := domain.Errorf(domain.ErrNotFound, "product not found")
	if err.Error() != "product not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("expected error to match ErrNotFound")
	}
}
