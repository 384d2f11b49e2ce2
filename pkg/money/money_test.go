package money_test

import (
	"testing"

	"agamOrganics/pkg/money"
)

func TestCartScenario(t *testing.T) {
	t.Parallel()

	// A: 250 list, 199 discounted, qty 2. B: 180, qty 1.
	subtotal := money.Sum(money.Line(199, 2), money.Line(180, 1))
	if subtotal != 578 {
		t.Fatalf("expected 578, got %v", subtotal)
	}

	savings := money.Sum(money.Savings(250, 199, 2), money.Savings(180, 180, 1))
	if savings != 102 {
		t.Fatalf("expected 102, got %v", savings)
	}
}

func TestLineAvoidsFloatDrift(t *testing.T) {
	t.Parallel()

	if got := money.Line(0.1, 3); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
}

func TestToPaise(t *testing.T) {
	t.Parallel()

	if got := money.ToPaise(578.50); got != 57850 {
		t.Fatalf("expected 57850, got %d", got)
	}
	if got := money.ToPaise(10.999); got != 1099 {
		t.Fatalf("expected truncation to 1099, got %d", got)
	}
}

func TestAverage(t *testing.T) {
	t.Parallel()

	if got := money.Average(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := money.Average([]int{5, 4, 4}); got != 4.33 {
		t.Fatalf("expected 4.33, got %v", got)
	}
}
