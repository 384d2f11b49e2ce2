package user_test

import (
	"context"
	"errors"
	"testing"

	"agamOrganics/business/user"
	"agamOrganics/domain"

	"github.com/go-playground/validator/v10"
)

type fakeAddressRepo struct {
	items      map[string]domain.Address
	unsetCalls []string
	seq        int
}

func (f *fakeAddressRepo) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range f.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) FindForUser(ctx context.Context, userID, id string) (domain.Address, error) {
	a, ok := f.items[id]
	if !ok || a.UserID != userID {
		return domain.Address{}, domain.Errorf(domain.ErrNotFound, "address not found")
	}
	return a, nil
}

func (f *fakeAddressRepo) Create(ctx context.Context, a *domain.Address) error {
	f.seq++
	a.ID = string(rune('a' + f.seq))
	f.items[a.ID] = *a
	return nil
}

func (f *fakeAddressRepo) Update(ctx context.Context, a *domain.Address) error {
	f.items[a.ID] = *a
	return nil
}

func (f *fakeAddressRepo) Delete(ctx context.Context, userID, id string) error {
	if _, err := f.FindForUser(ctx, userID, id); err != nil {
		return err
	}
	delete(f.items, id)
	return nil
}

func (f *fakeAddressRepo) UnsetDefault(ctx context.Context, userID, keepID string) error {
	f.unsetCalls = append(f.unsetCalls, keepID)
	for id, a := range f.items {
		if a.UserID == userID && id != keepID {
			a.IsDefault = false
			f.items[id] = a
		}
	}
	return nil
}

func TestCreateDefaultAddressUnsetsOthers(t *testing.T) {
	t.Parallel()

	repo := &fakeAddressRepo{items: map[string]domain.Address{}}
	svc := user.NewAddressService(repo, validator.New())
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, "u1", user.AddressInput{AddressLine1: "1 Main", City: "Chennai", State: "TN", Pincode: "600001", IsDefault: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.CreateAddress(ctx, "u1", user.AddressInput{AddressLine1: "2 Main", City: "Chennai", State: "TN", Pincode: "600002", IsDefault: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.items[first.ID].IsDefault {
		t.Fatal("expected first address to lose default")
	}
	if !repo.items[second.ID].IsDefault {
		t.Fatal("expected second address to be default")
	}
}

func TestAddressValidationAndScope(t *testing.T) {
	t.Parallel()

	repo := &fakeAddressRepo{items: map[string]domain.Address{}}
	svc := user.NewAddressService(repo, validator.New())
	ctx := context.Background()

	if _, err := svc.CreateAddress(ctx, "u1", user.AddressInput{City: "Chennai"}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	a, _ := svc.CreateAddress(ctx, "u1", user.AddressInput{AddressLine1: "1 Main", City: "Chennai", State: "TN", Pincode: "600001"})

	_, err := svc.UpdateAddress(ctx, "u2", a.ID, user.AddressInput{AddressLine1: "x", City: "y", State: "z", Pincode: "1"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign address, got %v", err)
	}
	if err := svc.DeleteAddress(ctx, "u2", a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := svc.DeleteAddress(ctx, "u1", a.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
