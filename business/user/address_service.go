package user

import (
	"context"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type AddressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	FindForUser(ctx context.Context, userID, id string) (domain.Address, error)
	Create(ctx context.Context, address *domain.Address) error
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, userID, id string) error
	UnsetDefault(ctx context.Context, userID, keepID string) error
}

type addressService struct {
	addressRepo AddressRepository
	validate    *validator.Validate
}

func NewAddressService(addressRepo AddressRepository, validate *validator.Validate) *addressService {
	return &addressService{
		addressRepo: addressRepo,
		validate:    validate,
	}
}

type AddressInput struct {
	AddressLine1 string `validate:"required"`
	AddressLine2 string
	City         string `validate:"required"`
	State        string `validate:"required"`
	Pincode      string `validate:"required"`
	IsDefault    bool
}

func (s *addressService) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list addresses", "user_id", userID, "error", err)
		return nil, err
	}

	return addresses, nil
}

func (s *addressService) CreateAddress(ctx context.Context, userID string, in AddressInput) (domain.Address, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Address{}, domain.Errorf(domain.ErrBadRequest, "invalid address: %v", err)
	}

	if in.IsDefault {
		if err := s.addressRepo.UnsetDefault(ctx, userID, ""); err != nil {
			logger.Error("Failed to unset default address", "user_id", userID, "error", err)
			return domain.Address{}, err
		}
	}

	address := domain.Address{
		UserID:       userID,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		IsDefault:    in.IsDefault,
	}

	if err := s.addressRepo.Create(ctx, &address); err != nil {
		logger.Error("Failed to create address", "user_id", userID, "error", err)
		return domain.Address{}, err
	}

	return address, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, id string, in AddressInput) (domain.Address, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Address{}, domain.Errorf(domain.ErrBadRequest, "invalid address: %v", err)
	}

	address, err := s.addressRepo.FindForUser(ctx, userID, id)
	if err != nil {
		return domain.Address{}, err
	}

	if in.IsDefault {
		if err := s.addressRepo.UnsetDefault(ctx, userID, id); err != nil {
			logger.Error("Failed to unset default address", "user_id", userID, "error", err)
			return domain.Address{}, err
		}
	}

	address.AddressLine1 = in.AddressLine1
	address.AddressLine2 = in.AddressLine2
	address.City = in.City
	address.State = in.State
	address.Pincode = in.Pincode
	address.IsDefault = in.IsDefault

	if err := s.addressRepo.Update(ctx, &address); err != nil {
		logger.Error("Failed to update address", "address_id", id, "error", err)
		return domain.Address{}, err
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, id string) error {
	if err := s.addressRepo.Delete(ctx, userID, id); err != nil {
		logger.Error("Failed to delete address", "address_id", id, "error", err)
		return err
	}

	return nil
}
