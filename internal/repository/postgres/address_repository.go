package postgres

import (
	"context"
	"fmt"

	"agamOrganics/domain"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{
		DB: db,
	}
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	var addresses []domain.Address

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

// FindForUser returns the address only when it belongs to userID.
func (r *AddressRepository) FindForUser(ctx context.Context, userID, id string) (domain.Address, error) {
	var address domain.Address

	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&address).Error
	if err != nil {
		return domain.Address{}, notFound(err, "address")
	}

	return address, nil
}

func (r *AddressRepository) Create(ctx context.Context, address *domain.Address) error {
	if err := r.DB.WithContext(ctx).Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}

	return nil
}

func (r *AddressRepository) Update(ctx context.Context, address *domain.Address) error {
	result := r.DB.WithContext(ctx).Model(&domain.Address{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Select("address_line1", "address_line2", "city", "state", "pincode", "is_default").
		Updates(address)
	if result.Error != nil {
		return fmt.Errorf("failed to update address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "address not found")
	}

	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Address{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "address not found")
	}

	return nil
}

// UnsetDefault clears is_default on every address of the user except keepID.
func (r *AddressRepository) UnsetDefault(ctx context.Context, userID, keepID string) error {
	q := r.DB.WithContext(ctx).Model(&domain.Address{}).Where("user_id = ? AND is_default = ?", userID, true)
	if keepID != "" {
		q = q.Where("id <> ?", keepID)
	}

	if err := q.Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to unset default address: %w", err)
	}

	return nil
}
