package postgres

import (
	"context"
	"fmt"

	"agamOrganics/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrConflict, "email already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var user domain.User

	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return domain.User{}, notFound(err, "user")
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return domain.User{}, notFound(err, "user")
	}

	return user, nil
}

// UpdateProfile writes only the fields present in update.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	updateData := map[string]interface{}{}
	if update.FullName != nil {
		updateData["full_name"] = *update.FullName
	}
	if update.Phone != nil {
		updateData["phone"] = *update.Phone
	}
	if update.DateOfBirth != nil {
		updateData["date_of_birth"] = *update.DateOfBirth
	}
	if update.DateOfAnniversary != nil {
		updateData["date_of_anniversary"] = *update.DateOfAnniversary
	}

	result := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrNotFound, "user not found")
	}

	return nil
}
