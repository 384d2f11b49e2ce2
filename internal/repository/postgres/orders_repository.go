package postgres

import (
	"context"
	"fmt"

	"agamOrganics/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// CreateOrder inserts the order row only; items are written by CreateItems.
func (r *OrdersRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrConflict, "order %s already exists", order.OrderNumber)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) CreateItems(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}

	return nil
}

func (r *OrdersRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindForUser(ctx context.Context, userID, id string) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return domain.Order{}, notFound(err, "order")
	}

	return order, nil
}

// UpdateStatus moves an order to status only while it is still in one of from.
// ErrBadRequest means the order had already left those states.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id string, from []domain.OrderStatus, status domain.OrderStatus) error {
	result := r.DB.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Errorf(domain.ErrBadRequest, "order can no longer move to %s", status)
	}

	return nil
}
