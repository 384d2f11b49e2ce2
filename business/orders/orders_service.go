package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
	"agamOrganics/pkg/metrics"
	"agamOrganics/pkg/retry"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	CreateItems(ctx context.Context, items []domain.OrderItem) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindForUser(ctx context.Context, userID, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from []domain.OrderStatus, status domain.OrderStatus) error
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, userID string) error
}

type AddressRepository interface {
	FindForUser(ctx context.Context, userID, id string) (domain.Address, error)
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error)
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
	IncrementStock(ctx context.Context, id string, qty int) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type PaymentService interface {
	VerifyPayment(details *domain.PaymentDetails) error
	OpenOrder(ctx context.Context, total float64, receipt string) (domain.GatewayOrder, error)
}

type NotificationRepository interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, message string) error
}

type Dependencies struct {
	Orders    OrdersRepository
	Cart      CartRepository
	Addresses AddressRepository
	Products  ProductRepository
	Users     UserRepository
	Payments  PaymentService
	Notifier  NotificationRepository
}

type OrdersService struct {
	orderRepo    OrdersRepository
	cartRepo     CartRepository
	addressRepo  AddressRepository
	productsRepo ProductRepository
	userRepo     UserRepository
	payments     PaymentService
	notifRepo    NotificationRepository
	insertPolicy retry.Policy
	now          func() time.Time
}

func NewOrdersService(deps Dependencies, insertPolicy retry.Policy) *OrdersService {
	return &OrdersService{
		orderRepo:    deps.Orders,
		cartRepo:     deps.Cart,
		addressRepo:  deps.Addresses,
		productsRepo: deps.Products,
		userRepo:     deps.Users,
		payments:     deps.Payments,
		notifRepo:    deps.Notifier,
		insertPolicy: insertPolicy,
		now:          time.Now,
	}
}

// NewOrderNumber builds "AO" + timestamp + 6 uppercase hex characters.
func NewOrderNumber(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return "AO" + t.Format("20060102150405") + strings.ToUpper(suffix)
}

func (s *OrdersService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list orders", "user_id", userID, "error", err)
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	s.attachImages(ctx, orders)

	return orders, nil
}

func (s *OrdersService) GetOrder(ctx context.Context, userID, id string) (domain.Order, error) {
	order, err := s.orderRepo.FindForUser(ctx, userID, id)
	if err != nil {
		return domain.Order{}, err
	}

	orders := []domain.Order{order}
	s.attachImages(ctx, orders)
	order = orders[0]

	address := order.ShippingAddress.Data()
	if address.Phone == "" {
		if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
			address.Phone = u.Phone
			order.ShippingAddress = datatypes.NewJSONType(address)
		}
	}

	return order, nil
}

// CancelOrder moves a pending or confirmed order to cancelled and puts its stock back.
// Payments are not reversed.
func (s *OrdersService) CancelOrder(ctx context.Context, userID, id string) (domain.Order, error) {
	order, err := s.orderRepo.FindForUser(ctx, userID, id)
	if err != nil {
		return domain.Order{}, err
	}

	if err := domain.CanTransition(order.Status, domain.StatusCancelled); err != nil {
		return domain.Order{}, domain.Errorf(domain.ErrBadRequest, "cannot cancel an order that is %s", order.Status)
	}

	// Only the request whose write flips the status restores stock.
	from := domain.PreviousStatuses(domain.StatusCancelled)
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, from, domain.StatusCancelled); err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			return domain.Order{}, domain.Errorf(domain.ErrBadRequest, "cannot cancel this order")
		}
		logger.Error("Failed to cancel order", "order_id", order.ID, "error", err)
		return domain.Order{}, err
	}
	order.Status = domain.StatusCancelled

	var restoreErrs []error
	for _, item := range order.Items {
		if err := s.productsRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error("Failed to restore stock", "order_id", order.ID, "product_id", item.ProductID, "error", err)
			restoreErrs = append(restoreErrs, err)
		}
	}
	if len(restoreErrs) > 0 {
		return domain.Order{}, fmt.Errorf("order cancelled but stock restore failed: %w", errors.Join(restoreErrs...))
	}

	metrics.OrdersCancelled.Inc()
	logger.Info("Order cancelled", "order_id", order.ID, "user_id", userID)

	return order, nil
}

func (s *OrdersService) attachImages(ctx context.Context, orders []domain.Order) {
	var ids []string
	for _, o := range orders {
		for _, item := range o.Items {
			ids = append(ids, item.ProductID)
		}
	}
	if len(ids) == 0 {
		return
	}

	products, err := s.productsRepo.FindByIDs(ctx, ids)
	if err != nil {
		logger.Warn("Failed to load product images for orders", "error", err)
		return
	}

	for i := range orders {
		for j := range orders[i].Items {
			if p, ok := products[orders[i].Items[j].ProductID]; ok {
				orders[i].Items[j].ProductImage = p.ImageURL
			}
		}
	}
}
