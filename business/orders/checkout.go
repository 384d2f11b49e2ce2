package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agamOrganics/business/cart"
	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
	"agamOrganics/pkg/metrics"
	"agamOrganics/pkg/money"
	"agamOrganics/pkg/retry"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SubjectOrderPlaced   = "Your Agam Organics order %s"
	EmailBodyOrderPlaced = `Hello %v,</br></br>Thank you for your order <b>%v</b>.</br>Total: Rs. %.2f</br>Payment: %v`
)

// PlaceOrder turns the user's cart into an order. Every step is a precondition for the next;
// nothing is written before the stock check passes.
func (s *OrdersService) PlaceOrder(ctx context.Context, in domain.PlaceOrderInput) (domain.Order, error) {
	start := s.now()
	defer func() {
		metrics.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	lines, err := s.cartRepo.ListByUser(ctx, in.UserID)
	if err != nil {
		logger.Error("Failed to load cart for checkout", "user_id", in.UserID, "error", err)
		return domain.Order{}, err
	}
	if len(lines) == 0 {
		metrics.CheckoutRejected.WithLabelValues("empty_cart").Inc()
		return domain.Order{}, domain.Errorf(domain.ErrBadRequest, "cart is empty")
	}

	address, err := s.addressRepo.FindForUser(ctx, in.UserID, in.AddressID)
	if err != nil {
		metrics.CheckoutRejected.WithLabelValues("address").Inc()
		return domain.Order{}, err
	}

	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if method == "" {
		return domain.Order{}, domain.Errorf(domain.ErrBadRequest, "payment method is required")
	}

	status, paymentStatus := domain.StatusPending, domain.PaymentStatusCOD
	if method != domain.PaymentMethodCOD {
		if err := s.payments.VerifyPayment(in.PaymentDetails); err != nil {
			metrics.CheckoutRejected.WithLabelValues("payment").Inc()
			return domain.Order{}, err
		}
		status, paymentStatus = domain.StatusConfirmed, domain.PaymentStatusPaid
	}

	items, total, err := snapshotLines(lines)
	if err != nil {
		metrics.CheckoutRejected.WithLabelValues("stock").Inc()
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		OrderNumber:     NewOrderNumber(s.now()),
		UserID:          in.UserID,
		Status:          status,
		PaymentMethod:   method,
		PaymentStatus:   paymentStatus,
		TotalAmount:     total,
		ShippingAddress: datatypes.NewJSONType(address.Snapshot()),
	}

	if err := s.insertOrder(ctx, &order); err != nil {
		return domain.Order{}, err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := s.orderRepo.CreateItems(ctx, items); err != nil {
		logger.Error("Failed to create order items", "order_id", order.ID, "error", err)
		return domain.Order{}, err
	}
	order.Items = items

	for _, item := range items {
		ok, err := s.productsRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			logger.Error("Failed to decrement stock", "order_id", order.ID, "product_id", item.ProductID, "error", err)
			return domain.Order{}, err
		}
		if !ok {
			logger.Warn("Stock changed during checkout", "order_id", order.ID, "product_id", item.ProductID, "quantity", item.Quantity)
		}
	}

	if err := s.cartRepo.Clear(ctx, in.UserID); err != nil {
		logger.Error("Failed to clear cart after order", "order_id", order.ID, "error", err)
		return domain.Order{}, err
	}

	metrics.OrdersPlaced.WithLabelValues(method).Inc()
	logger.Info("Order placed", "order_id", order.ID, "order_number", order.OrderNumber, "total", order.TotalAmount)

	s.sendConfirmation(ctx, order)

	return order, nil
}

// CreateGatewayOrder prices the cart and opens a payment gateway order for it.
func (s *OrdersService) CreateGatewayOrder(ctx context.Context, userID, addressID string) (domain.GatewayOrder, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load cart for gateway order", "user_id", userID, "error", err)
		return domain.GatewayOrder{}, err
	}
	if len(lines) == 0 {
		return domain.GatewayOrder{}, domain.Errorf(domain.ErrBadRequest, "cart is empty")
	}

	if _, err := s.addressRepo.FindForUser(ctx, userID, addressID); err != nil {
		return domain.GatewayOrder{}, err
	}

	total := cart.Summarize(lines).TotalPrice
	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	gatewayOrder, err := s.payments.OpenOrder(ctx, total, receipt)
	if err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("failed to create payment order: %w", err)
	}

	return gatewayOrder, nil
}

// snapshotLines prices each line at its current effective price and checks stock,
// failing on the first product that cannot cover its quantity.
func snapshotLines(lines []domain.CartLine) ([]domain.OrderItem, float64, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	subtotals := make([]float64, 0, len(lines))

	for _, line := range lines {
		if line.Product == nil {
			return nil, 0, domain.Errorf(domain.ErrBadRequest, "a product in your cart is no longer available")
		}
		p := *line.Product
		if p.Stock < line.Quantity {
			return nil, 0, domain.Errorf(domain.ErrBadRequest, "insufficient stock for %s", p.Name)
		}

		price := p.EffectivePrice()
		subtotal := money.Line(price, line.Quantity)
		items = append(items, domain.OrderItem{
			ID:           uuid.NewString(),
			ProductID:    p.ID,
			ProductName:  p.Name,
			Quantity:     line.Quantity,
			Price:        price,
			Subtotal:     subtotal,
			ProductImage: p.ImageURL,
		})
		subtotals = append(subtotals, subtotal)
	}

	return items, money.Sum(subtotals...), nil
}

func (s *OrdersService) insertOrder(ctx context.Context, order *domain.Order) error {
	attempts := 0
	err := s.insertPolicy.Do(ctx, func(ctx context.Context) error {
		attempts++
		if attempts > 1 {
			metrics.OrderInsertRetries.Inc()
			logger.Warn("Retrying order insert", "order_number", order.OrderNumber, "attempt", attempts)
		}
		err := s.orderRepo.CreateOrder(ctx, order)
		if attempts > 1 && errors.Is(err, domain.ErrConflict) && s.landed(ctx, order) {
			logger.Info("Order insert from a timed out attempt had committed", "order_number", order.OrderNumber)
			return nil
		}
		return err
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, retry.ErrExhausted) {
		logger.Error("Order insert timed out", "order_number", order.OrderNumber, "attempts", attempts, "error", err)
		return domain.Errorf(domain.ErrTimeout, "order creation timed out, please try again")
	}

	logger.Error("Failed to create order", "order_number", order.OrderNumber, "error", err)
	return err
}

// landed reports whether an earlier attempt already stored this exact order.
func (s *OrdersService) landed(ctx context.Context, order *domain.Order) bool {
	existing, err := s.orderRepo.FindForUser(ctx, order.UserID, order.ID)
	return err == nil && existing.OrderNumber == order.OrderNumber
}

func (s *OrdersService) sendConfirmation(ctx context.Context, order domain.Order) {
	if s.notifRepo == nil {
		return
	}

	u, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("Skipping order confirmation email", "order_id", order.ID, "error", err)
		return
	}

	subject := fmt.Sprintf(SubjectOrderPlaced, order.OrderNumber)
	body := fmt.Sprintf(EmailBodyOrderPlaced, u.FullName, order.OrderNumber, order.TotalAmount, order.PaymentMethod)
	if err := s.notifRepo.SendEmail(ctx, u.FullName, u.Email, subject, body); err != nil {
		logger.Warn("Failed to send order confirmation email", "order_id", order.ID, "error", err)
	}
}
