package payments

import (
	"context"
	"strings"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
	"agamOrganics/pkg/money"
)

const Currency = "INR"

// Gateway is the payment provider SDK surface the storefront relies on.
type Gateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) (bool, error)
}

type PaymentsService struct {
	gateway Gateway
}

func NewPaymentsService(gateway Gateway) *PaymentsService {
	return &PaymentsService{
		gateway: gateway,
	}
}

// VerifyPayment fails closed: a mismatch, missing field or SDK error all reject the payment.
func (s *PaymentsService) VerifyPayment(details *domain.PaymentDetails) error {
	if details == nil {
		return domain.Errorf(domain.ErrBadRequest, "payment details are required for online payment")
	}

	if strings.TrimSpace(details.RazorpayOrderID) == "" ||
		strings.TrimSpace(details.RazorpayPaymentID) == "" ||
		strings.TrimSpace(details.RazorpaySignature) == "" {
		return domain.Errorf(domain.ErrPaymentVerification, "payment verification failed: incomplete payment details")
	}

	ok, err := s.gateway.VerifyPaymentSignature(details.RazorpayOrderID, details.RazorpayPaymentID, details.RazorpaySignature)
	if err != nil {
		logger.Error("Payment signature verification errored", "razorpay_order_id", details.RazorpayOrderID, "error", err)
		return domain.Errorf(domain.ErrPaymentVerification, "payment verification failed")
	}
	if !ok {
		logger.Warn("Payment signature mismatch", "razorpay_order_id", details.RazorpayOrderID)
		return domain.Errorf(domain.ErrPaymentVerification, "payment verification failed")
	}

	return nil
}

// OpenOrder creates a gateway order for total rupees.
func (s *PaymentsService) OpenOrder(ctx context.Context, total float64, receipt string) (domain.GatewayOrder, error) {
	amount := money.ToPaise(total)

	orderID, err := s.gateway.CreateOrder(ctx, amount, Currency, receipt)
	if err != nil {
		logger.Error("Failed to create gateway order", "receipt", receipt, "error", err)
		return domain.GatewayOrder{}, err
	}

	return domain.GatewayOrder{
		RazorpayKey:     s.gateway.KeyID(),
		Amount:          amount,
		Currency:        Currency,
		RazorpayOrderID: orderID,
		TotalAmount:     total,
	}, nil
}
