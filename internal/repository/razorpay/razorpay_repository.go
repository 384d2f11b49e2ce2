package razorpay

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"
)

type RazorpayConfig struct {
	Key    string
	Secret string
}

// RazorpayRepository wraps the gateway SDK for order creation and signature checks.
type RazorpayRepository struct {
	cfg    RazorpayConfig
	client *razorpay.Client
}

func NewRazorpayRepository(cfg RazorpayConfig) *RazorpayRepository {
	return &RazorpayRepository{
		cfg:    cfg,
		client: razorpay.NewClient(cfg.Key, cfg.Secret),
	}
}

func (r *RazorpayRepository) KeyID() string {
	return r.cfg.Key
}

// CreateOrder opens a gateway order for amount (in paise) and returns its id.
func (r *RazorpayRepository) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	if r.cfg.Key == "" || r.cfg.Secret == "" {
		return "", errors.New("payment gateway is not configured")
	}

	body, err := r.client.Order.Create(map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create gateway order: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", errors.New("gateway order response has no id")
	}

	return id, nil
}

// VerifyPaymentSignature checks the HMAC the gateway attached to a payment.
// Any panic inside the SDK is reported as an error so callers can fail closed.
func (r *RazorpayRepository) VerifyPaymentSignature(orderID, paymentID, signature string) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = fmt.Errorf("signature verification panicked: %v", rec)
		}
	}()

	if r.cfg.Secret == "" {
		return false, errors.New("payment gateway secret is not configured")
	}

	attributes := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}

	return rzputils.VerifyPaymentSignature(attributes, signature, r.cfg.Secret), nil
}
