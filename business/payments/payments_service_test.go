package payments_test

import (
	"context"
	"errors"
	"testing"

	"agamOrganics/business/payments"
	"agamOrganics/domain"
)

type fakeGateway struct {
	valid     bool
	verifyErr error
	createErr error
	amount    int64
	verified  int
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

func (f *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	f.amount = amount
	if f.createErr != nil {
		return "", f.createErr
	}
	return "order_123", nil
}

func (f *fakeGateway) VerifyPaymentSignature(orderID, paymentID, signature string) (bool, error) {
	f.verified++
	return f.valid, f.verifyErr
}

var details = &domain.PaymentDetails{
	RazorpayOrderID:   "order_123",
	RazorpayPaymentID: "pay_456",
	RazorpaySignature: "sig",
}

func TestVerifyPaymentFailsClosed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		gateway *fakeGateway
		details *domain.PaymentDetails
		want    error
	}{
		{"valid", &fakeGateway{valid: true}, details, nil},
		{"mismatch", &fakeGateway{valid: false}, details, domain.ErrPaymentVerification},
		{"sdk error", &fakeGateway{valid: true, verifyErr: errors.New("boom")}, details, domain.ErrPaymentVerification},
		{"missing signature", &fakeGateway{valid: true}, &domain.PaymentDetails{RazorpayOrderID: "o", RazorpayPaymentID: "p"}, domain.ErrPaymentVerification},
		{"no details", &fakeGateway{valid: true}, nil, domain.ErrBadRequest},
	}

	for _, tc := range cases {
		svc := payments.NewPaymentsService(tc.gateway)
		err := svc.VerifyPayment(tc.details)
		if tc.want == nil && err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestOpenOrderConvertsToPaise(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	svc := payments.NewPaymentsService(gw)

	got, err := svc.OpenOrder(context.Background(), 578.5, "rcpt_1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Amount != 57850 || gw.amount != 57850 {
		t.Fatalf("expected 57850 paise, got %d", got.Amount)
	}
	if got.Currency != "INR" || got.RazorpayKey != "rzp_test_key" || got.RazorpayOrderID != "order_123" {
		t.Fatalf("unexpected gateway order %+v", got)
	}
}
