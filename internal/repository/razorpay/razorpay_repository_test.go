package razorpay_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"agamOrganics/internal/repository/razorpay"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	t.Parallel()

	repo := razorpay.NewRazorpayRepository(razorpay.RazorpayConfig{Key: "rzp_test", Secret: "shh"})

	ok, err := repo.VerifyPaymentSignature("order_1", "pay_1", sign("shh", "order_1", "pay_1"))
	if err != nil || !ok {
		t.Fatalf("expected valid signature, ok=%v err=%v", ok, err)
	}

	ok, err = repo.VerifyPaymentSignature("order_1", "pay_1", sign("other", "order_1", "pay_1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatal("expected signature from a different secret to fail")
	}
}

func TestVerifyWithoutSecretFails(t *testing.T) {
	t.Parallel()

	repo := razorpay.NewRazorpayRepository(razorpay.RazorpayConfig{Key: "rzp_test"})

	ok, err := repo.VerifyPaymentSignature("order_1", "pay_1", "sig")
	if ok || err == nil {
		t.Fatalf("expected failure without secret, ok=%v err=%v", ok, err)
	}
}
