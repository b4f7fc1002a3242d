package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier_Verify(t *testing.T) {
	v := NewSignatureVerifier("test_secret")

	t.Run("valid signature", func(t *testing.T) {
		sig := signFor("test_secret", "order_1", "pay_1")
		if !v.Verify("order_1", "pay_1", sig) {
			t.Fatalf("expected a correctly signed tuple to verify")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := signFor("other_secret", "order_1", "pay_1")
		if v.Verify("order_1", "pay_1", sig) {
			t.Fatalf("signature from another secret must not verify")
		}
	})

	t.Run("tampered ids", func(t *testing.T) {
		sig := signFor("test_secret", "order_1", "pay_1")
		if v.Verify("order_2", "pay_1", sig) {
			t.Fatalf("swapped order id must not verify")
		}
		if v.Verify("order_1", "pay_2", sig) {
			t.Fatalf("swapped payment id must not verify")
		}
	})

	t.Run("garbage signature", func(t *testing.T) {
		if v.Verify("order_1", "pay_1", "not-hex-at-all") {
			t.Fatalf("malformed signature must not verify")
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		sig := signFor("test_secret", "", "")
		if v.Verify("", "", sig) || v.Verify("order_1", "pay_1", "") {
			t.Fatalf("empty fields must never verify")
		}
	})
}
