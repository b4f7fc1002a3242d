package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewRazorpayGateway(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("RAZORPAY_MOCK", "")

		if _, err := NewRazorpayGateway("", "secret"); !errors.Is(err, ErrMissingRazorpayCredentials) {
			t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
		}
		if _, err := NewRazorpayGateway("key", ""); !errors.Is(err, ErrMissingRazorpayCredentials) {
			t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
		}
	})

	t.Run("mock mode needs no credentials", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		g, err := NewRazorpayGateway("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.KeyID() == "" {
			t.Fatalf("mock gateway must expose a key id for the widget")
		}
	})
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	t.Run("unconfigured gateway", func(t *testing.T) {
		var g *RazorpayGateway
		if _, err := g.CreateOrder(context.Background(), 4900, "INR", "rcpt_1", nil); !errors.Is(err, ErrRazorpayGatewayNotConfigured) {
			t.Fatalf("expected ErrRazorpayGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("mock order id", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		g, err := NewRazorpayGateway("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id, err := g.CreateOrder(context.Background(), 4900, "INR", "rcpt_1", map[string]string{"tier": "standard"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(id, "order_") {
			t.Fatalf("expected an order_ prefixed id, got %q", id)
		}
	})

	t.Run("cancelled context still yields the created order", func(t *testing.T) {
		g := &RazorpayGateway{
			keyID: "rzp_test_key",
			createOrder: func(data map[string]interface{}) (map[string]interface{}, error) {
				return map[string]interface{}{"id": "order_live1"}, nil
			},
		}

		// Once the order exists at the gateway it must be surfaced, even if
		// our request deadline expired while waiting. Dropping the id here
		// would orphan a live order.
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		id, err := g.CreateOrder(ctx, 4900, "INR", "rcpt_1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "order_live1" {
			t.Fatalf("created order id must not be discarded, got %q", id)
		}
	})

	t.Run("response without an id", func(t *testing.T) {
		g := &RazorpayGateway{
			keyID: "rzp_test_key",
			createOrder: func(data map[string]interface{}) (map[string]interface{}, error) {
				return map[string]interface{}{}, nil
			},
		}

		if _, err := g.CreateOrder(context.Background(), 4900, "INR", "rcpt_1", nil); !errors.Is(err, ErrRazorpayOrderCreateFailed) {
			t.Fatalf("expected ErrRazorpayOrderCreateFailed, got %v", err)
		}
	})
}
