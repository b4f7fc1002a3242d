package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")
var ErrRazorpayOrderCreateFailed = errors.New("razorpay order create failed")

// RazorpayGateway wraps the Razorpay SDK behind IPaymentGateway.
//
// Mock mode (PAYMENT_GATEWAY_MOCK=1) never leaves the process: it fabricates
// an "order_..." id so the full checkout flow can run against local stores.
type RazorpayGateway struct {
	client   *razorpay.Client
	keyID    string
	mockMode bool

	// createOrder overrides the SDK call in tests.
	createOrder func(data map[string]interface{}) (map[string]interface{}, error)
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[gateway][razorpay] mock mode enabled")
		return &RazorpayGateway{keyID: "rzp_test_mock", mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[gateway][razorpay] missing credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[gateway][razorpay] client initialized key_id=%s", keyID)
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret), keyID: keyID}, nil
}

// KeyID is the public key the frontend hands to the checkout widget.
func (g *RazorpayGateway) KeyID() string {
	if g == nil {
		return ""
	}
	return g.keyID
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (string, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("order_mock%d", time.Now().UTC().UnixNano())
		log.Printf("[gateway][razorpay] mock order created order_id=%s amount=%d", id, amountPaise)
		return id, nil
	}

	if g == nil || (g.client == nil && g.createOrder == nil) {
		log.Printf("[gateway][razorpay] gateway not configured")
		return "", ErrRazorpayGatewayNotConfigured
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		noteMap := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			noteMap[k] = v
		}
		data["notes"] = noteMap
	}

	create := g.createOrder
	if create == nil {
		create = func(data map[string]interface{}) (map[string]interface{}, error) {
			return g.client.Order.Create(data, nil)
		}
	}

	// The SDK has no context plumbing. Once the create returns, the order
	// exists at the gateway whatever happened to our context, so the id is
	// always surfaced rather than orphaning a live order.
	log.Printf("[gateway][razorpay] create order start amount=%d currency=%s", amountPaise, currency)
	body, err := create(data)
	if err != nil {
		log.Printf("[gateway][razorpay] sdk order create failed err=%v", err)
		return "", fmt.Errorf("%w: %v", ErrRazorpayOrderCreateFailed, err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		log.Printf("[gateway][razorpay] order response missing id")
		return "", ErrRazorpayOrderCreateFailed
	}
	log.Printf("[gateway][razorpay] create order success order_id=%s", id)
	return id, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
