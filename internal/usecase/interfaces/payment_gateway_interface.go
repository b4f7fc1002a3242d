package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// CreateOrder registers the server-resolved amount with the gateway and
// returns the gateway-generated order id that later anchors signature
// verification.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (string, error)
	// KeyID is the public checkout key handed to the frontend widget.
	KeyID() string
}
