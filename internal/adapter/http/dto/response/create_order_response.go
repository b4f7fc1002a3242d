package response

import (
	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase"
)

// CreateOrderResponse is the checkout bootstrap for the payment widget.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

func FromOrderCheckout(c usecase.OrderCheckout) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:  c.OrderID,
		Amount:   c.AmountPaise,
		Currency: c.Currency,
		KeyID:    c.KeyID,
	}
}

// FounderApprovalResponse is the alternate-access success shape. The token,
// not the code, authorizes the later verify call.
type FounderApprovalResponse struct {
	FounderApproved bool   `json:"founderApproved"`
	Tier            string `json:"tier"`
	FounderToken    string `json:"founderToken"`
}

func FromFounderToken(t entities.FounderToken) FounderApprovalResponse {
	return FounderApprovalResponse{
		FounderApproved: true,
		Tier:            string(t.Tier),
		FounderToken:    t.Token,
	}
}
