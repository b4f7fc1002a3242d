package request

import (
	"errors"
	"strings"

	"sealed_letters/internal/domain/entities"
)

var (
	ErrMissingGatewayIDs = errors.New("gateway identifiers are required")
	ErrMissingToken      = errors.New("founder token is required")
)

// CoupleDataRequest is the client-submitted letter content. It maps straight
// onto the domain payload; sanitization happens downstream, after the replay
// guard, so retries of an already-sealed payment are never rejected here.
type CoupleDataRequest struct {
	SenderName   string `json:"senderName"`
	PartnerName  string `json:"partnerName"`
	Message      string `json:"message"`
	SongURL      string `json:"songUrl"`
	PhotoURL     string `json:"photoUrl"`
	DeliveryDate string `json:"deliveryDate"`
}

func (c CoupleDataRequest) ToPayload() entities.LetterPayload {
	return entities.LetterPayload{
		SenderName:   c.SenderName,
		PartnerName:  c.PartnerName,
		Message:      c.Message,
		SongURL:      c.SongURL,
		PhotoURL:     c.PhotoURL,
		DeliveryDate: c.DeliveryDate,
	}
}

// VerifyPaymentRequest completes checkout on either path. Any amount or
// price field a client smuggles into the body simply has nowhere to land.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`

	PaymentMode  string `json:"paymentMode"`
	FounderToken string `json:"founderToken"`

	Tier       string            `json:"tier"`
	CoupleData CoupleDataRequest `json:"coupleData"`
}

func (r VerifyPaymentRequest) IsFounderMode() bool {
	return strings.EqualFold(strings.TrimSpace(r.PaymentMode), "founder")
}

func (r VerifyPaymentRequest) ResolveTier() entities.Tier {
	return entities.Tier(strings.TrimSpace(strings.ToLower(r.Tier)))
}

// ValidateGatewayFields fails fast when the gateway path is missing any of
// its identifying tuple.
func (r VerifyPaymentRequest) ValidateGatewayFields() error {
	if strings.TrimSpace(r.RazorpayOrderID) == "" ||
		strings.TrimSpace(r.RazorpayPaymentID) == "" ||
		strings.TrimSpace(r.RazorpaySignature) == "" {
		return ErrMissingGatewayIDs
	}
	return nil
}

func (r VerifyPaymentRequest) ValidateFounderFields() error {
	if strings.TrimSpace(r.FounderToken) == "" {
		return ErrMissingToken
	}
	return nil
}
