package response

import "sealed_letters/internal/usecase"

// VerifyPaymentResponse acknowledges a sealed (or replayed) session.
type VerifyPaymentResponse struct {
	Verified     bool   `json:"verified"`
	SessionKey   string `json:"sessionKey"`
	ShareSlug    string `json:"shareSlug"`
	ReplyEnabled bool   `json:"replyEnabled"`
	PaymentID    string `json:"paymentId,omitempty"`
	Replay       bool   `json:"replay,omitempty"`
}

func FromVerifyResult(r usecase.VerifyPaymentResult) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Verified:     true,
		SessionKey:   r.SessionKey,
		ShareSlug:    r.ShareSlug,
		ReplyEnabled: r.ReplyEnabled,
		PaymentID:    r.PaymentID,
		Replay:       r.Replay,
	}
}

// VerifyPaymentFailure is the generic failure body; it never says which
// check failed beyond the one public message.
type VerifyPaymentFailure struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error"`
}
