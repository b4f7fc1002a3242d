package entities

import "time"

// PaymentRecord ties a gateway payment id to the session it produced.
//
// Storage model (DynamoDB):
//   - PK: id (the gateway payment id, "pay_...", or "founder_..." for
//     sessions minted through a founder token)
//
// The record's existence *is* the idempotency check: a verify request whose
// payment id already has a record with a session key is a replay, and the
// stored session key is returned unchanged.
type PaymentRecord struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id,omitempty"`
	AmountPaise int64     `json:"amount_paise"`
	Tier        Tier      `json:"tier"`
	SessionKey  string    `json:"session_key"`
	VerifiedAt  time.Time `json:"verified_at"`
}
