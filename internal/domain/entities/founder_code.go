package entities

import "time"

// FounderCode is a limited-use access code that substitutes for payment.
//
// Storage model (DynamoDB):
//   - PK: code
//
// Mutation discipline: the record is only ever changed through a
// compare-and-swap conditioned on the Used count observed at read time.
// No component is permitted to read-then-blind-write it.
type FounderCode struct {
	Code       string     `json:"code"`
	MaxUses    int        `json:"max_uses"`
	Used       int        `json:"used"`
	Active     bool       `json:"active"`
	Tier       Tier       `json:"tier"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}

// Redeemable reports whether one use can still be consumed at the given
// instant. It does not mutate anything; the store-level condition decides
// the race.
func (c FounderCode) Redeemable(now time.Time) bool {
	if c.Code == "" || !c.Active {
		return false
	}
	if c.Used >= c.MaxUses {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// FounderToken is the single-use exchange token minted by a successful
// redemption. The token, not the code, is what later authorizes session
// creation.
//
// Storage model (DynamoDB):
//   - PK: token (uuid)
type FounderToken struct {
	Token     string    `json:"token"`
	Tier      Tier      `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
	Consumed  bool      `json:"consumed"`
}
