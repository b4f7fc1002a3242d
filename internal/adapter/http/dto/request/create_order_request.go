package request

import (
	"strings"

	"sealed_letters/internal/domain/entities"
)

// CreateOrderRequest starts checkout. A founder code, when present, routes
// the request to the redemption path instead of the gateway.
//
// There is intentionally no amount field: prices live server-side only.
type CreateOrderRequest struct {
	Tier        string `json:"tier"`
	FounderCode string `json:"founderCode"`
}

func (r CreateOrderRequest) ResolveTier() entities.Tier {
	tier := entities.Tier(strings.TrimSpace(strings.ToLower(r.Tier)))
	if tier == "" {
		return entities.TierStandard
	}
	return tier
}

func (r CreateOrderRequest) ResolveFounderCode() string {
	return strings.TrimSpace(r.FounderCode)
}

func (r CreateOrderRequest) IsFounderAttempt() bool {
	return r.ResolveFounderCode() != ""
}
