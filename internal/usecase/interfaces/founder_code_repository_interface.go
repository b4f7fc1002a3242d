package interfaces

import (
	"context"
	"time"

	"sealed_letters/internal/domain/entities"
)

// IFounderCodeRepository is the compare-and-swap mutation channel for founder
// codes. There is deliberately no plain Update method.
//
// ConsumeUse increments used by one, stamps redeemed_at, and flips active to
// false when the increment reaches max_uses, all conditioned on the record
// still holding the caller-observed used count. On a lost race (the record
// changed since the read) it returns a zero-value FounderCode and a nil
// error; the caller reloads and retries against the fresh value.
type IFounderCodeRepository interface {
	GetByCode(ctx context.Context, code string) (entities.FounderCode, error)
	ConsumeUse(ctx context.Context, observed entities.FounderCode, redeemedAt time.Time) (entities.FounderCode, error)
}
