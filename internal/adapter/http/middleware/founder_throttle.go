package middleware

import (
	"context"
	"log"
	"time"

	"sealed_letters/internal/usecase/interfaces"
)

const (
	founderFailWindow  = 15 * time.Minute
	founderFailCeiling = 10
)

// FounderAttemptThrottle is the brute-force brake on code redemption. It
// counts only failed attempts, under its own longer window, independently of
// the general request limiter.
type FounderAttemptThrottle struct {
	store interfaces.IRateLimitStore
}

func NewFounderAttemptThrottle(store interfaces.IRateLimitStore) *FounderAttemptThrottle {
	return &FounderAttemptThrottle{store: store}
}

// Blocked reports whether the IP has burned through its failure budget. A
// store error fails closed via the returned error.
func (t *FounderAttemptThrottle) Blocked(ctx context.Context, ip string) (bool, error) {
	count, err := t.store.Get(ctx, "rl:founder_fail:"+ip)
	if err != nil {
		return false, err
	}
	return count >= founderFailCeiling, nil
}

// RecordFailure charges one failed redemption against the IP. Best-effort:
// a store error here is logged, not surfaced, because the response to the
// client is already decided.
func (t *FounderAttemptThrottle) RecordFailure(ctx context.Context, ip string) {
	if _, err := t.store.Incr(ctx, "rl:founder_fail:"+ip, founderFailWindow); err != nil {
		log.Printf("[ratelimit][founder] failure count write failed ip=%s err=%v", ip, err)
	}
}
