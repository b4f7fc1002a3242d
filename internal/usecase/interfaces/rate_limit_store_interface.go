package interfaces

import (
	"context"
	"time"
)

// IRateLimitStore is the shared counter store behind rate limiting.
//
// Incr increments the counter under key and returns the new count. The first
// increment in a window must arm the expiry so the counter dies with the
// window. Counters are only ever incremented and compared against a ceiling;
// nothing reads them for any other purpose.
//
// Get reads the current count (0 when the key is absent) and exists solely
// for threshold comparison on counters that are incremented after the fact,
// like the failed-redemption throttle.
//
// Callers treat any error as "store unreachable" and fail closed.
type IRateLimitStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Get(ctx context.Context, key string) (int64, error)
}
