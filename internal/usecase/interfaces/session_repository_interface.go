package interfaces

import (
	"context"

	"sealed_letters/internal/domain/entities"
)

// ISessionRepository owns the sealed artifact and the atomic commit that
// creates it.
//
// CommitSession submits a single all-or-nothing write touching the session
// record, the payment record and (when the session came from a paid order)
// the order's created->paid status flip. No caller may ever observe a subset
// of the three. The payment-record element is conditioned on the payment id
// not existing yet, which makes a double commit for the same payment
// impossible even if the idempotency lookup missed.
//
// CommitFounderSession is the founder-path variant: instead of an order flip
// the transaction carries the token's unconsumed->consumed flip, so the token
// survives any failed commit and a retry can spend it.
type ISessionRepository interface {
	GetByKey(ctx context.Context, sessionKey string) (entities.Session, error)
	Exists(ctx context.Context, sessionKey string) (bool, error)
	CommitSession(ctx context.Context, s entities.Session, p entities.PaymentRecord, orderID string) error
	CommitFounderSession(ctx context.Context, s entities.Session, p entities.PaymentRecord, tokenID string) error
}
