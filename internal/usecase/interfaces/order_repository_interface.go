package interfaces

import (
	"context"

	"sealed_letters/internal/domain/entities"
)

// IOrderRepository persists the authoritative order ledger.
//
// GetByID returns a zero-value Order (ID == "") when the record is absent.
// Order status is never updated through this interface; the created->paid
// flip happens only inside ISessionRepository.CommitSession.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
