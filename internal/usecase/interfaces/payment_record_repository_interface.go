package interfaces

import (
	"context"

	"sealed_letters/internal/domain/entities"
)

// IPaymentRecordRepository reads payment records for replay detection.
//
// GetByID returns a zero-value PaymentRecord (ID == "") when absent. Records
// are only ever written inside ISessionRepository.CommitSession so that a
// payment record cannot exist without its session.
type IPaymentRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
}
