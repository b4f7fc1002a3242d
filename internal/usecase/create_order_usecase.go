package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTier          = errors.New("invalid tier")
	ErrOrderGatewayFailed   = errors.New("payment gateway order create failed")
	ErrOrderLedgerFailed    = errors.New("order ledger write failed")
	ErrOrderGatewayNotReady = errors.New("payment gateway not configured")
)

// OrderCheckout is what the frontend needs to open the checkout widget.
type OrderCheckout struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	KeyID       string
}

// ICreateOrderUseCase opens a priced order for the requested tier.
//
// The amount is resolved from the server price table; the ledger record it
// writes is the ground truth that verify-payment later reads back.

type ICreateOrderUseCase interface {
	CreateOrder(ctx context.Context, tier entities.Tier) (OrderCheckout, error)
}

type CreateOrderUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	prices  PriceTable
}

var _ ICreateOrderUseCase = (*CreateOrderUseCase)(nil)

func NewCreateOrderUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, prices PriceTable) *CreateOrderUseCase {
	return &CreateOrderUseCase{orders: orders, gateway: gateway, prices: prices}
}

func (u *CreateOrderUseCase) CreateOrder(ctx context.Context, tier entities.Tier) (OrderCheckout, error) {
	if tier == "" {
		tier = entities.TierStandard
	}
	if !tier.Valid() {
		log.Printf("[order][usecase] invalid tier %q", tier)
		return OrderCheckout{}, ErrInvalidTier
	}
	if u.gateway == nil {
		log.Printf("[order][usecase] gateway not configured")
		return OrderCheckout{}, ErrOrderGatewayNotReady
	}

	amount, err := u.prices.AmountFor(tier)
	if err != nil {
		return OrderCheckout{}, ErrInvalidTier
	}

	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	log.Printf("[order][usecase] create start tier=%s amount=%d", tier, amount)

	orderID, err := u.gateway.CreateOrder(ctx, amount, u.prices.Currency, receipt, map[string]string{"tier": string(tier)})
	if err != nil {
		log.Printf("[order][usecase] gateway create failed err=%v", err)
		return OrderCheckout{}, ErrOrderGatewayFailed
	}

	order := entities.Order{
		ID:          orderID,
		AmountPaise: amount,
		Currency:    u.prices.Currency,
		Tier:        tier,
		Status:      entities.OrderStatusCreated,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.orders.Create(ctx, order); err != nil {
		// The gateway order exists but our ledger does not; verification for
		// it will take the degraded price-table path and flag it.
		log.Printf("[order][usecase] ledger write failed order_id=%s err=%v", orderID, err)
		return OrderCheckout{}, ErrOrderLedgerFailed
	}

	log.Printf("[order][usecase] create success order_id=%s tier=%s amount=%d", orderID, tier, amount)
	return OrderCheckout{
		OrderID:     orderID,
		AmountPaise: amount,
		Currency:    u.prices.Currency,
		KeyID:       u.gateway.KeyID(),
	}, nil
}
