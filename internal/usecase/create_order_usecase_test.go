package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sealed_letters/internal/domain/entities"
	mock_interfaces "sealed_letters/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCreateOrderUseCase_Validations(t *testing.T) {
	t.Run("invalid tier", func(t *testing.T) {
		uc := NewCreateOrderUseCase(nil, nil, testPrices())
		_, err := uc.CreateOrder(context.Background(), entities.Tier("platinum"))
		if !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("expected ErrInvalidTier, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCreateOrderUseCase(nil, nil, testPrices())
		_, err := uc.CreateOrder(context.Background(), entities.TierStandard)
		if !errors.Is(err, ErrOrderGatewayNotReady) {
			t.Fatalf("expected ErrOrderGatewayNotReady, got %v", err)
		}
	})
}

func TestCreateOrderUseCase_Create(t *testing.T) {
	t.Run("empty tier defaults to standard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreateOrderUseCase(orders, gateway, testPrices())

		gateway.EXPECT().CreateOrder(gomock.Any(), int64(4900), "INR", gomock.Any(), map[string]string{"tier": "standard"}).DoAndReturn(
			func(_ context.Context, _ int64, _, receipt string, _ map[string]string) (string, error) {
				if !strings.HasPrefix(receipt, "rcpt_") {
					t.Fatalf("unexpected receipt format: %s", receipt)
				}
				return "order_abc", nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != "order_abc" || o.AmountPaise != 4900 || o.Tier != entities.TierStandard {
					t.Fatalf("unexpected ledger order: %+v", o)
				}
				if o.Status != entities.OrderStatusCreated {
					t.Fatalf("new order must start as created, got %s", o.Status)
				}
				if o.CreatedAt.IsZero() {
					t.Fatalf("created_at must be set")
				}
				return o, nil
			},
		)
		gateway.EXPECT().KeyID().Return("rzp_test_key")

		res, err := uc.CreateOrder(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderID != "order_abc" || res.AmountPaise != 4900 || res.Currency != "INR" || res.KeyID != "rzp_test_key" {
			t.Fatalf("unexpected checkout: %+v", res)
		}
	})

	t.Run("reply tier uses the reply price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreateOrderUseCase(orders, gateway, testPrices())

		gateway.EXPECT().CreateOrder(gomock.Any(), int64(14900), "INR", gomock.Any(), map[string]string{"tier": "reply"}).Return("order_xyz", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		gateway.EXPECT().KeyID().Return("rzp_test_key")

		res, err := uc.CreateOrder(context.Background(), entities.TierReply)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AmountPaise != 14900 {
			t.Fatalf("expected reply price, got %d", res.AmountPaise)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreateOrderUseCase(orders, gateway, testPrices())

		gateway.EXPECT().CreateOrder(gomock.Any(), int64(4900), "INR", gomock.Any(), gomock.Any()).Return("", errors.New("502"))

		_, err := uc.CreateOrder(context.Background(), entities.TierStandard)
		if !errors.Is(err, ErrOrderGatewayFailed) {
			t.Fatalf("expected ErrOrderGatewayFailed, got %v", err)
		}
	})

	t.Run("ledger write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreateOrderUseCase(orders, gateway, testPrices())

		gateway.EXPECT().CreateOrder(gomock.Any(), int64(4900), "INR", gomock.Any(), gomock.Any()).Return("order_abc", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

		_, err := uc.CreateOrder(context.Background(), entities.TierStandard)
		if !errors.Is(err, ErrOrderLedgerFailed) {
			t.Fatalf("expected ErrOrderLedgerFailed, got %v", err)
		}
	})
}
