package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sealed_letters/internal/adapter/http/handlers/mocks"
	"sealed_letters/internal/adapter/http/middleware"
	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase"
	mock_interfaces "sealed_letters/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type orderHandlerFixture struct {
	orders   *mocks.MockICreateOrderUseCase
	redeemer *mocks.MockIRedeemFounderCodeUseCase
	store    *mock_interfaces.MockIRateLimitStore
	router   *gin.Engine
}

func newOrderFixture(ctrl *gomock.Controller) orderHandlerFixture {
	gin.SetMode(gin.TestMode)
	f := orderHandlerFixture{
		orders:   mocks.NewMockICreateOrderUseCase(ctrl),
		redeemer: mocks.NewMockIRedeemFounderCodeUseCase(ctrl),
		store:    mock_interfaces.NewMockIRateLimitStore(ctrl),
	}
	h := NewOrderHandler(f.orders, f.redeemer, middleware.NewFounderAttemptThrottle(f.store))
	f.router = gin.New()
	f.router.POST("/create-order", h.CreateOrder)
	return f
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		w := postJSON(f.router, "/create-order", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.orders.EXPECT().CreateOrder(gomock.Any(), entities.TierReply).Return(usecase.OrderCheckout{
			OrderID:     "order_abc",
			AmountPaise: 14900,
			Currency:    "INR",
			KeyID:       "rzp_test_key",
		}, nil)

		w := postJSON(f.router, "/create-order", `{"tier":"reply"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["orderId"] != "order_abc" || body["amount"] != float64(14900) || body["keyId"] != "rzp_test_key" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid tier maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(usecase.OrderCheckout{}, usecase.ErrInvalidTier)

		w := postJSON(f.router, "/create-order", `{"tier":"platinum"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway outage maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(usecase.OrderCheckout{}, usecase.ErrOrderGatewayFailed)

		w := postJSON(f.router, "/create-order", `{"tier":"standard"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestOrderHandler_FounderRedemption(t *testing.T) {
	t.Run("success returns the token, not an order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.redeemer.EXPECT().Redeem(gomock.Any(), "LAUNCH50").Return(entities.FounderToken{
			Token: "tok-uuid",
			Tier:  entities.TierStandard,
		}, nil)

		w := postJSON(f.router, "/create-order", `{"founderCode":" LAUNCH50 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["founderApproved"] != true || body["founderToken"] != "tok-uuid" || body["tier"] != "standard" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["orderId"]; ok {
			t.Fatalf("founder approval must not carry an order id")
		}
	})

	t.Run("rejection charges the failure counter and stays generic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.redeemer.EXPECT().Redeem(gomock.Any(), "WRONG").Return(entities.FounderToken{}, usecase.ErrInvalidFounderCode)
		f.store.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		w := postJSON(f.router, "/create-order", `{"founderCode":"WRONG"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["error"] != "Invalid or expired code." {
			t.Fatalf("every rejection must share one message, got %s", w.Body.String())
		}
	})

	t.Run("contention maps to 503 without charging the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.redeemer.EXPECT().Redeem(gomock.Any(), "LAUNCH50").Return(entities.FounderToken{}, usecase.ErrRedeemContention)

		w := postJSON(f.router, "/create-order", `{"founderCode":"LAUNCH50"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("blocked ip gets 429 before any redemption", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(10), nil)

		w := postJSON(f.router, "/create-order", `{"founderCode":"LAUNCH50"}`)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("throttle store outage fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newOrderFixture(ctrl)

		f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("down"))

		w := postJSON(f.router, "/create-order", `{"founderCode":"LAUNCH50"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
