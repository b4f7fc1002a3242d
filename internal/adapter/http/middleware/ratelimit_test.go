package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mock_interfaces "sealed_letters/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func limitedRouter(store *mock_interfaces.MockIRateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", RateLimit(store, "test"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("under the ceiling passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Incr(gomock.Any(), gomock.Any(), requestWindow).Return(int64(1), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		limitedRouter(store).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("over the ceiling returns 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Incr(gomock.Any(), gomock.Any(), requestWindow).Return(int64(requestCeiling+1), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		limitedRouter(store).ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("exactly at the ceiling still passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Incr(gomock.Any(), gomock.Any(), requestWindow).Return(int64(requestCeiling), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		limitedRouter(store).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure fails closed with 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Incr(gomock.Any(), gomock.Any(), requestWindow).Return(int64(0), errors.New("connection refused"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		limitedRouter(store).ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("store outage must deny, expected 503, got %d", w.Code)
		}
	})

	t.Run("scope is part of the counter key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Incr(gomock.Any(), gomock.Any(), requestWindow).DoAndReturn(
			func(_ context.Context, key string, _ time.Duration) (int64, error) {
				if key != "rl:test:192.0.2.1" {
					t.Fatalf("unexpected counter key %q", key)
				}
				return 1, nil
			},
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		req.RemoteAddr = "192.0.2.1:51234"
		limitedRouter(store).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestFounderAttemptThrottle(t *testing.T) {
	t.Run("below the failure ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "rl:founder_fail:10.0.0.9").Return(int64(founderFailCeiling-1), nil)

		blocked, err := NewFounderAttemptThrottle(store).Blocked(context.Background(), "10.0.0.9")
		if err != nil || blocked {
			t.Fatalf("expected unblocked, got blocked=%t err=%v", blocked, err)
		}
	})

	t.Run("at the failure ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "rl:founder_fail:10.0.0.9").Return(int64(founderFailCeiling), nil)

		blocked, err := NewFounderAttemptThrottle(store).Blocked(context.Background(), "10.0.0.9")
		if err != nil || !blocked {
			t.Fatalf("expected blocked, got blocked=%t err=%v", blocked, err)
		}
	})

	t.Run("store error surfaces for fail-closed handling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("down"))

		_, err := NewFounderAttemptThrottle(store).Blocked(context.Background(), "10.0.0.9")
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("record failure swallows store errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRateLimitStore(ctrl)
		store.EXPECT().Incr(gomock.Any(), "rl:founder_fail:10.0.0.9", founderFailWindow).Return(int64(0), errors.New("down"))

		NewFounderAttemptThrottle(store).RecordFailure(context.Background(), "10.0.0.9")
	})
}
