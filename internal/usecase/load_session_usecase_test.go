package usecase

import (
	"context"
	"errors"
	"testing"

	"sealed_letters/internal/domain/entities"
	mock_interfaces "sealed_letters/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLoadSessionUseCase_Load(t *testing.T) {
	t.Run("malformed keys never reach the store", func(t *testing.T) {
		uc := NewLoadSessionUseCase(nil)
		for _, key := range []string{"", "short", "UPPERAB1", "with-dash", "toolongkey", "abc 1234"} {
			_, err := uc.Load(context.Background(), key)
			if !errors.Is(err, ErrInvalidSessionKey) {
				t.Fatalf("key %q: expected ErrInvalidSessionKey, got %v", key, err)
			}
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewLoadSessionUseCase(sessions)

		sessions.EXPECT().GetByKey(gomock.Any(), "ab12cd34").Return(entities.Session{}, errors.New("db"))

		_, err := uc.Load(context.Background(), "ab12cd34")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewLoadSessionUseCase(sessions)

		sessions.EXPECT().GetByKey(gomock.Any(), "ab12cd34").Return(entities.Session{}, nil)

		_, err := uc.Load(context.Background(), "ab12cd34")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewLoadSessionUseCase(sessions)

		sessions.EXPECT().GetByKey(gomock.Any(), "ab12cd34").Return(entities.Session{
			SessionKey:   "ab12cd34",
			Tier:         entities.TierReply,
			ReplyEnabled: true,
			Status:       entities.SessionStatusSealed,
		}, nil)

		s, err := uc.Load(context.Background(), "ab12cd34")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.SessionKey != "ab12cd34" || !s.ReplyEnabled {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}
