package usecase

import (
	"context"
	"errors"
	"regexp"

	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidSessionKey = errors.New("invalid session key")
)

var sessionKeyPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// ILoadSessionUseCase resolves a share key to its sealed session.

type ILoadSessionUseCase interface {
	Load(ctx context.Context, sessionKey string) (entities.Session, error)
}

type LoadSessionUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ ILoadSessionUseCase = (*LoadSessionUseCase)(nil)

func NewLoadSessionUseCase(sessions interfaces.ISessionRepository) *LoadSessionUseCase {
	return &LoadSessionUseCase{sessions: sessions}
}

func (u *LoadSessionUseCase) Load(ctx context.Context, sessionKey string) (entities.Session, error) {
	if !sessionKeyPattern.MatchString(sessionKey) {
		return entities.Session{}, ErrInvalidSessionKey
	}

	s, err := u.sessions.GetByKey(ctx, sessionKey)
	if err != nil {
		return entities.Session{}, err
	}
	if s.SessionKey == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}
