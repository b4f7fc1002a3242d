package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"sealed_letters/internal/usecase/interfaces"
)

// ErrSessionKeyExhausted means every generated key collided with an existing
// session. Retryable: a fresh request draws fresh keys.
var ErrSessionKeyExhausted = errors.New("session key space exhausted after retries")

const (
	sessionKeyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	sessionKeyLength   = 8
	sessionKeyAttempts = 5
)

// SessionKeyGenerator draws short opaque share keys from a crypto-strong
// source and refuses to hand out a key that already exists in the store.
type SessionKeyGenerator struct {
	sessions interfaces.ISessionRepository
}

func NewSessionKeyGenerator(sessions interfaces.ISessionRepository) *SessionKeyGenerator {
	return &SessionKeyGenerator{sessions: sessions}
}

func (g *SessionKeyGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < sessionKeyAttempts; attempt++ {
		key, err := randomSessionKey()
		if err != nil {
			return "", err
		}

		exists, err := g.sessions.Exists(ctx, key)
		if err != nil {
			return "", err
		}
		if !exists {
			return key, nil
		}
	}
	return "", ErrSessionKeyExhausted
}

func randomSessionKey() (string, error) {
	// Rejection sampling keeps the draw uniform over the 36-char alphabet.
	limit := 256 - 256%len(sessionKeyAlphabet)

	out := make([]byte, 0, sessionKeyLength)
	buf := make([]byte, sessionKeyLength*2)
	for len(out) < sessionKeyLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, sessionKeyAlphabet[int(b)%len(sessionKeyAlphabet)])
			if len(out) == sessionKeyLength {
				break
			}
		}
	}
	return string(out), nil
}
