package interfaces

import (
	"context"

	"sealed_letters/internal/domain/entities"
)

// IFounderTokenRepository mints and reads single-use exchange tokens.
//
// GetByToken never mutates: when the token is absent it returns a zero-value
// FounderToken and a nil error. The actual consume is a conditional update
// folded into the session commit transaction, so a token only dies when a
// session is born.
type IFounderTokenRepository interface {
	Create(ctx context.Context, t entities.FounderToken) (entities.FounderToken, error)
	GetByToken(ctx context.Context, token string) (entities.FounderToken, error)
}
