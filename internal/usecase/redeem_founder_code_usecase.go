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
	// ErrInvalidFounderCode covers every rejection: absent, inactive,
	// exhausted, expired, malformed. One error, one message, so responses
	// cannot be used to enumerate valid codes.
	ErrInvalidFounderCode = errors.New("invalid or expired code")

	// ErrRedeemContention means the bounded retry loop kept losing the
	// compare-and-swap to concurrent redeemers while uses remained.
	ErrRedeemContention = errors.New("code redemption contention, retry")
)

const (
	founderCodeMaxLength = 64
	redeemAttempts       = 3
)

// IRedeemFounderCodeUseCase atomically consumes one use of a founder code
// and mints the single-use token that later authorizes session creation.

type IRedeemFounderCodeUseCase interface {
	Redeem(ctx context.Context, code string) (entities.FounderToken, error)
}

type RedeemFounderCodeUseCase struct {
	codes  interfaces.IFounderCodeRepository
	tokens interfaces.IFounderTokenRepository
}

var _ IRedeemFounderCodeUseCase = (*RedeemFounderCodeUseCase)(nil)

func NewRedeemFounderCodeUseCase(codes interfaces.IFounderCodeRepository, tokens interfaces.IFounderTokenRepository) *RedeemFounderCodeUseCase {
	return &RedeemFounderCodeUseCase{codes: codes, tokens: tokens}
}

func (u *RedeemFounderCodeUseCase) Redeem(ctx context.Context, code string) (entities.FounderToken, error) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > founderCodeMaxLength {
		return entities.FounderToken{}, ErrInvalidFounderCode
	}

	now := time.Now().UTC()

	// Bounded read-check-swap loop. A conditional failure means another
	// redeemer moved the record between our read and write; reload and judge
	// the fresh state rather than overwriting it.
	for attempt := 0; attempt < redeemAttempts; attempt++ {
		current, err := u.codes.GetByCode(ctx, code)
		if err != nil {
			log.Printf("[founder][usecase] code load failed err=%v", err)
			return entities.FounderToken{}, ErrInvalidFounderCode
		}
		if !current.Redeemable(now) {
			return entities.FounderToken{}, ErrInvalidFounderCode
		}

		updated, err := u.codes.ConsumeUse(ctx, current, now)
		if err != nil {
			log.Printf("[founder][usecase] consume failed err=%v", err)
			return entities.FounderToken{}, ErrInvalidFounderCode
		}
		if updated.Code == "" {
			// Lost the race; go around with a fresh read.
			continue
		}

		token := entities.FounderToken{
			Token:     uuid.NewString(),
			Tier:      updated.Tier,
			CreatedAt: now,
			Consumed:  false,
		}
		if _, err := u.tokens.Create(ctx, token); err != nil {
			log.Printf("[founder][usecase] token mint failed code_used=%d err=%v", updated.Used, err)
			return entities.FounderToken{}, ErrInvalidFounderCode
		}

		log.Printf("[founder][usecase] redeem success used=%d/%d active=%t", updated.Used, updated.MaxUses, updated.Active)
		return token, nil
	}

	return entities.FounderToken{}, ErrRedeemContention
}
