package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sealed_letters/internal/domain/entities"
	"sealed_letters/internal/usecase/interfaces"
)

var (
	// ErrInvalidSignature is deliberately silent about which part of the
	// signature check failed.
	ErrInvalidSignature = errors.New("payment verification failed")

	// ErrInvalidFounderToken covers absent, consumed and expired tokens alike.
	ErrInvalidFounderToken = errors.New("invalid or expired access token")

	ErrInvalidVerification = errors.New("invalid verification request")
	ErrInvalidPayload      = errors.New("invalid letter payload")
	ErrSessionCommitFailed = errors.New("session commit failed, retry")
)

const founderTokenTTL = 24 * time.Hour

// VerifyPaymentInput is the raw request for either path. The payload is
// sanitized only after the replay guard has had its say.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string

	FounderToken string

	Tier    entities.Tier
	Payload entities.LetterPayload
}

// VerifyPaymentResult is the committed (or replayed) session handle.
type VerifyPaymentResult struct {
	SessionKey   string
	ShareSlug    string
	ReplyEnabled bool
	PaymentID    string
	Replay       bool
}

// IVerifyPaymentUseCase turns an authoritatively confirmed payment (or a
// token minted by a founder-code redemption) into a sealed session, exactly
// once per payment id.

type IVerifyPaymentUseCase interface {
	VerifyGatewayPayment(ctx context.Context, in VerifyPaymentInput) (VerifyPaymentResult, error)
	VerifyFounderToken(ctx context.Context, in VerifyPaymentInput) (VerifyPaymentResult, error)
}

type VerifyPaymentUseCase struct {
	verifier interfaces.ISignatureVerifier
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRecordRepository
	tokens   interfaces.IFounderTokenRepository
	sessions interfaces.ISessionRepository
	keygen   *SessionKeyGenerator
	prices   PriceTable
}

var _ IVerifyPaymentUseCase = (*VerifyPaymentUseCase)(nil)

func NewVerifyPaymentUseCase(
	verifier interfaces.ISignatureVerifier,
	orders interfaces.IOrderRepository,
	payments interfaces.IPaymentRecordRepository,
	tokens interfaces.IFounderTokenRepository,
	sessions interfaces.ISessionRepository,
	keygen *SessionKeyGenerator,
	prices PriceTable,
) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{
		verifier: verifier,
		orders:   orders,
		payments: payments,
		tokens:   tokens,
		sessions: sessions,
		keygen:   keygen,
		prices:   prices,
	}
}

func (u *VerifyPaymentUseCase) VerifyGatewayPayment(ctx context.Context, in VerifyPaymentInput) (VerifyPaymentResult, error) {
	orderID := strings.TrimSpace(in.OrderID)
	paymentID := strings.TrimSpace(in.PaymentID)
	if orderID == "" || paymentID == "" || strings.TrimSpace(in.Signature) == "" {
		return VerifyPaymentResult{}, ErrInvalidVerification
	}

	log.Printf("[verify][usecase] start order_id=%s payment_id=%s", orderID, paymentID)

	if !u.verifier.Verify(orderID, paymentID, in.Signature) {
		log.Printf("[verify][usecase] signature mismatch order_id=%s payment_id=%s", orderID, paymentID)
		return VerifyPaymentResult{}, ErrInvalidSignature
	}

	// Replay protection: a payment id that already produced a session always
	// gets the same session key back, however many times the client retries.
	if replay, ok := u.replayLookup(ctx, paymentID); ok {
		log.Printf("[verify][usecase] replay payment_id=%s session_key=%s", paymentID, replay.SessionKey)
		return replay, nil
	}

	amount, tier := u.resolveOrder(ctx, orderID, in.Tier)

	return u.sealSession(ctx, in.Payload, tier, amount, paymentID, orderID, "")
}

func (u *VerifyPaymentUseCase) VerifyFounderToken(ctx context.Context, in VerifyPaymentInput) (VerifyPaymentResult, error) {
	tokenID := strings.TrimSpace(in.FounderToken)
	if tokenID == "" {
		return VerifyPaymentResult{}, ErrInvalidFounderToken
	}

	// Founder sessions carry a synthetic payment id derived from the token,
	// which gives them the same replay protection as gateway payments.
	paymentID := founderPaymentID(tokenID)
	if replay, ok := u.replayLookup(ctx, paymentID); ok {
		log.Printf("[verify][usecase] founder replay payment_id=%s session_key=%s", paymentID, replay.SessionKey)
		return replay, nil
	}

	token, err := u.tokens.GetByToken(ctx, tokenID)
	if err != nil {
		log.Printf("[verify][usecase] token lookup failed err=%v", err)
		return VerifyPaymentResult{}, ErrInvalidFounderToken
	}
	if token.Token == "" || token.Consumed {
		return VerifyPaymentResult{}, ErrInvalidFounderToken
	}
	if time.Now().UTC().Sub(token.CreatedAt) > founderTokenTTL {
		log.Printf("[verify][usecase] token expired created_at=%s", token.CreatedAt.Format(time.RFC3339))
		return VerifyPaymentResult{}, ErrInvalidFounderToken
	}

	// Tier comes from the redeemed code, never from the request. The token is
	// consumed inside the session commit transaction: a failed commit leaves
	// it unspent and the client free to retry.
	return u.sealSession(ctx, in.Payload, token.Tier, 0, paymentID, "", tokenID)
}

// replayLookup reports a previously committed result for the payment id. A
// transient lookup failure is logged and treated as a miss: blocking a
// legitimate first attempt is worse, and the commit's own payment-id
// condition still prevents a double session.
func (u *VerifyPaymentUseCase) replayLookup(ctx context.Context, paymentID string) (VerifyPaymentResult, bool) {
	record, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		log.Printf("[verify][usecase] replay lookup failed, proceeding payment_id=%s err=%v", paymentID, err)
		return VerifyPaymentResult{}, false
	}
	if record.ID == "" || record.SessionKey == "" {
		return VerifyPaymentResult{}, false
	}
	return VerifyPaymentResult{
		SessionKey:   record.SessionKey,
		ShareSlug:    record.SessionKey,
		ReplyEnabled: record.Tier == entities.TierReply,
		PaymentID:    record.ID,
		Replay:       true,
	}, true
}

// resolveOrder reads the ledger's amount and tier. When the record is
// unreadable or missing the price table keyed by the request tier is the
// degraded fallback; the client's amount fields are never consulted.
func (u *VerifyPaymentUseCase) resolveOrder(ctx context.Context, orderID string, requestTier entities.Tier) (int64, entities.Tier) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err == nil && order.ID != "" {
		return order.AmountPaise, order.Tier
	}
	if err != nil {
		log.Printf("[verify][usecase] ledger read failed degraded=true order_id=%s err=%v", orderID, err)
	} else {
		log.Printf("[verify][usecase] ledger record missing degraded=true order_id=%s", orderID)
	}

	tier := requestTier
	if !tier.Valid() {
		tier = entities.TierStandard
	}
	amount, pErr := u.prices.AmountFor(tier)
	if pErr != nil {
		amount = u.prices.StandardPaise
	}
	return amount, tier
}

func (u *VerifyPaymentUseCase) sealSession(ctx context.Context, payload entities.LetterPayload, tier entities.Tier, amount int64, paymentID, orderID, tokenID string) (VerifyPaymentResult, error) {
	payload, err := payload.Sanitized()
	if err != nil {
		log.Printf("[verify][usecase] payload rejected payment_id=%s err=%v", paymentID, err)
		return VerifyPaymentResult{}, ErrInvalidPayload
	}

	sessionKey, err := u.keygen.Generate(ctx)
	if err != nil {
		log.Printf("[verify][usecase] key generation failed payment_id=%s err=%v", paymentID, err)
		return VerifyPaymentResult{}, ErrSessionCommitFailed
	}

	now := time.Now().UTC()
	session := entities.Session{
		SessionKey:   sessionKey,
		Payload:      payload,
		Tier:         tier,
		ReplyEnabled: tier == entities.TierReply,
		Status:       entities.SessionStatusSealed,
		SealedAt:     now,
		PaymentID:    paymentID,
		OrderID:      orderID,
	}
	record := entities.PaymentRecord{
		ID:          paymentID,
		OrderID:     orderID,
		AmountPaise: amount,
		Tier:        tier,
		SessionKey:  sessionKey,
		VerifiedAt:  now,
	}

	if tokenID != "" {
		err = u.sessions.CommitFounderSession(ctx, session, record, tokenID)
	} else {
		err = u.sessions.CommitSession(ctx, session, record, orderID)
	}
	if err != nil {
		// Nothing was committed, token included. The client's retry is safe:
		// either this was transient (fresh attempt goes through) or a
		// concurrent commit won, in which case the replay lookup returns its
		// session key.
		log.Printf("[verify][usecase] commit failed payment_id=%s err=%v", paymentID, err)
		return VerifyPaymentResult{}, ErrSessionCommitFailed
	}

	log.Printf("[verify][usecase] sealed payment_id=%s session_key=%s tier=%s", paymentID, sessionKey, tier)
	return VerifyPaymentResult{
		SessionKey:   sessionKey,
		ShareSlug:    sessionKey,
		ReplyEnabled: tier == entities.TierReply,
		PaymentID:    paymentID,
	}, nil
}

func founderPaymentID(token string) string {
	cleaned := strings.ReplaceAll(token, "-", "")
	if len(cleaned) > 12 {
		cleaned = cleaned[:12]
	}
	return "founder_" + cleaned
}
