package usecase

import (
	"errors"
	"os"
	"strconv"

	"sealed_letters/internal/domain/entities"
)

var ErrUnknownTier = errors.New("unknown tier")

const (
	defaultStandardPaise = 4900
	defaultReplyPaise    = 14900
	defaultCurrency      = "INR"
)

// PriceTable is the server-held source of truth for what each tier costs.
// Clients request tier names; amounts never come from a request.
type PriceTable struct {
	StandardPaise int64
	ReplyPaise    int64
	Currency      string
}

// LoadPriceTable reads the price table from the environment, falling back to
// the launch prices.
func LoadPriceTable() PriceTable {
	return PriceTable{
		StandardPaise: envPaise("PRICE_STANDARD_PAISE", defaultStandardPaise),
		ReplyPaise:    envPaise("PRICE_REPLY_PAISE", defaultReplyPaise),
		Currency:      envOr("PRICE_CURRENCY", defaultCurrency),
	}
}

func (p PriceTable) AmountFor(tier entities.Tier) (int64, error) {
	switch tier {
	case entities.TierStandard:
		return p.StandardPaise, nil
	case entities.TierReply:
		return p.ReplyPaise, nil
	default:
		return 0, ErrUnknownTier
	}
}

func envPaise(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
