package entities

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrMissingMessage  = errors.New("message is required")
	ErrOversizedField  = errors.New("field exceeds maximum length")
	ErrInvalidMediaURL = errors.New("media url must be http(s)")
)

const (
	maxNameLength    = 80
	maxMessageLength = 6000
	maxURLLength     = 500
	maxDateLength    = 40
)

// Sanitized produces the bounds-checked copy that gets sealed. Control
// characters are stripped, whitespace trimmed, ceilings enforced. It runs
// after the replay guard so a retried payment never fails on payload checks
// its first attempt already passed.
func (p LetterPayload) Sanitized() (LetterPayload, error) {
	sender := cleanText(p.SenderName)
	partner := cleanText(p.PartnerName)
	message := cleanText(p.Message)
	date := cleanText(p.DeliveryDate)

	if message == "" {
		return LetterPayload{}, ErrMissingMessage
	}
	if len(sender) > maxNameLength || len(partner) > maxNameLength {
		return LetterPayload{}, ErrOversizedField
	}
	if len(message) > maxMessageLength || len(date) > maxDateLength {
		return LetterPayload{}, ErrOversizedField
	}

	song, err := cleanURL(p.SongURL)
	if err != nil {
		return LetterPayload{}, err
	}
	photo, err := cleanURL(p.PhotoURL)
	if err != nil {
		return LetterPayload{}, err
	}

	return LetterPayload{
		SenderName:   sender,
		PartnerName:  partner,
		Message:      message,
		SongURL:      song,
		PhotoURL:     photo,
		DeliveryDate: date,
	}, nil
}

func cleanText(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func cleanURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if len(s) > maxURLLength {
		return "", ErrOversizedField
	}
	if !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "http://") {
		return "", ErrInvalidMediaURL
	}
	return s, nil
}
