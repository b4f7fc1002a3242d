package entities

import "time"

// Tier selects what the buyer purchased.
//
// A client may request a tier name; it may never request a price.

type Tier string

const (
	TierStandard Tier = "standard"
	TierReply    Tier = "reply"
)

func (t Tier) Valid() bool {
	return t == TierStandard || t == TierReply
}

// SessionStatus tracks the sealed artifact after commit.

type SessionStatus string

const (
	SessionStatusSealed SessionStatus = "sealed"
)

// LetterPayload is the client-submitted content sealed into a session.
// Sanitized bounds-checks and cleans it before anything is committed.
type LetterPayload struct {
	SenderName   string `json:"sender_name"`
	PartnerName  string `json:"partner_name"`
	Message      string `json:"message"`
	SongURL      string `json:"song_url,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	DeliveryDate string `json:"delivery_date,omitempty"`
}

// Session is the purchased artifact persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: session_key (opaque 8-char lowercase alphanumeric)
//
// The record is immutable once sealed, except for the Reply sub-field which
// is owned by a separate flow and guarded independently; nothing in this
// service writes it.
type Session struct {
	SessionKey   string        `json:"session_key"`
	Payload      LetterPayload `json:"payload"`
	Tier         Tier          `json:"tier"`
	ReplyEnabled bool          `json:"reply_enabled"`
	Status       SessionStatus `json:"status"`
	SealedAt     time.Time     `json:"sealed_at"`
	PaymentID    string        `json:"payment_id"`
	OrderID      string        `json:"order_id,omitempty"`
	Reply        string        `json:"reply,omitempty"`
}
