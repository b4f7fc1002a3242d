package response

import (
	"time"

	"sealed_letters/internal/domain/entities"
)

// SessionResponse is the sanitized public view of a sealed session. Payment
// and order identifiers never leave the server.
type SessionResponse struct {
	SessionKey   string                 `json:"sessionKey"`
	Payload      entities.LetterPayload `json:"payload"`
	Tier         string                 `json:"tier"`
	ReplyEnabled bool                   `json:"replyEnabled"`
	Status       string                 `json:"status"`
	SealedAt     time.Time              `json:"sealedAt"`
	Reply        string                 `json:"reply,omitempty"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		SessionKey:   s.SessionKey,
		Payload:      s.Payload,
		Tier:         string(s.Tier),
		ReplyEnabled: s.ReplyEnabled,
		Status:       string(s.Status),
		SealedAt:     s.SealedAt,
		Reply:        s.Reply,
	}
}
