package request

import "strings"

// LoadSessionRequest resolves a share key to its sealed session.
type LoadSessionRequest struct {
	SessionKey string `json:"sessionKey" binding:"required"`
}

func (r LoadSessionRequest) ResolveSessionKey() string {
	return strings.ToLower(strings.TrimSpace(r.SessionKey))
}
