package model

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaNone  MediaType = ""
	MediaImage MediaType = "image"
	MediaVoice MediaType = "voice"
)

type MessageList []Message

type Message struct {
	// ID is nil while the message is locally optimistic and not yet
	// confirmed by the server.
	ID        *string    `json:"id,omitempty"`
	ClientRef string     `json:"client_ref,omitempty"`
	PartnerID string     `json:"partner_id"`
	SenderID  string     `json:"sender_id"`
	IsMine    bool       `json:"is_mine"`
	Content   string     `json:"content"`
	MediaType MediaType  `json:"media_type,omitempty"`
	MediaPath *string    `json:"media_path,omitempty"`
	SentAt    time.Time  `json:"sent_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	IsRead    bool       `json:"is_read"`

	// Degraded marks a message whose timestamp could not be parsed and was
	// substituted with the receive time. Logged, never acted on.
	Degraded bool `json:"-"`
}

// Confirmed reports whether the message carries a server-assigned id.
func (m Message) Confirmed() bool {
	return m.ID != nil && *m.ID != ""
}

func (m Message) HasMedia() bool {
	return m.MediaType != MediaNone
}

// Signature correlates a locally optimistic message with its
// server-confirmed counterpart: same sender, same trimmed content, same
// media kind. Time proximity is checked separately by the store.
func (m Message) Signature() string {
	return m.SenderID + "\x00" + strings.TrimSpace(m.Content) + "\x00" + string(m.MediaType)
}
