package messaging

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mentorlink/chat-sync/internal/model"
	"github.com/mentorlink/chat-sync/internal/pkg/timestamp"
)

// Wire shapes are deliberately loose: the backend has shipped ids as
// numbers and strings, read flags as booleans and 0/1, display names
// under several keys and timestamps in multiple encodings. Everything is
// mapped to the canonical model types here, at the collaborator
// boundary, so nothing downstream ever sniffs payload shapes.

type wireMessage struct {
	ID        json.RawMessage `json:"id"`
	ClientRef string          `json:"client_ref"`
	SenderID  json.RawMessage `json:"sender_id"`
	MediaType string          `json:"media_type"`
	MediaPath *string         `json:"media_path"`
	Content   string          `json:"content"`
	SentAt    json.RawMessage `json:"sent_at"`
	ReadAt    json.RawMessage `json:"read_at"`
	IsRead    json.RawMessage `json:"is_read"`
}

type wireConversation struct {
	PartnerID          json.RawMessage `json:"partner_id"`
	Name               string          `json:"name"`
	PartnerName        string          `json:"partner_name"`
	Username           string          `json:"username"`
	Nickname           string          `json:"nickname"`
	ProfilePicture     *string         `json:"profile_picture"`
	LastMessageContent string          `json:"last_message_content"`
	LastMessageTime    json.RawMessage `json:"last_message_time"`
	IsLastMessageMine  json.RawMessage `json:"is_last_message_mine"`
	UnreadCount        int             `json:"unread_count"`
}

type wirePartner struct {
	ID             json.RawMessage `json:"id"`
	Name           string          `json:"name"`
	PartnerName    string          `json:"partner_name"`
	Username       string          `json:"username"`
	Nickname       string          `json:"nickname"`
	Role           string          `json:"role"`
	ProfilePicture *string         `json:"profile_picture"`
}

func (w wireMessage) toModel(partnerID, currentUserID string) model.Message {
	senderID := flexString(w.SenderID)
	sentAt, degraded := timestamp.NormalizeRaw(w.SentAt)

	msg := model.Message{
		ClientRef: w.ClientRef,
		PartnerID: partnerID,
		SenderID:  senderID,
		IsMine:    senderID != "" && senderID == currentUserID,
		Content:   w.Content,
		MediaType: model.MediaType(w.MediaType),
		MediaPath: w.MediaPath,
		SentAt:    sentAt,
		IsRead:    flexBool(w.IsRead),
		Degraded:  degraded,
	}

	if id := flexString(w.ID); id != "" {
		msg.ID = &id
	}

	if len(w.ReadAt) > 0 && string(w.ReadAt) != "null" {
		if readAt, degraded := timestamp.NormalizeRaw(w.ReadAt); !degraded {
			msg.ReadAt = &readAt
			msg.IsRead = true
		}
	}

	return msg
}

func (w wireConversation) toModel() model.ConversationSummary {
	lastAt, _ := timestamp.NormalizeRaw(w.LastMessageTime)
	return model.ConversationSummary{
		PartnerID:          flexString(w.PartnerID),
		PartnerName:        displayName(w.Name, w.PartnerName, w.Username, w.Nickname),
		ProfilePicture:     w.ProfilePicture,
		LastMessageContent: w.LastMessageContent,
		LastMessageTime:    lastAt,
		IsLastMessageMine:  flexBool(w.IsLastMessageMine),
		UnreadCount:        max(w.UnreadCount, 0),
	}
}

func (w wirePartner) toModel() model.PartnerInfo {
	return model.PartnerInfo{
		ID:             flexString(w.ID),
		Name:           displayName(w.Name, w.PartnerName, w.Username, w.Nickname),
		Role:           w.Role,
		ProfilePicture: w.ProfilePicture,
	}
}

// displayName applies the documented fallback order for the partner's
// display name: name, then partner_name, then username, then nickname.
func displayName(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// flexString accepts a JSON string or number and returns it as a string.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// flexBool accepts a JSON bool or a 0/1 number.
func flexBool(raw json.RawMessage) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	return false
}
