package model

import "time"

type ConversationSummaryList []ConversationSummary

type ConversationSummary struct {
	PartnerID          string    `json:"partner_id"`
	PartnerName        string    `json:"partner_name"`
	ProfilePicture     *string   `json:"profile_picture,omitempty"`
	LastMessageContent string    `json:"last_message_content"`
	LastMessageTime    time.Time `json:"last_message_time"`
	IsLastMessageMine  bool      `json:"is_last_message_mine"`
	UnreadCount        int       `json:"unread_count"`
}
