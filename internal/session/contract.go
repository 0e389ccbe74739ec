//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"

	"github.com/mentorlink/chat-sync/internal/model"
)

type MessagingClient interface {
	FetchMessages(ctx context.Context, partnerID string) ([]model.Message, error)
	SendTextMessage(ctx context.Context, partnerID, content, clientRef string) (model.Message, error)
	SendImageMessage(ctx context.Context, partnerID string, data []byte, filename, caption, clientRef string, progress func(fraction float64)) (model.Message, error)
	SendVoiceMessage(ctx context.Context, partnerID string, blob []byte, caption, clientRef string, progress func(fraction float64)) (model.Message, error)
	MarkAsRead(ctx context.Context, messageIDs []string) error
}

type ListClient interface {
	FetchConversations(ctx context.Context) ([]model.ConversationSummary, error)
	FetchPartnerInfo(ctx context.Context, partnerID string) (model.PartnerInfo, error)
}

// ViewportProbe reports how far the reader currently is from the bottom
// of the conversation view. Owned by the presentation layer; the engine
// only ever asks, it never reads rendered markup.
type ViewportProbe interface {
	DistanceFromBottomPx() float64
}
