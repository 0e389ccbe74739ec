//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package attachment

import (
	"context"

	"github.com/mentorlink/chat-sync/internal/model"
)

type Uploader interface {
	SendImageMessage(ctx context.Context, partnerID string, data []byte, filename, caption, clientRef string, progress func(fraction float64)) (model.Message, error)
	SendVoiceMessage(ctx context.Context, partnerID string, blob []byte, caption, clientRef string, progress func(fraction float64)) (model.Message, error)
}

type OptimisticStore interface {
	AppendOptimistic(msg model.Message)
	RemoveOptimistic(clientRef string) bool
}

// MicrophoneGate wraps the platform's capture-permission prompt. The
// call suspends until the user grants or denies access.
type MicrophoneGate interface {
	RequestAccess(ctx context.Context) error
}
