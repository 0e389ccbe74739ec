package readreceipt

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/model"
)

// Tracker selects received-but-unread messages and acknowledges them to
// the backend. Acknowledgement is optimistic-confirmed: local read state
// flips only after the server accepted the batch. A failed batch stays
// unread locally, so the next poll cycle selects and resubmits the same
// ids; resubmitting already-read ids is harmless by construction.
type Tracker struct {
	client MessagingClient
	store  ReadStateStore
	logger logger_lib.LoggerInterface
}

func New(client MessagingClient, store ReadStateStore, logger logger_lib.LoggerInterface) *Tracker {
	return &Tracker{
		client: client,
		store:  store,
		logger: logger,
	}
}

// CollectUnread returns the server ids of every received message that has
// not been read yet. Optimistic messages have no id and are never
// acknowledged.
func (t *Tracker) CollectUnread(messages model.MessageList) []string {
	var ids []string
	for _, m := range messages {
		if m.IsMine || m.IsRead || !m.Confirmed() {
			continue
		}
		ids = append(ids, *m.ID)
	}
	return ids
}

// Acknowledge submits the batch and flips local read state on success.
// Callers run it detached from rendering; it must never be waited on by
// the UI path.
func (t *Tracker) Acknowledge(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := t.client.MarkAsRead(ctx, ids); err != nil {
		if t.logger != nil {
			t.logger.Warn(fmt.Sprintf("failed to acknowledge %d messages, will retry next poll: %v", len(ids), err))
		}
		return fmt.Errorf("failed to mark messages as read: %w", err)
	}

	t.store.MarkRead(ids)
	return nil
}
