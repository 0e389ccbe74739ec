// Package conversations keeps the per-partner conversation summaries for
// the list view sorted and current between list refreshes.
package conversations

import (
	"sort"
	"sync"

	"github.com/mentorlink/chat-sync/internal/model"
)

// Aggregator is a process-wide cache of conversation summaries. It is
// rebuilt wholesale from every list poll; the only local mutation is the
// optimistic unread decrement applied when the user opens a conversation.
type Aggregator struct {
	mu        sync.Mutex
	summaries model.ConversationSummaryList
}

func New() *Aggregator {
	return &Aggregator{}
}

// Rebuild replaces the cached summaries with the authoritative set from
// the collaborator, sorted by last activity, newest first. Stable for
// equal timestamps.
func (a *Aggregator) Rebuild(summaries []model.ConversationSummary) model.ConversationSummaryList {
	sorted := make(model.ConversationSummaryList, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastMessageTime.After(sorted[j].LastMessageTime)
	})

	a.mu.Lock()
	a.summaries = sorted
	a.mu.Unlock()

	return a.snapshot()
}

// DecrementUnread optimistically zeroes the unread count when the user
// opens that conversation, ahead of the next list refresh confirming the
// server's count.
func (a *Aggregator) DecrementUnread(partnerID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, s := range a.summaries {
		if s.PartnerID == partnerID {
			a.summaries[i].UnreadCount = 0
			return
		}
	}
}

func (a *Aggregator) Snapshot() model.ConversationSummaryList {
	return a.snapshot()
}

func (a *Aggregator) snapshot() model.ConversationSummaryList {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(model.ConversationSummaryList, len(a.summaries))
	copy(out, a.summaries)
	return out
}
