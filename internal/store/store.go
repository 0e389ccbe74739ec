package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/model"
)

// signatureTolerance bounds how far apart in time an optimistic message
// and its server-confirmed counterpart may be and still be considered the
// same send.
const signatureTolerance = 5 * time.Second

// MessageStore holds the ordered, deduplicated message set for one open
// conversation. It is owned by exactly one conversation session and is
// safe for use from the session's poll and send goroutines.
type MessageStore struct {
	mu       sync.Mutex
	messages model.MessageList
	logger   logger_lib.LoggerInterface
}

type MergeResult struct {
	// Messages is the merged timeline, ascending by SentAt.
	Messages model.MessageList
	// AddedIDs are server ids seen for the first time by this merge,
	// excluding reconciliations of locally optimistic messages.
	AddedIDs []string
	// Dropped counts malformed incoming entries discarded by this merge.
	Dropped int
}

func New(logger logger_lib.LoggerInterface) *MessageStore {
	return &MessageStore{
		logger: logger,
	}
}

// Merge integrates a poll result into the store. Confirmed incoming
// messages win over the local copy with the same id; incoming messages
// with a new id first try to reconcile a pending optimistic entry (by
// client ref, then by signature within the tolerance window) before being
// appended. The result is always ascending by SentAt with ties kept in
// their prior relative order, and a message once read never becomes
// unread again.
func (s *MessageStore) Merge(incoming []model.Message) MergeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.messages))
	for i, m := range s.messages {
		if m.Confirmed() {
			byID[*m.ID] = i
		}
	}

	var addedIDs []string
	dropped := 0

	for _, in := range incoming {
		if in.SenderID == "" {
			dropped++
			if s.logger != nil {
				s.logger.Warn(fmt.Sprintf("dropping malformed message without sender, partner: %s", in.PartnerID))
			}
			continue
		}

		if in.Confirmed() {
			if idx, ok := byID[*in.ID]; ok {
				s.messages[idx] = reconcile(s.messages[idx], in)
				continue
			}

			if idx, ok := s.matchOptimistic(in); ok {
				s.messages[idx] = reconcile(s.messages[idx], in)
				byID[*in.ID] = idx
				continue
			}

			s.messages = append(s.messages, in)
			byID[*in.ID] = len(s.messages) - 1
			addedIDs = append(addedIDs, *in.ID)
			continue
		}

		// The server should never return an unconfirmed message; keep it
		// rather than lose content, but flag the payload.
		if s.logger != nil {
			s.logger.Warn(fmt.Sprintf("poll returned message without id from sender %s", in.SenderID))
		}
		s.messages = append(s.messages, in)
	}

	sort.SliceStable(s.messages, func(i, j int) bool {
		return s.messages[i].SentAt.Before(s.messages[j].SentAt)
	})

	return MergeResult{
		Messages: s.snapshotLocked(),
		AddedIDs: addedIDs,
		Dropped:  dropped,
	}
}

// matchOptimistic finds a pending optimistic message that looks like the
// local origin of the given server-confirmed one. A client ref echoed by
// the server is authoritative; otherwise fall back to signature matching
// within the tolerance window.
func (s *MessageStore) matchOptimistic(in model.Message) (int, bool) {
	if in.ClientRef != "" {
		for i, m := range s.messages {
			if !m.Confirmed() && m.ClientRef == in.ClientRef {
				return i, true
			}
		}
	}

	sig := in.Signature()
	for i, m := range s.messages {
		if m.Confirmed() || m.Signature() != sig {
			continue
		}
		delta := in.SentAt.Sub(m.SentAt)
		if delta < 0 {
			delta = -delta
		}
		if delta <= signatureTolerance {
			return i, true
		}
	}
	return 0, false
}

// reconcile merges a server-confirmed message over the local copy. The
// server is authoritative for every field except read state, which only
// moves forward.
func reconcile(local, in model.Message) model.Message {
	merged := in
	if local.IsRead {
		merged.IsRead = true
		if merged.ReadAt == nil {
			merged.ReadAt = local.ReadAt
		}
	}
	if merged.ClientRef == "" {
		merged.ClientRef = local.ClientRef
	}
	return merged
}

// AppendOptimistic inserts a not-yet-confirmed message so it renders
// immediately. The next merge reconciles it against the server copy.
func (s *MessageStore) AppendOptimistic(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = nil
	msg.IsRead = false
	s.messages = append(s.messages, msg)
}

// RemoveOptimistic drops a pending optimistic message, used to roll back
// a failed send or upload. Returns whether anything was removed.
func (s *MessageStore) RemoveOptimistic(clientRef string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.messages {
		if !m.Confirmed() && m.ClientRef == clientRef {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}

// MarkRead flips read state for the given server ids. Monotonic: already
// read messages are unaffected.
func (s *MessageStore) MarkRead(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	for i, m := range s.messages {
		if !m.Confirmed() {
			continue
		}
		if _, ok := want[*m.ID]; !ok || m.IsRead {
			continue
		}
		s.messages[i].IsRead = true
		if s.messages[i].ReadAt == nil {
			readAt := now
			s.messages[i].ReadAt = &readAt
		}
	}
}

// Messages returns a copy of the current timeline.
func (s *MessageStore) Messages() model.MessageList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *MessageStore) snapshotLocked() model.MessageList {
	out := make(model.MessageList, len(s.messages))
	copy(out, s.messages)
	return out
}
