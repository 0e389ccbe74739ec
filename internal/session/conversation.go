// Package session composes the synchronization engine: one
// ConversationSession per open conversation and one ListSession for the
// conversation list. Sessions are created on open and disposed on close;
// nothing in here is process-global.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/attachment"
	"github.com/mentorlink/chat-sync/internal/config"
	"github.com/mentorlink/chat-sync/internal/model"
	"github.com/mentorlink/chat-sync/internal/pkg/validator"
	"github.com/mentorlink/chat-sync/internal/poller"
	"github.com/mentorlink/chat-sync/internal/readreceipt"
	"github.com/mentorlink/chat-sync/internal/store"
	"github.com/mentorlink/chat-sync/internal/viewport"
)

// acknowledgeTimeout bounds the detached mark-as-read call so it cannot
// outlive a reasonable network window.
const acknowledgeTimeout = 15 * time.Second

// Update is pushed to the presentation layer after every state change.
type Update struct {
	Messages             model.MessageList
	Boundaries           []store.GroupBoundary
	ScrollToBottom       bool
	NewMessagesAvailable bool
}

type UpdateFunc func(Update)

// ConversationSession owns one open conversation: its message store,
// poll loop, read receipts, viewport follow state and attachment
// pipeline. The store is never shared between sessions; switching
// partners means closing this session and opening a new one.
type ConversationSession struct {
	partnerID     string
	currentUserID string
	interval      time.Duration

	client      MessagingClient
	store       *store.MessageStore
	receipts    *readreceipt.Tracker
	poll        *poller.Session
	follower    *viewport.Follower
	attachments *attachment.Pipeline
	validator   *validator.Validator
	probe       ViewportProbe
	logger      logger_lib.LoggerInterface
	onUpdate    UpdateFunc
}

func NewConversation(
	cfg *config.Config,
	client MessagingClient,
	probe ViewportProbe,
	microphone attachment.MicrophoneGate,
	partnerID string,
	currentUserID string,
	logger logger_lib.LoggerInterface,
	onUpdate UpdateFunc,
) *ConversationSession {
	messageStore := store.New(logger)

	s := &ConversationSession{
		partnerID:     partnerID,
		currentUserID: currentUserID,
		interval:      cfg.Polling.MessageInterval,
		client:        client,
		store:         messageStore,
		receipts:      readreceipt.New(client, messageStore, logger),
		poll:          poller.New("messages", logger),
		follower:      viewport.New(),
		validator:     validator.New(),
		probe:         probe,
		logger:        logger,
		onUpdate:      onUpdate,
	}
	// The pending media message must be on screen before the upload
	// starts, not after it finishes.
	s.attachments = attachment.New(client, messageStore, microphone, currentUserID, logger, func() {
		s.notify(s.store.Messages(), s.follower.OnOwnSend())
	})
	return s
}

// Open starts the poll loop: an immediate fetch, then one tick per
// interval.
func (s *ConversationSession) Open() error {
	return s.poll.Start(s.interval, s.tick)
}

// Close stops the poll loop and invalidates any in-flight fetch so a
// late response cannot mutate the store after teardown. Idempotent.
func (s *ConversationSession) Close() {
	s.poll.Stop()
}

func (s *ConversationSession) tick(ctx context.Context, token uint64) error {
	incoming, err := s.client.FetchMessages(ctx, s.partnerID)
	if err != nil {
		return fmt.Errorf("failed to fetch messages for partner %s: %w", s.partnerID, err)
	}

	// The session may have been stopped (partner switch, teardown) while
	// the fetch was in flight. A stale result is discarded, not merged.
	if !s.poll.Alive(token) {
		return nil
	}

	res := s.store.Merge(incoming)
	scroll := s.follower.AfterMerge(len(res.AddedIDs), s.probe.DistanceFromBottomPx())

	// Acknowledge received-but-unread messages without ever blocking the
	// render path. A failure stays unread and retries on the next tick.
	if ids := s.receipts.CollectUnread(res.Messages); len(ids) > 0 {
		go func() {
			ackCtx, cancel := context.WithTimeout(context.Background(), acknowledgeTimeout)
			defer cancel()
			_ = s.receipts.Acknowledge(ackCtx, ids)
		}()
	}

	s.notify(res.Messages, scroll)
	return nil
}

// SendText appends the message optimistically, pushes it to the backend
// and merges the confirmed copy. On failure the optimistic entry is
// rolled back and the error returned to the caller.
func (s *ConversationSession) SendText(ctx context.Context, content string) error {
	if err := s.validator.ValidateTextMessage(s.partnerID, content); err != nil {
		return err
	}

	ref := uuid.New().String()
	s.store.AppendOptimistic(model.Message{
		ClientRef: ref,
		PartnerID: s.partnerID,
		SenderID:  s.currentUserID,
		IsMine:    true,
		Content:   content,
		SentAt:    time.Now(),
	})
	s.notify(s.store.Messages(), s.follower.OnOwnSend())

	confirmed, err := s.client.SendTextMessage(ctx, s.partnerID, content, ref)
	if err != nil {
		s.store.RemoveOptimistic(ref)
		s.notify(s.store.Messages(), false)
		return fmt.Errorf("failed to send message: %w", err)
	}

	res := s.store.Merge([]model.Message{confirmed})
	s.notify(res.Messages, false)
	return nil
}

// SendImage runs the attachment pipeline for a selected image file.
func (s *ConversationSession) SendImage(ctx context.Context, data []byte, filename, caption string) error {
	if err := s.validator.ValidateMediaMessage(s.partnerID, model.MediaImage, len(data), caption); err != nil {
		return err
	}

	confirmed, err := s.attachments.SendImage(ctx, s.partnerID, data, filename, caption)
	if err != nil {
		s.notify(s.store.Messages(), false)
		return err
	}

	res := s.store.Merge([]model.Message{confirmed})
	s.notify(res.Messages, false)
	return nil
}

// SendVoice uploads a finished recording.
func (s *ConversationSession) SendVoice(ctx context.Context, rec *attachment.RecordingSession, caption string) error {
	blob := rec.Blob()
	if err := s.validator.ValidateMediaMessage(s.partnerID, model.MediaVoice, len(blob), caption); err != nil {
		return err
	}

	confirmed, err := s.attachments.SendVoice(ctx, s.partnerID, blob, caption)
	if err != nil {
		s.notify(s.store.Messages(), false)
		return err
	}

	res := s.store.Merge([]model.Message{confirmed})
	s.notify(res.Messages, false)
	return nil
}

// StartRecording opens a voice recording session after the microphone
// permission prompt resolves.
func (s *ConversationSession) StartRecording(ctx context.Context) (*attachment.RecordingSession, error) {
	return s.attachments.StartRecording(ctx)
}

// JumpToLatest is the manual scroll-to-bottom affordance shown while new
// messages are pending.
func (s *ConversationSession) JumpToLatest() {
	s.notify(s.store.Messages(), s.follower.JumpToLatest())
}

// UploadProgress exposes the tracked state of one pending attachment.
func (s *ConversationSession) UploadProgress(clientRef string) (attachment.Upload, bool) {
	return s.attachments.Upload(clientRef)
}

// Messages returns the current timeline snapshot.
func (s *ConversationSession) Messages() model.MessageList {
	return s.store.Messages()
}

func (s *ConversationSession) notify(messages model.MessageList, scroll bool) {
	if s.onUpdate == nil {
		return
	}
	s.onUpdate(Update{
		Messages:             messages,
		Boundaries:           store.GroupBoundaries(messages),
		ScrollToBottom:       scroll,
		NewMessagesAvailable: s.follower.HasPending(),
	})
}
