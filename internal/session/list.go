package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/cache"
	"github.com/mentorlink/chat-sync/internal/config"
	"github.com/mentorlink/chat-sync/internal/conversations"
	"github.com/mentorlink/chat-sync/internal/model"
	"github.com/mentorlink/chat-sync/internal/poller"
)

// partnerFetchLimit bounds how many partner-info lookups a single list
// refresh may fan out.
const partnerFetchLimit = 4

type ListUpdateFunc func(model.ConversationSummaryList)

// ListSession keeps the conversation list fresh on its own, slower poll
// cadence. It shares nothing with conversation sessions except the
// injected partner cache.
type ListSession struct {
	interval time.Duration

	client     ListClient
	aggregator *conversations.Aggregator
	poll       *poller.Session
	partners   *cache.PartnerCache
	logger     logger_lib.LoggerInterface
	onUpdate   ListUpdateFunc
}

func NewList(
	cfg *config.Config,
	client ListClient,
	partners *cache.PartnerCache,
	logger logger_lib.LoggerInterface,
	onUpdate ListUpdateFunc,
) *ListSession {
	return &ListSession{
		interval:   cfg.Polling.ListInterval,
		client:     client,
		aggregator: conversations.New(),
		poll:       poller.New("conversations", logger),
		partners:   partners,
		logger:     logger,
		onUpdate:   onUpdate,
	}
}

func (s *ListSession) Open() error {
	return s.poll.Start(s.interval, s.tick)
}

func (s *ListSession) Close() {
	s.poll.Stop()
}

func (s *ListSession) tick(ctx context.Context, token uint64) error {
	summaries, err := s.client.FetchConversations(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch conversations: %w", err)
	}

	if !s.poll.Alive(token) {
		return nil
	}

	s.fillPartnerNames(ctx, summaries)

	sorted := s.aggregator.Rebuild(summaries)
	if s.onUpdate != nil {
		s.onUpdate(sorted)
	}
	return nil
}

// fillPartnerNames resolves display names the list payload did not
// carry, serving from the partner cache first and fanning the remaining
// lookups out concurrently. A failed lookup degrades to an empty name
// for this refresh; the next one retries.
func (s *ListSession) fillPartnerNames(ctx context.Context, summaries []model.ConversationSummary) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(partnerFetchLimit)

	for i := range summaries {
		if strings.TrimSpace(summaries[i].PartnerName) != "" {
			continue
		}

		if info, ok := s.partners.Get(summaries[i].PartnerID); ok {
			summaries[i].PartnerName = info.Name
			if summaries[i].ProfilePicture == nil {
				summaries[i].ProfilePicture = info.ProfilePicture
			}
			continue
		}

		i := i
		g.Go(func() error {
			info, err := s.client.FetchPartnerInfo(ctx, summaries[i].PartnerID)
			if err != nil {
				if s.logger != nil {
					s.logger.Warn(fmt.Sprintf("failed to fetch partner info for %s: %v", summaries[i].PartnerID, err))
				}
				return nil
			}
			s.partners.Put(info)
			summaries[i].PartnerName = info.Name
			if summaries[i].ProfilePicture == nil {
				summaries[i].ProfilePicture = info.ProfilePicture
			}
			return nil
		})
	}

	_ = g.Wait()
}

// OpenConversation applies the optimistic unread reset when the user
// enters a conversation, ahead of the next refresh confirming it.
func (s *ListSession) OpenConversation(partnerID string) {
	s.aggregator.DecrementUnread(partnerID)
	if s.onUpdate != nil {
		s.onUpdate(s.aggregator.Snapshot())
	}
}

// Conversations returns the current sorted snapshot.
func (s *ListSession) Conversations() model.ConversationSummaryList {
	return s.aggregator.Snapshot()
}
