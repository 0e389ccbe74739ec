// Package chatsync is the embedding surface of the conversation sync
// engine. A host application builds one Engine per signed-in user and
// opens sessions from it; everything below this package is internal.
package chatsync

import (
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/attachment"
	"github.com/mentorlink/chat-sync/internal/cache"
	"github.com/mentorlink/chat-sync/internal/client/messaging"
	"github.com/mentorlink/chat-sync/internal/config"
	"github.com/mentorlink/chat-sync/internal/databus/partner"
	"github.com/mentorlink/chat-sync/internal/session"
)

// The HTTP client is the production implementation of both session
// contracts.
var (
	_ session.MessagingClient = (*messaging.Client)(nil)
	_ session.ListClient      = (*messaging.Client)(nil)
)

type Engine struct {
	cfg           *config.Config
	currentUserID string
	client        *messaging.Client
	partners      *cache.PartnerCache
	logger        logger_lib.LoggerInterface
}

func New(cfg *config.Config, currentUserID string, token messaging.TokenProvider, logger logger_lib.LoggerInterface) *Engine {
	return &Engine{
		cfg:           cfg,
		currentUserID: currentUserID,
		client:        messaging.New(cfg, currentUserID, token),
		partners:      cache.New(),
		logger:        logger,
	}
}

// OpenConversation starts a polling session for one partner. The caller
// owns the returned session and must Close it before opening another
// one for a different partner.
func (e *Engine) OpenConversation(
	partnerID string,
	probe session.ViewportProbe,
	microphone attachment.MicrophoneGate,
	onUpdate session.UpdateFunc,
) (*session.ConversationSession, error) {
	s := session.NewConversation(e.cfg, e.client, probe, microphone, partnerID, e.currentUserID, e.logger, onUpdate)
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenList starts the conversation-list session on its own cadence.
func (e *Engine) OpenList(onUpdate session.ListUpdateFunc) (*session.ListSession, error) {
	s := session.NewList(e.cfg, e.client, e.partners, e.logger, onUpdate)
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

// PartnerUpdates returns the data-bus handler bound to this engine's
// partner cache, for hosts that register a kafka consumer.
func (e *Engine) PartnerUpdates() *partner.Handler {
	return partner.New(e.partners)
}

// ResolveMediaURL turns a server-relative media path into a fetchable
// absolute URL.
func (e *Engine) ResolveMediaURL(mediaPath string) string {
	return e.client.ResolveMediaURL(mediaPath)
}

// Close tears the engine down on logout: cached partner identity is
// dropped along with the HTTP client.
func (e *Engine) Close() {
	e.partners.Clear()
	e.client.Close()
}
