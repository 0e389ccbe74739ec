// Package partner consumes partner profile updates from the data bus and
// keeps the in-memory partner cache current, so display names and avatars
// refresh without waiting for the next list poll.
package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/config"
)

type Handler struct {
	cache PartnerCacheUpdater
}

func New(cache PartnerCacheUpdater) *Handler {
	return &Handler{cache: cache}
}

type updateMessage struct {
	PartnerID string `json:"uuid"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

func (h *Handler) Handler(ctx context.Context, msg []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var update updateMessage
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal partner update: %v", err))
		return fmt.Errorf("failed to unmarshal partner update: %w", err)
	}

	if strings.TrimSpace(update.PartnerID) == "" {
		logger.Error("partner update has no partner id")
		return fmt.Errorf("partner update has no partner id")
	}

	// Some producers publish nickname only; it serves as the display name
	// when no full name is present.
	name := update.Name
	if strings.TrimSpace(name) == "" {
		name = update.Nickname
	}
	if strings.TrimSpace(name) != "" {
		h.cache.UpdateName(update.PartnerID, name)
	}

	if strings.TrimSpace(update.AvatarURL) != "" {
		h.cache.UpdateAvatar(update.PartnerID, update.AvatarURL)
	}
	return nil
}
