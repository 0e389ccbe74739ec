// Package cache holds the cross-conversation partner info lookup. It is
// an explicitly injected dependency rather than process-global state:
// unbounded for the session lifetime, cleared on logout, and refreshed
// out-of-band by the partner-updates databus worker.
package cache

import (
	"sync"

	"github.com/mentorlink/chat-sync/internal/model"
)

type PartnerCache struct {
	mu       sync.RWMutex
	partners map[string]model.PartnerInfo
}

func New() *PartnerCache {
	return &PartnerCache{
		partners: make(map[string]model.PartnerInfo),
	}
}

func (c *PartnerCache) Get(partnerID string) (model.PartnerInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.partners[partnerID]
	return info, ok
}

func (c *PartnerCache) Put(info model.PartnerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partners[info.ID] = info
}

// UpdateName refreshes just the display name, keeping the rest of a
// cached entry. Unknown partners are ignored; they will be fetched and
// cached on first use.
func (c *PartnerCache) UpdateName(partnerID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.partners[partnerID]
	if !ok {
		return
	}
	info.Name = name
	c.partners[partnerID] = info
}

// UpdateAvatar refreshes just the profile picture of a cached entry.
func (c *PartnerCache) UpdateAvatar(partnerID, avatarURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.partners[partnerID]
	if !ok {
		return
	}
	info.ProfilePicture = &avatarURL
	c.partners[partnerID] = info
}

// Clear drops every entry; called on logout.
func (c *PartnerCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partners = make(map[string]model.PartnerInfo)
}

func (c *PartnerCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.partners)
}
