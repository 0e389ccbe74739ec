// Package viewport decides whether the conversation view follows new
// messages to the bottom or preserves the reader's scroll position.
package viewport

import "sync"

// atBottomThresholdPx treats "close enough to the bottom" as at the
// bottom, so a reader parked at the newest message keeps following it.
const atBottomThresholdPx = 20.0

type Follower struct {
	mu      sync.Mutex
	pending bool
}

func New() *Follower {
	return &Follower{}
}

// ShouldAutoScroll reports whether the viewport counts as at-bottom for
// the given distance from the bottom edge.
func (f *Follower) ShouldAutoScroll(distanceFromBottomPx float64) bool {
	return distanceFromBottomPx <= atBottomThresholdPx
}

// AfterMerge is called once per merge that completed. It returns whether
// the view should scroll to the new bottom. When new messages arrive
// while the reader is scrolled up, auto-scroll is suppressed and the
// "new messages available" affordance is raised instead.
func (f *Follower) AfterMerge(added int, distanceFromBottomPx float64) bool {
	if added == 0 {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Being at the bottom before the merge always wins: a reader who
	// scrolled back down keeps following, and any pending flag raised
	// while they were away is cleared.
	if f.ShouldAutoScroll(distanceFromBottomPx) {
		f.pending = false
		return true
	}
	f.pending = true
	return false
}

// OnOwnSend always forces scroll-to-bottom: the sender expects to see
// their own message.
func (f *Follower) OnOwnSend() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = false
	return true
}

// JumpToLatest is the manual affordance; it clears the pending flag and
// instructs the view to scroll.
func (f *Follower) JumpToLatest() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = false
	return true
}

// HasPending reports whether new messages arrived while the reader was
// scrolled away from the bottom.
func (f *Follower) HasPending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}
