package store

import "github.com/mentorlink/chat-sync/internal/model"

// GroupBoundary marks a message's position inside a run of consecutive
// messages from the same sender. The UI collapses avatars and sender
// labels based on these, so they are recomputed after every merge rather
// than owned by presentation code.
type GroupBoundary struct {
	FirstOfRun bool
	LastOfRun  bool
}

func GroupBoundaries(messages model.MessageList) []GroupBoundary {
	out := make([]GroupBoundary, len(messages))
	for i := range messages {
		if i == 0 || messages[i-1].SenderID != messages[i].SenderID {
			out[i].FirstOfRun = true
		}
		if i == len(messages)-1 || messages[i+1].SenderID != messages[i].SenderID {
			out[i].LastOfRun = true
		}
	}
	return out
}
