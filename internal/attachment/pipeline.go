// Package attachment manages the upload lifecycle of image and voice
// messages: optimistic append, progress reporting, and rollback on
// failure. A failed upload never leaves a ghost message in the store.
package attachment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/model"
)

type Status string

const (
	StatusSelected  Status = "selected"
	StatusUploading Status = "uploading"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Upload is the tracked state of one pending attachment. Concurrent
// uploads each get their own entry keyed by client ref.
type Upload struct {
	ClientRef string
	MediaType model.MediaType
	Status    Status
	Progress  float64
}

type Pipeline struct {
	uploader      Uploader
	store         OptimisticStore
	microphone    MicrophoneGate
	logger        logger_lib.LoggerInterface
	currentUserID string
	onAppend      func()

	mu      sync.Mutex
	uploads map[string]*Upload
}

// New builds a pipeline. onAppend fires right after the optimistic
// message lands in the store, before the upload starts, so the caller
// can re-render with the pending entry already visible.
func New(uploader Uploader, store OptimisticStore, microphone MicrophoneGate, currentUserID string, logger logger_lib.LoggerInterface, onAppend func()) *Pipeline {
	return &Pipeline{
		uploader:      uploader,
		store:         store,
		microphone:    microphone,
		logger:        logger,
		currentUserID: currentUserID,
		onAppend:      onAppend,
		uploads:       make(map[string]*Upload),
	}
}

// SendImage appends an optimistic image message and uploads the payload.
// On success the confirmed message is returned for immediate merge; on
// failure the optimistic entry is rolled back and the error surfaced.
func (p *Pipeline) SendImage(ctx context.Context, partnerID string, data []byte, filename, caption string) (model.Message, error) {
	ref := p.begin(partnerID, model.MediaImage, caption)

	confirmed, err := p.uploader.SendImageMessage(ctx, partnerID, data, filename, caption, ref, p.progressFunc(ref))
	return p.finish(ref, confirmed, err)
}

// SendVoice uploads a finished recording's blob with the same
// optimistic-append / upload / rollback flow as images.
func (p *Pipeline) SendVoice(ctx context.Context, partnerID string, blob []byte, caption string) (model.Message, error) {
	ref := p.begin(partnerID, model.MediaVoice, caption)

	confirmed, err := p.uploader.SendVoiceMessage(ctx, partnerID, blob, caption, ref, p.progressFunc(ref))
	return p.finish(ref, confirmed, err)
}

// StartRecording requests microphone access and opens a recording
// session. A denied permission is surfaced immediately and the session
// never reaches the recording state.
func (p *Pipeline) StartRecording(ctx context.Context) (*RecordingSession, error) {
	if err := p.microphone.RequestAccess(ctx); err != nil {
		return nil, fmt.Errorf("microphone access denied: %w", err)
	}

	rec := newRecordingSession()
	rec.start()
	return rec, nil
}

// Upload returns the tracked state of a pending or finished attachment.
func (p *Pipeline) Upload(clientRef string) (Upload, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, ok := p.uploads[clientRef]
	if !ok {
		return Upload{}, false
	}
	return *u, true
}

func (p *Pipeline) begin(partnerID string, mediaType model.MediaType, caption string) string {
	ref := uuid.New().String()

	p.store.AppendOptimistic(model.Message{
		ClientRef: ref,
		PartnerID: partnerID,
		SenderID:  p.currentUserID,
		IsMine:    true,
		Content:   caption,
		MediaType: mediaType,
		SentAt:    time.Now(),
	})

	p.mu.Lock()
	p.uploads[ref] = &Upload{
		ClientRef: ref,
		MediaType: mediaType,
		Status:    StatusUploading,
	}
	p.mu.Unlock()

	if p.onAppend != nil {
		p.onAppend()
	}
	return ref
}

func (p *Pipeline) finish(ref string, confirmed model.Message, err error) (model.Message, error) {
	p.mu.Lock()
	u := p.uploads[ref]
	p.mu.Unlock()

	if err != nil {
		p.store.RemoveOptimistic(ref)
		p.mu.Lock()
		u.Status = StatusFailed
		p.mu.Unlock()
		if p.logger != nil {
			p.logger.Warn(fmt.Sprintf("upload %s failed, optimistic message removed: %v", ref, err))
		}
		return model.Message{}, fmt.Errorf("failed to upload attachment: %w", err)
	}

	p.mu.Lock()
	u.Status = StatusConfirmed
	u.Progress = 1
	p.mu.Unlock()

	return confirmed, nil
}

func (p *Pipeline) progressFunc(ref string) func(float64) {
	return func(fraction float64) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if u, ok := p.uploads[ref]; ok {
			u.Progress = fraction
		}
	}
}
