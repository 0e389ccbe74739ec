package attachment

import (
	"fmt"
	"sync"
	"time"
)

type RecordingStatus string

const (
	RecordingIdle    RecordingStatus = "idle"
	RecordingActive  RecordingStatus = "recording"
	RecordingStopped RecordingStatus = "stopped"
)

// RecordingSession accumulates captured audio chunks for one voice
// message. It is created via Pipeline.StartRecording after the platform
// granted microphone access.
type RecordingSession struct {
	mu        sync.Mutex
	status    RecordingStatus
	startedAt time.Time
	stoppedAt time.Time
	chunks    [][]byte

	now func() time.Time
}

func newRecordingSession() *RecordingSession {
	return &RecordingSession{
		status: RecordingIdle,
		now:    time.Now,
	}
}

func (r *RecordingSession) start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = RecordingActive
	r.startedAt = r.now()
}

// AppendChunk adds a captured audio chunk. Chunks arriving outside the
// recording state are rejected.
func (r *RecordingSession) AppendChunk(chunk []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != RecordingActive {
		return fmt.Errorf("recording session is %s, cannot accept chunks", r.status)
	}
	r.chunks = append(r.chunks, chunk)
	return nil
}

func (r *RecordingSession) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != RecordingActive {
		return fmt.Errorf("recording session is %s, cannot stop", r.status)
	}
	r.status = RecordingStopped
	r.stoppedAt = r.now()
	return nil
}

// Blob concatenates the captured chunks into the single payload handed
// to SendVoice.
func (r *RecordingSession) Blob() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := 0
	for _, c := range r.chunks {
		size += len(c)
	}
	blob := make([]byte, 0, size)
	for _, c := range r.chunks {
		blob = append(blob, c...)
	}
	return blob
}

// Elapsed renders the recording duration as mm:ss, ticking while the
// session is live.
func (r *RecordingSession) Elapsed() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var d time.Duration
	switch r.status {
	case RecordingActive:
		d = r.now().Sub(r.startedAt)
	case RecordingStopped:
		d = r.stoppedAt.Sub(r.startedAt)
	}
	if d < 0 {
		d = 0
	}

	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (r *RecordingSession) Status() RecordingStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}
