// Command devserver runs an in-memory fake of the Messaging Service for
// local development. It reproduces the quirks of the production payloads
// on purpose: numeric ids, database-style timestamps, 0/1 read flags and
// inconsistent display-name keys, so the sync engine's normalization
// path is exercised end to end without a real backend.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/mentorlink/chat-sync/internal/config"
)

const autoReplyDelay = 4 * time.Second

type storedMessage struct {
	id        int
	senderID  string
	content   string
	mediaType string
	mediaPath string
	clientRef string
	sentAt    time.Time
	isRead    bool
}

type storedPartner struct {
	id        string
	name      string
	role      string
	avatarURL string
}

type backend struct {
	logger logger_lib.LoggerInterface

	mu       sync.Mutex
	nextID   int
	userID   string
	messages map[string][]storedMessage
	partners map[string]storedPartner
	blobs    map[string][]byte
}

func newBackend(logger logger_lib.LoggerInterface) *backend {
	b := &backend{
		logger:   logger,
		nextID:   1,
		userID:   "dev-user",
		messages: make(map[string][]storedMessage),
		partners: make(map[string]storedPartner),
		blobs:    make(map[string][]byte),
	}
	b.seed()
	return b
}

func (b *backend) seed() {
	b.partners["mentor-1"] = storedPartner{
		id:        "mentor-1",
		name:      "Alice Mentor",
		role:      "mentor",
		avatarURL: "/media/avatars/mentor-1.png",
	}
	b.partners["student-7"] = storedPartner{
		id:   "student-7",
		name: "Bob Student",
		role: "student",
	}

	now := time.Now()
	b.appendLocked("mentor-1", storedMessage{
		senderID: "mentor-1",
		content:  "Welcome! Ping me whenever you get stuck.",
		sentAt:   now.Add(-2 * time.Hour),
		isRead:   true,
	})
	b.appendLocked("mentor-1", storedMessage{
		senderID: "mentor-1",
		content:  "Did you get a chance to look at the review?",
		sentAt:   now.Add(-10 * time.Minute),
	})
	b.appendLocked("student-7", storedMessage{
		senderID: b.userID,
		content:  "Session moved to Thursday.",
		sentAt:   now.Add(-26 * time.Hour),
		isRead:   true,
	})
}

func (b *backend) appendLocked(partnerID string, msg storedMessage) storedMessage {
	msg.id = b.nextID
	b.nextID++
	b.messages[partnerID] = append(b.messages[partnerID], msg)
	return msg
}

// encodeMessage alternates between the payload shapes the real backend
// is known to produce, keyed off the message id.
func (b *backend) encodeMessage(msg storedMessage) map[string]any {
	out := map[string]any{
		"content":    msg.content,
		"client_ref": msg.clientRef,
	}

	if msg.id%2 == 0 {
		out["id"] = msg.id
		out["sender_id"] = msg.senderID
		out["sent_at"] = msg.sentAt.Format("2006-01-02 15:04:05.000000")
		if msg.isRead {
			out["is_read"] = 1
		} else {
			out["is_read"] = 0
		}
	} else {
		out["id"] = strconv.Itoa(msg.id)
		out["sender_id"] = msg.senderID
		out["sent_at"] = msg.sentAt.UTC().Format(time.RFC3339)
		out["is_read"] = msg.isRead
	}

	if msg.mediaType != "" {
		out["media_type"] = msg.mediaType
		out["media_path"] = msg.mediaPath
	}
	return out
}

func (b *backend) getMessages(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "partnerID")

	b.mu.Lock()
	stored := b.messages[partnerID]
	payload := make([]map[string]any, len(stored))
	for i, msg := range stored {
		payload[i] = b.encodeMessage(msg)
	}
	b.mu.Unlock()

	b.writeJSON(w, payload, http.StatusOK)
}

func (b *backend) sendMessage(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "partnerID")

	var req struct {
		Content   string `json:"content"`
		ClientRef string `json:"client_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		b.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		b.writeError(w, "content cannot be empty", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	msg := b.appendLocked(partnerID, storedMessage{
		senderID:  b.userID,
		content:   req.Content,
		clientRef: req.ClientRef,
		sentAt:    time.Now(),
		isRead:    true,
	})
	payload := b.encodeMessage(msg)
	b.mu.Unlock()

	b.scheduleAutoReply(partnerID)
	b.writeJSON(w, payload, http.StatusOK)
}

func (b *backend) sendMedia(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "partnerID")

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		b.writeError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	mediaType := "image"
	file, header, err := r.FormFile("image")
	if err != nil {
		mediaType = "voice"
		file, header, err = r.FormFile("voice")
	}
	if err != nil {
		b.writeError(w, "no media file in request", http.StatusBadRequest)
		return
	}
	defer file.Close() //nolint:errcheck // .

	data, err := io.ReadAll(file)
	if err != nil {
		b.writeError(w, "failed to read media file", http.StatusInternalServerError)
		return
	}

	b.mu.Lock()
	blobName := fmt.Sprintf("%d_%s", b.nextID, header.Filename)
	b.blobs[blobName] = data
	msg := b.appendLocked(partnerID, storedMessage{
		senderID:  b.userID,
		content:   r.FormValue("caption"),
		mediaType: mediaType,
		mediaPath: "/media/" + blobName,
		clientRef: r.FormValue("client_ref"),
		sentAt:    time.Now(),
		isRead:    true,
	})
	payload := b.encodeMessage(msg)
	b.mu.Unlock()

	b.writeJSON(w, payload, http.StatusOK)
}

func (b *backend) markRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MessageIDs []string `json:"message_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		b.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	wanted := make(map[string]struct{}, len(req.MessageIDs))
	for _, id := range req.MessageIDs {
		wanted[id] = struct{}{}
	}

	b.mu.Lock()
	for partnerID := range b.messages {
		for i := range b.messages[partnerID] {
			if _, ok := wanted[strconv.Itoa(b.messages[partnerID][i].id)]; ok {
				b.messages[partnerID][i].isRead = true
			}
		}
	}
	b.mu.Unlock()

	b.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (b *backend) getConversations(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	payload := make([]map[string]any, 0, len(b.messages))
	for partnerID, stored := range b.messages {
		if len(stored) == 0 {
			continue
		}
		last := stored[len(stored)-1]

		unread := 0
		for _, msg := range stored {
			if msg.senderID != b.userID && !msg.isRead {
				unread++
			}
		}

		entry := map[string]any{
			"partner_id":           partnerID,
			"last_message_content": last.content,
			"last_message_time":    last.sentAt.UTC().Format(time.RFC3339),
			"is_last_message_mine": last.senderID == b.userID,
			"unread_count":         unread,
		}

		// Half the entries carry the name under the legacy key, the rest
		// omit it entirely to force a partner-info lookup.
		if partner, ok := b.partners[partnerID]; ok && last.id%2 == 0 {
			entry["partner_name"] = partner.name
			if partner.avatarURL != "" {
				entry["profile_picture"] = partner.avatarURL
			}
		}
		payload = append(payload, entry)
	}
	b.mu.Unlock()

	b.writeJSON(w, payload, http.StatusOK)
}

func (b *backend) getPartner(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "id")

	b.mu.Lock()
	partner, ok := b.partners[partnerID]
	b.mu.Unlock()

	if !ok {
		b.writeError(w, "partner not found", http.StatusNotFound)
		return
	}

	payload := map[string]any{
		"id":   partner.id,
		"name": partner.name,
		"role": partner.role,
	}
	if partner.avatarURL != "" {
		payload["profile_picture"] = partner.avatarURL
	}
	b.writeJSON(w, payload, http.StatusOK)
}

func (b *backend) getMedia(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	b.mu.Lock()
	data, ok := b.blobs[name]
	b.mu.Unlock()

	if !ok {
		b.writeError(w, "media not found", http.StatusNotFound)
		return
	}
	_, _ = w.Write(data)
}

// scheduleAutoReply makes the polling loop observable: a short while
// after the user sends something, the partner answers.
func (b *backend) scheduleAutoReply(partnerID string) {
	time.AfterFunc(autoReplyDelay, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.partners[partnerID]; !ok {
			return
		}
		b.appendLocked(partnerID, storedMessage{
			senderID: partnerID,
			content:  "Got it, thanks!",
			sentAt:   time.Now(),
		})
	})
}

func (b *backend) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (b *backend) writeError(w http.ResponseWriter, message string, statusCode int) {
	b.logger.Warn(fmt.Sprintf("request failed with %d: %s", statusCode, message))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	b := newBackend(logger)

	router := chi.NewRouter()
	router.Get("/api/messages/{partnerID}", b.getMessages)
	router.Post("/api/messages/read", b.markRead)
	router.Post("/api/messages/{partnerID}", b.sendMessage)
	router.Post("/api/messages/{partnerID}/media", b.sendMedia)
	router.Get("/api/conversations", b.getConversations)
	router.Get("/api/partners/{id}", b.getPartner)
	router.Get("/media/*", b.getMedia)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	logger.Info(fmt.Sprintf("devserver listening on :%s", cfg.Service.Port))

	httpServer := &http.Server{
		Handler: router,
	}
	if err := httpServer.Serve(listener); err != nil {
		logger.Error(fmt.Sprintf("HTTP server error: %v", err))
	}
}
