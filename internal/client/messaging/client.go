// Package messaging is the HTTP client for the backend Messaging
// Service. All payload-shape normalization happens here; callers only
// ever see the canonical model types.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/mentorlink/chat-sync/internal/config"
	"github.com/mentorlink/chat-sync/internal/model"
)

// TokenProvider supplies the current bearer token. Session storage is
// owned by the host application.
type TokenProvider func() string

type Client struct {
	baseURL       string
	mediaBaseURL  string
	currentUserID string
	token         TokenProvider
	httpClient    *http.Client
}

func New(cfg *config.Config, currentUserID string, token TokenProvider) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.Messaging.BaseURL, "/"),
		mediaBaseURL:  strings.TrimRight(cfg.Messaging.MediaBaseURL, "/"),
		currentUserID: currentUserID,
		token:         token,
		httpClient: &http.Client{
			Timeout: cfg.Messaging.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) FetchMessages(ctx context.Context, partnerID string) ([]model.Message, error) {
	var wire []wireMessage
	if err := c.getJSON(ctx, "/api/messages/"+partnerID, &wire); err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	messages := make([]model.Message, len(wire))
	for i, w := range wire {
		messages[i] = w.toModel(partnerID, c.currentUserID)
	}
	return messages, nil
}

func (c *Client) FetchConversations(ctx context.Context) ([]model.ConversationSummary, error) {
	var wire []wireConversation
	if err := c.getJSON(ctx, "/api/conversations", &wire); err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}

	summaries := make([]model.ConversationSummary, len(wire))
	for i, w := range wire {
		summaries[i] = w.toModel()
	}
	return summaries, nil
}

func (c *Client) FetchPartnerInfo(ctx context.Context, partnerID string) (model.PartnerInfo, error) {
	var wire wirePartner
	if err := c.getJSON(ctx, "/api/partners/"+partnerID, &wire); err != nil {
		return model.PartnerInfo{}, fmt.Errorf("failed to fetch partner info: %w", err)
	}
	return wire.toModel(), nil
}

func (c *Client) SendTextMessage(ctx context.Context, partnerID, content, clientRef string) (model.Message, error) {
	payload := map[string]string{
		"content":    content,
		"client_ref": clientRef,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages/"+partnerID, bytes.NewBuffer(jsonData))
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var wire wireMessage
	if err := c.do(req, &wire); err != nil {
		return model.Message{}, fmt.Errorf("failed to send message: %w", err)
	}
	return wire.toModel(partnerID, c.currentUserID), nil
}

func (c *Client) SendImageMessage(ctx context.Context, partnerID string, data []byte, filename, caption, clientRef string, progress func(fraction float64)) (model.Message, error) {
	return c.sendMedia(ctx, partnerID, "image", data, filename, caption, clientRef, progress)
}

func (c *Client) SendVoiceMessage(ctx context.Context, partnerID string, blob []byte, caption, clientRef string, progress func(fraction float64)) (model.Message, error) {
	return c.sendMedia(ctx, partnerID, "voice", blob, "recording.webm", caption, clientRef, progress)
}

func (c *Client) sendMedia(ctx context.Context, partnerID, field string, data []byte, filename, caption, clientRef string, progress func(fraction float64)) (model.Message, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return model.Message{}, fmt.Errorf("failed to write form file: %w", err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return model.Message{}, fmt.Errorf("failed to write caption field: %w", err)
		}
	}
	if err := writer.WriteField("client_ref", clientRef); err != nil {
		return model.Message{}, fmt.Errorf("failed to write client_ref field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return model.Message{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	reqBody := io.Reader(body)
	if progress != nil {
		reqBody = newProgressReader(body, int64(body.Len()), progress)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages/"+partnerID+"/media", reqBody)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var wire wireMessage
	if err := c.do(req, &wire); err != nil {
		return model.Message{}, fmt.Errorf("failed to upload %s: %w", field, err)
	}
	return wire.toModel(partnerID, c.currentUserID), nil
}

func (c *Client) MarkAsRead(ctx context.Context, messageIDs []string) error {
	payload := map[string][]string{
		"message_ids": messageIDs,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages/read", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed to mark messages as read: %w", err)
	}
	return nil
}

// ResolveMediaURL turns a server-relative media path into an absolute
// fetchable URL. Pure string work, no I/O.
func (c *Client) ResolveMediaURL(mediaPath string) string {
	if mediaPath == "" {
		return ""
	}
	if strings.HasPrefix(mediaPath, "http://") || strings.HasPrefix(mediaPath, "https://") {
		return mediaPath
	}
	return c.mediaBaseURL + "/" + strings.TrimLeft(mediaPath, "/")
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
