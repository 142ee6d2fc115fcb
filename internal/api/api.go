// Package api is the REST client for the troc marketplace backend. Every call
// carries the configured bearer token; the backend is the single source of
// truth and the client never retries on its own.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/troc-app/troc/internal/config"
	trocerrors "github.com/troc-app/troc/internal/errors"
	"github.com/troc-app/troc/internal/logger"
)

const defaultHTTPTimeout = 30 * time.Second

// Client talks to the troc backend.
type Client struct {
	config     *config.Config
	httpClient *http.Client
	apiBase    string // Override for testing; defaults to the configured API URL
}

// New creates a backend client using the configured API URL.
func New(cfg *config.Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		apiBase: cfg.GetAPIURL(),
	}
}

// NewWithClient creates a backend client with a custom HTTP client and API
// base URL (for testing).
func NewWithClient(cfg *config.Config, client *http.Client, apiBase string) *Client {
	if apiBase == "" {
		apiBase = cfg.GetAPIURL()
	}
	return &Client{
		config:     cfg,
		httpClient: client,
		apiBase:    apiBase,
	}
}

// sendMessageRequest is the POST /messages body.
type sendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Content        string `json:"content"`
}

// startConversationRequest is the POST /messages/conversations body.
type startConversationRequest struct {
	ListingID string `json:"listingId"`
	Content   string `json:"content"`
}

// ListConversations fetches all conversations for the authenticated user.
// The returned order is the backend's and callers must preserve it.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	const op = trocerrors.Op("api.ListConversations")

	var conversations []Conversation
	if err := c.get(ctx, op, "/messages/conversations", &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// ListMessages fetches the full thread for one conversation, oldest first.
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	const op = trocerrors.Op("api.ListMessages")

	var messages []Message
	path := "/messages/" + conversationID
	if err := c.do(ctx, op, http.MethodGet, path, nil, &messages, conversationID); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a message to a conversation and returns the confirmed
// message with its backend-assigned id and timestamp.
func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (Message, error) {
	const op = trocerrors.Op("api.SendMessage")

	var confirmed Message
	body := sendMessageRequest{ConversationID: conversationID, Content: content}
	if err := c.do(ctx, op, http.MethodPost, "/messages", body, &confirmed, conversationID); err != nil {
		return Message{}, err
	}
	return confirmed, nil
}

// StartConversation opens a new conversation about a listing. The backend
// creates the conversation and its first message in one step.
func (c *Client) StartConversation(ctx context.Context, listingID, content string) (Conversation, error) {
	const op = trocerrors.Op("api.StartConversation")

	var conversation Conversation
	body := startConversationRequest{ListingID: listingID, Content: content}
	if err := c.do(ctx, op, http.MethodPost, "/messages/conversations", body, &conversation, listingID); err != nil {
		return Conversation{}, err
	}
	return conversation, nil
}

// get issues an authenticated GET and decodes the response into out.
func (c *Client) get(ctx context.Context, op trocerrors.Op, path string, out interface{}) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out, "")
}

// do issues one authenticated request. Status codes map to the error taxonomy:
// 401/403 are auth failures, 404 is a missing/inaccessible target, everything
// else non-2xx (and any transport failure) is a network error.
func (c *Client) do(ctx context.Context, op trocerrors.Op, method, path string, body, out interface{}, targetID string) error {
	token := c.config.GetToken()
	if token == "" {
		return trocerrors.TokenMissing()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return trocerrors.E(op, trocerrors.KindValidation, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reqBody)
	if err != nil {
		return trocerrors.E(op, trocerrors.KindNetwork, "failed to create request", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return trocerrors.APIRequestFailed(op, err)
	}
	defer resp.Body.Close()

	logger.Debug("API: %s %s -> %d", method, path, resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return trocerrors.APIUnauthorized(op)
	case resp.StatusCode == http.StatusNotFound:
		return trocerrors.APINotFound(op, targetID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return trocerrors.APIStatus(op, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return trocerrors.E(op, trocerrors.KindNetwork, fmt.Sprintf("failed to parse %s response", path), err)
	}
	return nil
}
