package roomsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/vk/roomwalk/internal/room"
)

// DefaultTimeout bounds a single request round-trip when the expedition
// does not configure one. The core loop itself has no timeout; one slow
// request simply delays the next step.
const DefaultTimeout = 30 * time.Second

// moveRequest is the body of a PUT move request.
type moveRequest struct {
	XID room.ID `json:"xid"`
}

// Client is the HTTP implementation of Service.
type Client struct {
	messageURL string
	httpClient *http.Client
}

// NewClient builds a client for one message on one server. Every client
// owns a fresh cookie jar: the session cookie is the server's only notion
// of where the walker stands, so a new jar is what makes Start a genuinely
// new session.
func NewClient(serverURL, message string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", serverURL, err)
	}
	if message == "" {
		return nil, fmt.Errorf("message name must not be empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		messageURL: base.JoinPath(message).String(),
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// Start fetches the starting room. The jar holds no cookie yet, so the
// server treats the request as a brand-new session and answers with the
// entry room.
func (c *Client) Start(ctx context.Context) (*room.Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.messageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create start request: %w", err)
	}
	r, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return r, nil
}

// Move requests a transition to id. The server accepts the move only if id
// neighbors its notion of the current room; on success it returns the full
// record for id and refreshes the session cookie.
func (c *Client) Move(ctx context.Context, id room.ID) (*room.Room, error) {
	body, err := json.Marshal(moveRequest{XID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to encode move request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.messageURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create move request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	r, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("move to %s: %w", id, err)
	}
	return r, nil
}

// do executes a request and decodes the room in the response.
func (c *Client) do(req *http.Request) (*room.Room, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var r room.Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode room: %w", err)
	}
	if r.XID == "" {
		return nil, fmt.Errorf("room record has no identifier")
	}
	return &r, nil
}
