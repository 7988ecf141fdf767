package expopush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIURL is the Expo push send endpoint.
const DefaultAPIURL = "https://exp.host/--/api/v2/push/send"

// Client is the HTTP client for the Expo push API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Expo push client. The timeout bounds the whole
// batch call: a hung push endpoint surfaces as an error instead of stalling
// the notifier run.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetAPIURL overrides the default Expo API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SendBatch submits all messages in a single request and returns one ticket
// per message, in order. A transport failure or non-200 status fails the
// whole batch; per-message rejections come back as error tickets instead.
func (c *Client) SendBatch(ctx context.Context, messages []Message) ([]Ticket, error) {
	if len(messages) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call expo push API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("expo push API error %d: %s", resp.StatusCode, string(raw))
	}

	var parsed sendBatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode expo push response: %w", err)
	}
	return parsed.Data, nil
}
