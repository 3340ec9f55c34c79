package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"resume-builder/pkg/ai/formatters"
)

// Client calls the internal ai-service chat endpoint.
type Client struct {
	BaseURL     string
	HTTP        *http.Client
	Attempts    int
	BaseBackoff time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://ai-service:8000"
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		HTTP:        &http.Client{Timeout: timeout},
		Attempts:    3,
		BaseBackoff: time.Second,
	}
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// Generate sends the section prompt to /v1/chat and returns the raw output.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	f, ok := formatters.For(req.Section)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSection, req.Section)
	}
	body, err := json.Marshal(chatRequest{Agent: "auto", Input: f.Prompt(req.Context, req.Language)})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrProvider, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: ai-service returned status %d", ErrProvider, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(rb, &chat); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}
	out := unwrapOutput(chat.Output)
	if out == "" {
		return "", ErrEmptyOutput
	}
	return out, nil
}

// unwrapOutput accepts either plain text or a JSON object with a "text" (or
// "content") field, which some agents return.
func unwrapOutput(s string) string {
	s = strings.TrimSpace(s)
	start, end := strings.Index(s, "{"), strings.LastIndex(s, "}")
	if start != 0 || end != len(s)-1 {
		return s
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return s
	}
	for _, k := range []string{"text", "content", "output"} {
		if v, ok := obj[k].(string); ok {
			return strings.TrimSpace(v)
		}
	}
	return s
}

// doPostWithRetry retries transport errors and 5xx responses with
// exponential backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode >= http.StatusInternalServerError:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("ai-service returned status %d", resp.StatusCode)
		default:
			return resp, nil
		}
		slog.Warn("ai-service request failed", "attempt", i+1, "path", path, "error", lastErr)

		if i < attempts-1 {
			backoff := time.Duration(1<<i) * c.BaseBackoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
