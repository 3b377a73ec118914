package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"genie-scoreboard-service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Config controls how the client reaches the remote document store.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches rubric documents over HTTP and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a remote content client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchRubrics retrieves the ordered rubric collection.
func (c *Client) FetchRubrics(ctx context.Context) ([]domain.Rubric, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rubrics", nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("content: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload rubricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return mapRubrics(payload.Data), nil
}

func normalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
