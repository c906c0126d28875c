// Package speller implements the external spelling-check collaborator using
// the Yandex Speller HTTP API. The service accepts a form-encoded text field
// and replies with a JSON array of error entries; an empty array means the
// text is clean.
package speller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spellnotes/notes-api/internal/api/metrics"
	"github.com/spellnotes/notes-api/internal/core/domain"
)

const (
	defaultURL     = "https://speller.yandex.net/services/spellservice.json/checkText"
	defaultTimeout = 5 * time.Second

	// maxResponseBytes caps how much of the reply is read. The service returns
	// small arrays; anything larger is malformed.
	maxResponseBytes = 1 << 20
)

// Config captures the settings for the speller client.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client calls the spelling service over HTTP with a bounded timeout. Any
// transport or decode failure is returned as an error so callers can fail
// closed.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a speller client. Zero-value config fields fall back to
// the public Yandex Speller endpoint and a 5s timeout.
func NewClient(cfg Config) *Client {
	u := cfg.URL
	if u == "" {
		u = defaultURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        u,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// spellerEntry mirrors the wire format of one reported error.
type spellerEntry struct {
	Word        string   `json:"word"`
	Pos         int      `json:"pos"`
	Suggestions []string `json:"s"`
}

// Check submits text for spelling verification and returns the reported
// error entries. An empty slice means the text passed.
func (c *Client) Check(ctx context.Context, text string) ([]domain.SpellingError, error) {
	form := url.Values{"text": {text}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("speller request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.SpellerRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SpellerRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("speller call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.SpellerRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("speller status %d", resp.StatusCode)
	}

	var entries []spellerEntry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&entries); err != nil {
		metrics.SpellerRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("speller decode: %w", err)
	}

	metrics.SpellerRequestsTotal.WithLabelValues("ok").Inc()
	result := make([]domain.SpellingError, 0, len(entries))
	for _, e := range entries {
		result = append(result, domain.SpellingError{
			Word:        e.Word,
			Position:    e.Pos,
			Suggestions: e.Suggestions,
		})
	}
	return result, nil
}
