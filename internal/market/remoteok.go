// Package market fetches job posting excerpts used as evidence for the
// market overview.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/markup"
)

const (
	// DefaultURL is the RemoteOK public API.
	DefaultURL = "https://remoteok.com/api"

	// maxDescriptionBytes bounds the HTML read from each posting.
	maxDescriptionBytes = 1500

	maxBodyBytes = 16 << 20
)

// Fetcher returns short text excerpts of postings for a role.
type Fetcher interface {
	Snippets(ctx context.Context, jobTitle string, limit int) ([]string, error)
}

// RemoteOK reads postings from the RemoteOK JSON feed.
type RemoteOK struct {
	url       string
	http      *http.Client
	userAgent string
}

// NewRemoteOK creates a fetcher for the feed at url (DefaultURL if empty).
func NewRemoteOK(url string, timeout time.Duration) *RemoteOK {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &RemoteOK{
		url:       url,
		http:      &http.Client{Timeout: timeout},
		userAgent: "pathwise/1.0 (+career planner)",
	}
}

// posting holds the fields read from each feed item. The feed's first
// element is a legal notice without these fields.
type posting struct {
	Position    string `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Snippets returns up to limit plain-text excerpts from postings whose
// title contains jobTitle, compared case-insensitively.
func (r *RemoteOK) Snippets(ctx context.Context, jobTitle string, limit int) ([]string, error) {
	want := strings.ToLower(strings.TrimSpace(jobTitle))
	if want == "" || limit <= 0 {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching postings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching postings: status %d", resp.StatusCode)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding postings: %w", err)
	}

	var snippets []string
	for _, raw := range items {
		var p posting
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		title := p.Position
		if title == "" {
			title = p.Title
		}
		if !strings.Contains(strings.ToLower(title), want) {
			continue
		}
		text := markup.PlainText(markup.Truncate(p.Description, maxDescriptionBytes))
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			continue
		}
		snippets = append(snippets, text)
		if len(snippets) >= limit {
			break
		}
	}
	return snippets, nil
}
