// Package github lists a user's public repositories.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
)

// ErrInvalidUsername is returned when no username can be derived from input.
var ErrInvalidUsername = errors.New("invalid GitHub username")

// DefaultMaxRepos caps how many repositories are listed for one user.
const DefaultMaxRepos = 300

// CleanUsername normalizes a username or profile URL. For input containing
// "github.com", the last path segment is taken.
func CleanUsername(input string) string {
	s := strings.TrimSpace(input)
	if strings.Contains(s, "github.com") {
		s = strings.TrimRight(s, "/")
		if i := strings.LastIndex(s, "/"); i >= 0 {
			s = s[i+1:]
		}
	}
	return strings.TrimPrefix(s, "@")
}

// Client wraps the GitHub REST API.
type Client struct {
	gh       *gh.Client
	maxRepos int
	logger   zerolog.Logger
}

// Options configures a Client.
type Options struct {
	Token      string // optional; raises the rate limit
	BaseURL    string // optional; API root for GitHub Enterprise or tests
	HTTPClient *http.Client
	MaxRepos   int
}

// NewClient creates a GitHub client.
func NewClient(opts Options, logger zerolog.Logger) (*Client, error) {
	client := gh.NewClient(opts.HTTPClient)
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing github base url: %w", err)
		}
		client.BaseURL = u
	}
	maxRepos := opts.MaxRepos
	if maxRepos <= 0 {
		maxRepos = DefaultMaxRepos
	}
	return &Client{
		gh:       client,
		maxRepos: maxRepos,
		logger:   logger.With().Str("component", "github").Logger(),
	}, nil
}

// ListRepoNames returns the names of a user's public repositories,
// following pagination up to the configured cap.
func (c *Client) ListRepoNames(ctx context.Context, username string) ([]string, error) {
	user := CleanUsername(username)
	if user == "" || strings.ContainsAny(user, " /") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	var names []string
	for {
		repos, resp, err := c.gh.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("listing repositories for %s: %w", user, err)
		}
		for _, r := range repos {
			if name := r.GetName(); name != "" {
				names = append(names, name)
			}
			if len(names) >= c.maxRepos {
				c.logger.Debug().Str("user", user).Int("cap", c.maxRepos).Msg("repository list truncated")
				return names, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	c.logger.Debug().Str("user", user).Int("repos", len(names)).Msg("listed repositories")
	return names, nil
}
