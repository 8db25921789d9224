package github

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// APIClient fetches followers from the GitHub REST API.
type APIClient struct {
	client  *resty.Client
	limiter *rate.Limiter
	perPage int
	logger  *zap.Logger
}

type user struct {
	Login string `json:"login"`
}

// NewAPIClient creates a GitHub API fetcher. A token is optional; without
// one requests run against the unauthenticated quota.
func NewAPIClient(cfg Config, logger *zap.Logger) *APIClient {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeader("Accept", "application/vnd.github+json")
	client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	} else {
		logger.Warn("no GitHub token configured, API requests may fail due to quota")
	}

	perPage := cfg.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}

	// Stay well under the API rate limit (~80 reqs/min authenticated burst)
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)

	return &APIClient{client: client, limiter: limiter, perPage: perPage, logger: logger}
}

// Followers pages through /users/{username}/followers and returns all
// follower logins, deduplicated and sorted ascending.
func (c *APIClient) Followers(ctx context.Context, username string) ([]string, error) {
	c.logger.Info("fetching followers", zap.String("username", username))

	seen := map[string]struct{}{}
	for page := 1; ; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var users []user
		resp, err := c.client.R().
			SetContext(ctx).
			SetPathParam("username", username).
			SetQueryParam("per_page", strconv.Itoa(c.perPage)).
			SetQueryParam("page", strconv.Itoa(page)).
			SetResult(&users).
			Get("/users/{username}/followers")
		if err != nil {
			return nil, fmt.Errorf("github api request failed: %w", err)
		}

		if resp.IsError() {
			return nil, statusError(resp.StatusCode(), username)
		}

		c.logger.Debug("fetched follower page",
			zap.Int("page", page), zap.Int("count", len(users)))

		for _, u := range users {
			if u.Login != "" {
				seen[u.Login] = struct{}{}
			}
		}
		if len(users) < c.perPage {
			break
		}
	}

	followers := make([]string, 0, len(seen))
	for login := range seen {
		followers = append(followers, login)
	}
	sort.Strings(followers)

	c.logger.Info("found followers", zap.Int("count", len(followers)))
	return followers, nil
}

func statusError(code int, username string) error {
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("user %q not found", username)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("github api requires authentication, please set GH_TOKEN or GITHUB_TOKEN")
	default:
		return fmt.Errorf("github api error: status %d", code)
	}
}
