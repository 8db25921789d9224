package github

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

// Fetcher lists the current followers of an account. Implementations return
// a deduplicated, lexicographically sorted list.
type Fetcher interface {
	Followers(ctx context.Context, username string) ([]string, error)
}

// usernamePattern accepts alphanumerics and hyphens only.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ValidUsername reports whether s is a well-formed GitHub username.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// NewFetcher selects the fetcher implementation based on cfg.Mode.
func NewFetcher(cfg Config, logger *zap.Logger) (Fetcher, error) {
	switch cfg.Mode {
	case "api", "":
		return NewAPIClient(cfg, logger), nil
	case "mock":
		return NewMockFetcher(), nil
	default:
		return nil, fmt.Errorf("unknown github mode: %s (use 'api' or 'mock')", cfg.Mode)
	}
}
