package github

import (
	"context"
	"sort"
)

// MockFetcher implements Fetcher with fixed data, for offline runs and
// wiring tests.
type MockFetcher struct {
	Logins []string
}

// NewMockFetcher returns a fetcher with a small deterministic follower set.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Logins: []string{"alice123", "bob-developer", "charlie-coder"},
	}
}

func (m *MockFetcher) Followers(ctx context.Context, username string) ([]string, error) {
	out := make([]string, len(m.Logins))
	copy(out, m.Logins)
	sort.Strings(out)
	return out, nil
}
