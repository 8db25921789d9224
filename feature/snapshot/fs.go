package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FSStore keeps one file per day key under a local directory.
type FSStore struct {
	dir string
}

// NewFSStore creates a filesystem-backed snapshot store rooted at dir.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

func (s *FSStore) path(key DayKey) string {
	return filepath.Join(s.dir, key.String())
}

// Load reads the snapshot for the day. Lines are trimmed, blank lines are
// ignored, and duplicates collapse.
func (s *FSStore) Load(ctx context.Context, key DayKey) (Set, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return parseLines(string(data)), nil
}

// Exists reports whether a snapshot file exists for the day.
func (s *FSStore) Exists(ctx context.Context, key DayKey) (bool, error) {
	_, err := os.Stat(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat snapshot %s: %w", key, err)
	}
	return true, nil
}

// Save writes the followers one per line, creating the data directory if
// needed. An empty list writes an empty file.
func (s *FSStore) Save(ctx context.Context, key DayKey, followers []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(renderLines(followers)), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

// List returns the day keys of all snapshot files in ascending order.
// Files that do not look like day keys are ignored.
func (s *FSStore) List(ctx context.Context) ([]DayKey, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var keys []DayKey
	for _, e := range entries {
		if e.IsDir() || !IsDayKey(e.Name()) {
			continue
		}
		keys = append(keys, DayKey(e.Name()))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

func parseLines(content string) Set {
	set := Set{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	return set
}

func renderLines(followers []string) string {
	if len(followers) == 0 {
		return ""
	}
	return strings.Join(followers, "\n") + "\n"
}
