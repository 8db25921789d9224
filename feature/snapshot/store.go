package snapshot

import (
	"context"
	"fmt"

	"follower-tracker/core/storage"
)

// Set is an unordered collection of follower identifiers.
type Set map[string]struct{}

// NewSet builds a Set from a list of identifiers.
func NewSet(identifiers []string) Set {
	s := make(Set, len(identifiers))
	for _, id := range identifiers {
		s[id] = struct{}{}
	}
	return s
}

// Store persists and retrieves the follower set recorded for a given day.
type Store interface {
	// Load returns the recorded set for the day, or an empty set if no
	// record exists. Absence is not an error.
	Load(ctx context.Context, key DayKey) (Set, error)
	// Exists reports whether a record exists for the day. An empty record
	// still exists; Load alone cannot tell the two apart.
	Exists(ctx context.Context, key DayKey) (bool, error)
	// Save persists the followers for the day, overwriting any existing
	// record for that exact key. An empty list persists as an empty record.
	Save(ctx context.Context, key DayKey, followers []string) error
	// List returns the day keys of all stored snapshots in ascending order.
	List(ctx context.Context) ([]DayKey, error)
}

// Config selects and parameterizes the snapshot backend.
type Config struct {
	// Backend is the snapshot storage backend (fs, s3).
	Backend string `mapstructure:"backend" default:"fs"`
	// DataDir is the local directory for the fs backend.
	DataDir string `mapstructure:"data_dir" default:".followers_data"`
	// Prefix is the object key prefix for the s3 backend.
	Prefix string `mapstructure:"prefix" default:"snapshots"`
}

// NewStore builds the snapshot store selected by cfg. The storage client is
// only required for the s3 backend and may be nil otherwise.
func NewStore(cfg Config, client storage.Client, bucket string) (Store, error) {
	switch cfg.Backend {
	case "fs", "":
		return NewFSStore(cfg.DataDir), nil
	case "s3":
		if client == nil {
			return nil, fmt.Errorf("s3 backend requires a storage client")
		}
		return NewS3Store(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend: %s (use 'fs' or 's3')", cfg.Backend)
	}
}
