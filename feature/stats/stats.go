package stats

import (
	"context"
	"fmt"

	"follower-tracker/feature/snapshot"
)

// Point is the follower count recorded for one day.
type Point struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Timeline loads every stored snapshot and returns the per-day follower
// counts in ascending day order.
func Timeline(ctx context.Context, store snapshot.Store) ([]Point, error) {
	keys, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(keys))
	for _, key := range keys {
		set, err := store.Load(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
		}
		points = append(points, Point{Day: key.String(), Count: len(set)})
	}
	return points, nil
}
