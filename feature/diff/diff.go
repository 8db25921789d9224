package diff

import (
	"fmt"
	"sort"

	"follower-tracker/feature/snapshot"
)

// Changes holds the follower movement between two daily snapshots.
// Gained and Removed are disjoint because both come from set differences
// over the same pair.
type Changes struct {
	Gained  snapshot.Set
	Removed snapshot.Set
}

// Compare returns the changes from previous to current:
// Gained = current − previous, Removed = previous − current.
func Compare(current, previous snapshot.Set) Changes {
	changes := Changes{
		Gained:  snapshot.Set{},
		Removed: snapshot.Set{},
	}
	for id := range current {
		if _, ok := previous[id]; !ok {
			changes.Gained[id] = struct{}{}
		}
	}
	for id := range previous {
		if _, ok := current[id]; !ok {
			changes.Removed[id] = struct{}{}
		}
	}
	return changes
}

// HasChanges reports whether either side of the diff is non-empty.
func (c Changes) HasChanges() bool {
	return len(c.Gained) > 0 || len(c.Removed) > 0
}

// GainedList returns the gained identifiers sorted ascending.
func (c Changes) GainedList() []string {
	return sorted(c.Gained)
}

// RemovedList returns the removed identifiers sorted ascending.
func (c Changes) RemovedList() []string {
	return sorted(c.Removed)
}

func (c Changes) String() string {
	return fmt.Sprintf("+%d new, -%d removed", len(c.Gained), len(c.Removed))
}

func sorted(set snapshot.Set) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
