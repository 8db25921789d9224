package diff_test

import (
	"testing"

	"follower-tracker/feature/diff"
	"follower-tracker/feature/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Run("GainedAndRemoved", func(t *testing.T) {
		previous := snapshot.NewSet([]string{"alice", "bob", "charlie"})
		current := snapshot.NewSet([]string{"alice", "bob", "david"})

		changes := diff.Compare(current, previous)
		assert.Equal(t, []string{"david"}, changes.GainedList())
		assert.Equal(t, []string{"charlie"}, changes.RemovedList())
		assert.True(t, changes.HasChanges())
	})

	t.Run("IdenticalSetsAreEmpty", func(t *testing.T) {
		set := snapshot.NewSet([]string{"alice", "bob"})

		changes := diff.Compare(set, set)
		assert.False(t, changes.HasChanges())
		assert.Empty(t, changes.Gained)
		assert.Empty(t, changes.Removed)
	})

	t.Run("BothEmpty", func(t *testing.T) {
		changes := diff.Compare(snapshot.Set{}, snapshot.Set{})
		assert.False(t, changes.HasChanges())
	})

	t.Run("Symmetry", func(t *testing.T) {
		a := snapshot.NewSet([]string{"alice", "bob", "eve"})
		b := snapshot.NewSet([]string{"bob", "charlie"})

		ab := diff.Compare(a, b)
		ba := diff.Compare(b, a)
		assert.Equal(t, ab.Gained, ba.Removed)
		assert.Equal(t, ab.Removed, ba.Gained)
	})

	t.Run("GainedAndRemovedDisjoint", func(t *testing.T) {
		a := snapshot.NewSet([]string{"a", "b", "c", "d"})
		b := snapshot.NewSet([]string{"c", "d", "e", "f"})

		changes := diff.Compare(a, b)
		for id := range changes.Gained {
			_, ok := changes.Removed[id]
			assert.False(t, ok, "identifier %q in both sides", id)
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		changes := diff.Compare(snapshot.NewSet([]string{"Alice"}), snapshot.NewSet([]string{"alice"}))
		assert.Equal(t, []string{"Alice"}, changes.GainedList())
		assert.Equal(t, []string{"alice"}, changes.RemovedList())
	})

	t.Run("String", func(t *testing.T) {
		changes := diff.Compare(snapshot.NewSet([]string{"a", "b"}), snapshot.NewSet([]string{"c"}))
		assert.Equal(t, "+2 new, -1 removed", changes.String())
	})
}
