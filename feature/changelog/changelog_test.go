package changelog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"follower-tracker/feature/changelog"
	"follower-tracker/feature/diff"
	"follower-tracker/feature/snapshot"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testDate = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func testChanges(gained, removed []string) diff.Changes {
	return diff.Compare(
		snapshot.NewSet(gained),
		snapshot.NewSet(removed),
	)
}

func TestRenderEntry(t *testing.T) {
	t.Run("BothSections", func(t *testing.T) {
		entry := changelog.RenderEntry(testChanges([]string{"david"}, []string{"charlie"}), testDate)
		assert.Equal(t,
			"### 2026-08-31\n"+
				"#### New Followers\n"+
				"- @david\n"+
				"#### Removed Followers\n"+
				"- @charlie\n",
			entry)
	})

	t.Run("GainedOnly", func(t *testing.T) {
		entry := changelog.RenderEntry(testChanges([]string{"erin"}, nil), testDate)
		assert.Equal(t, "### 2026-08-31\n#### New Followers\n- @erin\n", entry)
		assert.NotContains(t, entry, "Removed")
	})

	t.Run("RemovedOnly", func(t *testing.T) {
		entry := changelog.RenderEntry(testChanges(nil, []string{"mallory"}), testDate)
		assert.Equal(t, "### 2026-08-31\n#### Removed Followers\n- @mallory\n", entry)
		assert.NotContains(t, entry, "New Followers")
	})

	t.Run("BulletsSortedAscending", func(t *testing.T) {
		entry := changelog.RenderEntry(testChanges([]string{"zoe", "Adam", "bob"}, nil), testDate)
		// case-sensitive lexicographic order: uppercase sorts first
		assert.Equal(t, "### 2026-08-31\n#### New Followers\n- @Adam\n- @bob\n- @zoe\n", entry)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		gained := []string{"Adam", "erin", "zoe"}
		removed := []string{"charlie", "mallory"}
		entry := changelog.RenderEntry(testChanges(gained, removed), testDate)

		parsedGained, parsedRemoved := parseEntry(t, entry)
		assert.Equal(t, gained, parsedGained)
		assert.Equal(t, removed, parsedRemoved)
	})
}

// parseEntry extracts the bullet lists back out of a rendered entry.
func parseEntry(t *testing.T, entry string) (gained, removed []string) {
	t.Helper()
	section := ""
	for _, line := range strings.Split(entry, "\n") {
		switch {
		case strings.HasPrefix(line, "#### New Followers"):
			section = "gained"
		case strings.HasPrefix(line, "#### Removed Followers"):
			section = "removed"
		case strings.HasPrefix(line, "- @"):
			name := strings.TrimPrefix(line, "- @")
			if section == "gained" {
				gained = append(gained, name)
			} else {
				removed = append(removed, name)
			}
		}
	}
	return gained, removed
}

func TestDocumentMerge(t *testing.T) {
	newDoc := func(t *testing.T) *changelog.Document {
		return changelog.New(filepath.Join(t.TempDir(), "CHANGELOG.md"), zap.NewNop())
	}

	read := func(t *testing.T, doc *changelog.Document) string {
		t.Helper()
		data, err := os.ReadFile(doc.Path())
		assert.NoError(t, err)
		return string(data)
	}

	t.Run("CreatesDocumentWithPreamble", func(t *testing.T) {
		doc := newDoc(t)

		result, err := doc.Merge(testChanges([]string{"david"}, []string{"charlie"}), testDate)
		assert.NoError(t, err)
		assert.Equal(t, changelog.ResultCreated, result)

		assert.Equal(t,
			"# Follower Changelog\n"+
				"\n"+
				"This file tracks changes in GitHub followers over time.\n"+
				"\n"+
				"### 2026-08-31\n"+
				"\n"+
				"#### New Followers\n"+
				"- @david\n"+
				"\n"+
				"#### Removed Followers\n"+
				"- @charlie\n",
			read(t, doc))
	})

	t.Run("InsertsNewestFirst", func(t *testing.T) {
		doc := newDoc(t)

		_, err := doc.Merge(testChanges([]string{"david"}, []string{"charlie"}), testDate)
		assert.NoError(t, err)

		nextDay := testDate.AddDate(0, 0, 1)
		result, err := doc.Merge(testChanges([]string{"erin"}, nil), nextDay)
		assert.NoError(t, err)
		assert.Equal(t, changelog.ResultInserted, result)

		content := read(t, doc)
		first := strings.Index(content, "### 2026-09-01")
		second := strings.Index(content, "### 2026-08-31")
		assert.True(t, first >= 0 && second >= 0)
		assert.Less(t, first, second, "newer entry must come first")

		// earlier entry survives verbatim (modulo normalization spacing)
		assert.Contains(t, content, "- @david")
		assert.Contains(t, content, "- @charlie")
		assert.True(t, strings.HasPrefix(content, "# Follower Changelog\n"))
	})

	t.Run("DuplicateDateSkipsUnchanged", func(t *testing.T) {
		doc := newDoc(t)

		_, err := doc.Merge(testChanges([]string{"david"}, nil), testDate)
		assert.NoError(t, err)
		before := read(t, doc)

		result, err := doc.Merge(testChanges([]string{"someone-else"}, nil), testDate)
		assert.NoError(t, err)
		assert.Equal(t, changelog.ResultSkipped, result)
		assert.Equal(t, before, read(t, doc), "skip must leave the document byte-identical")
	})

	t.Run("DateInProseAlsoSkips", func(t *testing.T) {
		// the duplicate check is a whole-document substring scan, so a date
		// appearing in prose blocks insertion too
		doc := newDoc(t)
		err := os.WriteFile(doc.Path(),
			[]byte("# Follower Changelog\n\nStarted tracking on 2026-08-31.\n"), 0o644)
		assert.NoError(t, err)
		before := read(t, doc)

		result, err := doc.Merge(testChanges([]string{"erin"}, nil), testDate)
		assert.NoError(t, err)
		assert.Equal(t, changelog.ResultSkipped, result)
		assert.Equal(t, before, read(t, doc))
	})

	t.Run("PreambleOnlyDocumentAppends", func(t *testing.T) {
		doc := newDoc(t)
		err := os.WriteFile(doc.Path(),
			[]byte("# Follower Changelog\n\nThis file tracks changes in GitHub followers over time.\n\n"), 0o644)
		assert.NoError(t, err)

		result, err := doc.Merge(testChanges([]string{"erin"}, nil), testDate)
		assert.NoError(t, err)
		assert.Equal(t, changelog.ResultInserted, result)

		content := read(t, doc)
		assert.True(t, strings.HasPrefix(content, "# Follower Changelog\n"))
		assert.Contains(t, content, "### 2026-08-31\n\n#### New Followers\n- @erin\n")
	})

	t.Run("PreservesTextAfterInsertionPoint", func(t *testing.T) {
		doc := newDoc(t)
		existing := "# Follower Changelog\n" +
			"\n" +
			"This file tracks changes in GitHub followers over time.\n" +
			"\n" +
			"### 2026-08-30\n" +
			"\n" +
			"#### New Followers\n" +
			"- @old-follower\n"
		assert.NoError(t, os.WriteFile(doc.Path(), []byte(existing), 0o644))

		_, err := doc.Merge(testChanges([]string{"erin"}, nil), testDate)
		assert.NoError(t, err)

		content := read(t, doc)
		// everything from the old heading onward is untouched
		assert.True(t, strings.HasSuffix(content,
			"### 2026-08-30\n\n#### New Followers\n- @old-follower\n"))
	})
}
