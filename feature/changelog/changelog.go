package changelog

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"follower-tracker/feature/diff"

	"go.uber.org/zap"
)

const (
	// dateLayout is the human-readable entry date, distinct from the day
	// key used to name snapshots.
	dateLayout = "2006-01-02"

	preamble = "# Follower Changelog\n\nThis file tracks changes in GitHub followers over time.\n\n"

	gainedTitle  = "New Followers"
	removedTitle = "Removed Followers"
)

// headingPattern matches the start of an existing entry heading. New entries
// are spliced in immediately before the first match, which keeps the
// document newest-first as long as runs happen in date order.
var headingPattern = regexp.MustCompile(`(?m)^### `)

// Result is the terminal state of one merge attempt.
type Result string

const (
	// ResultCreated means no document existed and one was written.
	ResultCreated Result = "created"
	// ResultInserted means the entry was spliced into the existing document.
	ResultInserted Result = "inserted"
	// ResultSkipped means the entry date was already present and the
	// document was left untouched.
	ResultSkipped Result = "skipped"
)

// Document is the persistent follower changelog. It owns a single file and
// supports exactly one structured mutation: merging a dated entry.
type Document struct {
	path   string
	logger *zap.Logger
}

// New creates a Document backed by the file at path.
func New(path string, logger *zap.Logger) *Document {
	return &Document{path: path, logger: logger}
}

// Path returns the document's file path.
func (d *Document) Path() string {
	return d.path
}

// RenderEntry produces the text block for one dated entry. The gained
// section comes before the removed section, either may be absent, and
// identifiers are listed sorted ascending as "- @name" bullets.
func RenderEntry(changes diff.Changes, date time.Time) string {
	lines := []string{"### " + date.Format(dateLayout)}

	for _, section := range []struct {
		title string
		ids   []string
	}{
		{gainedTitle, changes.GainedList()},
		{removedTitle, changes.RemovedList()},
	} {
		if len(section.ids) == 0 {
			continue
		}
		lines = append(lines, "#### "+section.title)
		for _, id := range section.ids {
			lines = append(lines, "- @"+id)
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// Merge renders an entry for the given changes and splices it into the
// document. A missing document is created with the preamble. If the
// formatted date already appears anywhere in the document the merge is
// skipped and the document is left byte-for-byte unchanged.
//
// The duplicate check is deliberately a substring scan over the whole
// document, not just heading lines; the rare false positive (a date in
// prose) is accepted in exchange for never re-recording a day.
func (d *Document) Merge(changes diff.Changes, date time.Time) (Result, error) {
	dateStr := date.Format(dateLayout)
	entry := RenderEntry(changes, date)

	raw, err := os.ReadFile(d.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read changelog: %w", err)
		}
		if err := d.write(preamble + entry); err != nil {
			return "", err
		}
		d.formatFile()
		d.logger.Info("changelog created", zap.String("path", d.path), zap.String("date", dateStr))
		return ResultCreated, nil
	}

	content := string(raw)

	if strings.Contains(content, dateStr) {
		d.logger.Warn("date already in changelog, skipping",
			zap.String("path", d.path), zap.String("date", dateStr))
		return ResultSkipped, nil
	}

	// Insert before the first existing entry heading, or append to the end
	// when the document holds only the preamble.
	insertPos := len(content)
	if loc := headingPattern.FindStringIndex(content); loc != nil {
		insertPos = loc[0]
	}

	if err := d.write(content[:insertPos] + entry + content[insertPos:]); err != nil {
		return "", err
	}
	d.formatFile()
	d.logger.Info("changelog updated", zap.String("path", d.path), zap.String("date", dateStr))
	return ResultInserted, nil
}

func (d *Document) write(content string) error {
	if err := os.WriteFile(d.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	return nil
}

// formatFile applies the normalization pass to the whole document. It is
// best effort: the just-written entry stands even if this step fails, so
// errors are reported and swallowed.
func (d *Document) formatFile() {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		d.logger.Warn("changelog formatting pass failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(d.path, []byte(Normalize(string(raw))), 0o644); err != nil {
		d.logger.Warn("changelog formatting pass failed", zap.Error(err))
	}
}
