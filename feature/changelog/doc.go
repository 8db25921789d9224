// Package changelog maintains the dated, reverse-chronological follower
// changelog document.
//
// The document is treated as opaque text with one structured mutation:
// Merge, which renders a dated entry and splices it in before the first
// existing entry heading (or appends it when none exists). The document is
// write-once per date; a duplicate date is detected with a whole-document
// substring scan and skipped without touching the file.
//
// A best-effort normalization pass runs after every successful write. Its
// failure is logged but never rolls back the inserted entry.
package changelog
