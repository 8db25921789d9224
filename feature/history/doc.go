// Package history keeps an append-only record of reconciliation runs in a
// small database, complementing the per-day snapshots with outcome metadata
// (counts, gained/removed, created/inserted/skipped).
package history
