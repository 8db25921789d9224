// Package tracker is the reconciliation driver. One run saves today's
// follower snapshot, diffs it against yesterday's (when one exists), and
// merges a non-empty change set into the changelog document.
//
// A run is single-threaded and run-to-completion; the process is the unit
// of cancellation. Absence of yesterday's snapshot is a legitimate first-run
// state, not an error.
package tracker
