// Package snapshot persists the follower set recorded for each calendar day.
//
// A snapshot is named by its DayKey (year plus day-of-year, e.g. 2026-244)
// and stored as newline-separated identifiers, one resource per day. Two
// backends implement the Store interface: a local filesystem directory (the
// default) and an S3/MinIO bucket for runs that need shared state, such as
// scheduled CI jobs.
//
// Snapshots are written once per day and never deleted by the tracker; they
// form the audit trail the changelog is derived from.
package snapshot
