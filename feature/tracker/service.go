package tracker

import (
	"context"
	"fmt"
	"time"

	"follower-tracker/feature/changelog"
	"follower-tracker/feature/diff"
	"follower-tracker/feature/history"
	"follower-tracker/feature/snapshot"

	"go.uber.org/zap"
)

// Config holds tracker-level settings.
type Config struct {
	// ChangelogPath is the changelog document location.
	ChangelogPath string `mapstructure:"changelog_path" default:"CHANGELOG.md"`
}

// Service orchestrates one reconciliation run: persist today's snapshot,
// diff against yesterday's, and merge a changelog entry when something
// changed. It holds exclusive read-modify-write responsibility for the
// changelog during a run; concurrent runs against the same storage are out
// of contract.
type Service struct {
	store   snapshot.Store
	doc     *changelog.Document
	history *history.Service
	logger  *zap.Logger
}

// NewService creates the reconciliation driver. history may be nil, in
// which case runs are not recorded.
func NewService(store snapshot.Store, doc *changelog.Document, hist *history.Service, logger *zap.Logger) *Service {
	return &Service{store: store, doc: doc, history: hist, logger: logger}
}

// Reconcile records today's followers and merges any changes since
// yesterday into the changelog. Side effects are strictly additive: one
// snapshot write, at most one changelog mutation, and one history row.
func (s *Service) Reconcile(ctx context.Context, username string, followers []string, today time.Time) (Outcome, error) {
	key := snapshot.NewDayKey(today)

	// Today's snapshot is saved unconditionally, even when nothing changed.
	if err := s.store.Save(ctx, key, followers); err != nil {
		return "", fmt.Errorf("failed to save today's snapshot: %w", err)
	}
	s.logger.Info("snapshot saved",
		zap.String("day", key.String()), zap.Int("followers", len(followers)))

	outcome, changes, err := s.merge(ctx, followers, today)
	if err != nil {
		return "", err
	}

	s.record(ctx, username, key, today, len(followers), changes, outcome)
	return outcome, nil
}

func (s *Service) merge(ctx context.Context, followers []string, today time.Time) (Outcome, diff.Changes, error) {
	prevKey := snapshot.NewDayKey(today.AddDate(0, 0, -1))

	exists, err := s.store.Exists(ctx, prevKey)
	if err != nil {
		return "", diff.Changes{}, fmt.Errorf("failed to check previous snapshot: %w", err)
	}
	if !exists {
		// First run or first day of tracking; nothing to diff against.
		s.logger.Info("no previous snapshot found, first run",
			zap.String("day", prevKey.String()))
		return OutcomeFirstRun, diff.Changes{}, nil
	}

	previous, err := s.store.Load(ctx, prevKey)
	if err != nil {
		return "", diff.Changes{}, fmt.Errorf("failed to load previous snapshot: %w", err)
	}

	changes := diff.Compare(snapshot.NewSet(followers), previous)
	if !changes.HasChanges() {
		s.logger.Info("no changes in followers")
		return OutcomeNoChanges, changes, nil
	}

	s.logger.Info("changes detected", zap.String("changes", changes.String()))

	result, err := s.doc.Merge(changes, today)
	if err != nil {
		return "", changes, fmt.Errorf("failed to update changelog: %w", err)
	}
	return fromResult(result), changes, nil
}

// record appends the run to history. Recording is best effort; a failure is
// logged and never fails the reconciliation.
func (s *Service) record(ctx context.Context, username string, key snapshot.DayKey, today time.Time, count int, changes diff.Changes, outcome Outcome) {
	if s.history == nil {
		return
	}
	err := s.history.Record(ctx, history.Run{
		Username:  username,
		DayKey:    key.String(),
		Date:      today.Format("2006-01-02"),
		Followers: count,
		Gained:    len(changes.Gained),
		Removed:   len(changes.Removed),
		Outcome:   string(outcome),
	})
	if err != nil {
		s.logger.Warn("failed to record run history", zap.Error(err))
	}
}
