package cmd

import (
	"context"
	"fmt"
	"time"

	"follower-tracker/core/config"
	"follower-tracker/core/database"
	"follower-tracker/core/logger"
	"follower-tracker/core/storage"
	"follower-tracker/feature/changelog"
	"follower-tracker/feature/github"
	"follower-tracker/feature/history"
	"follower-tracker/feature/snapshot"
	"follower-tracker/feature/tracker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// trackCmd runs one reconciliation for the given account.
var trackCmd = &cobra.Command{
	Use:   "track <username>",
	Short: "Record today's followers and update the changelog",
	Long: `Fetch the current followers of a GitHub account, save them as today's
snapshot, diff against yesterday's snapshot, and merge any gains or losses
into the changelog.

Examples:
  # Track a user (unauthenticated, low API quota)
  follower-tracker track octocat

  # With a token
  GITHUB_TOKEN=... follower-tracker track octocat`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	RootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	username := args[0]
	if !github.ValidUsername(username) {
		return fmt.Errorf("invalid GitHub username format, must contain only alphanumeric characters and hyphens")
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	store, err := newSnapshotStore(cfg)
	if err != nil {
		return err
	}

	fetcher, err := github.NewFetcher(cfg.GitHub, l)
	if err != nil {
		return err
	}

	followers, err := fetcher.Followers(ctx, username)
	if err != nil {
		return err
	}

	// History is optional; the run proceeds without it.
	var hist *history.Service
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("optional history database connection failed", zap.Error(err))
	} else if hist, err = history.NewService(db); err != nil {
		l.Warn("failed to initialize run history", zap.Error(err))
		hist = nil
	}

	doc := changelog.New(cfg.Tracker.ChangelogPath, l)
	svc := tracker.NewService(store, doc, hist, l)

	outcome, err := svc.Reconcile(ctx, username, followers, time.Now())
	if err != nil {
		return err
	}

	l.Info("done", zap.String("outcome", string(outcome)))
	return nil
}

// newSnapshotStore builds the configured snapshot backend; the storage
// client is only dialed for the s3 backend.
func newSnapshotStore(cfg *config.Config) (snapshot.Store, error) {
	var client storage.Client
	if cfg.Snapshot.Backend == "s3" {
		var err error
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
	}
	return snapshot.NewStore(cfg.Snapshot, client, cfg.Storage.Bucket)
}
