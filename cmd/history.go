package cmd

import (
	"context"
	"fmt"
	"os"

	"follower-tracker/core/config"
	"follower-tracker/core/database"
	"follower-tracker/feature/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recent reconciliation runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tracking runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 30, "Maximum number of runs to show")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to history database: %w", err)
	}

	svc, err := history.NewService(db)
	if err != nil {
		return err
	}

	runs, err := svc.Recent(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	history.RenderTable(os.Stdout, runs)
	return nil
}
