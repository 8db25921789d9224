package cmd

import (
	"context"
	"fmt"
	"os"

	"follower-tracker/core/config"
	"follower-tracker/feature/stats"

	"github.com/spf13/cobra"
)

var chartOut string

// chartCmd renders the follower count timeline to an HTML file.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a follower count chart from stored snapshots",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartOut, "out", "followers.html", "Output HTML file")
	RootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := newSnapshotStore(cfg)
	if err != nil {
		return err
	}

	points, err := stats.Timeline(ctx, store)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no snapshots recorded yet")
	}

	f, err := os.Create(chartOut)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := stats.RenderChart(f, points); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Printf("Chart written to %s (%d days)\n", chartOut, len(points))
	return nil
}
