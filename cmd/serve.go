package cmd

import (
	"fmt"
	"os"
	"sort"

	"follower-tracker/core/config"
	"follower-tracker/core/logger"
	"follower-tracker/core/middleware/requestid"
	"follower-tracker/feature/snapshot"
	"follower-tracker/feature/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd exposes the recorded data over read-only HTTP endpoints.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the changelog and snapshot data over HTTP",
	Long: `Starts a read-only HTTP server exposing:
  GET /changelog         the raw changelog document
  GET /followers/latest  the most recent snapshot as JSON
  GET /stats             per-day follower counts as JSON`,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestid.New())

	app.Get("/changelog", func(c *fiber.Ctx) error {
		data, err := os.ReadFile(cfg.Tracker.ChangelogPath)
		if err != nil {
			if os.IsNotExist(err) {
				return fiber.NewError(fiber.StatusNotFound, "no changelog yet")
			}
			requestid.WithRequestID(l, c).Error("failed to read changelog", zap.Error(err))
			return fiber.ErrInternalServerError
		}
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.Send(data)
	})

	app.Get("/followers/latest", func(c *fiber.Ctx) error {
		keys, err := store.List(c.Context())
		if err != nil {
			requestid.WithRequestID(l, c).Error("failed to list snapshots", zap.Error(err))
			return fiber.ErrInternalServerError
		}
		if len(keys) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "no snapshots yet")
		}
		latest := keys[len(keys)-1]
		set, err := store.Load(c.Context(), latest)
		if err != nil {
			requestid.WithRequestID(l, c).Error("failed to load snapshot", zap.Error(err))
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{
			"day":       latest.String(),
			"count":     len(set),
			"followers": sortedLogins(set),
		})
	})

	app.Get("/stats", func(c *fiber.Ctx) error {
		points, err := stats.Timeline(c.Context(), store)
		if err != nil {
			requestid.WithRequestID(l, c).Error("failed to build timeline", zap.Error(err))
			return fiber.ErrInternalServerError
		}
		return c.JSON(points)
	})

	l.Info("serving", zap.String("port", cfg.Server.Port))
	return app.Listen(":" + cfg.Server.Port)
}

func sortedLogins(set snapshot.Set) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
