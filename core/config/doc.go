// Package config provides configuration management for the follower tracker.
//
// Settings load from environment variables (optionally via a .env file),
// with defaults declared as struct tags on each section's Config type.
// Nested keys map to underscore-joined variables, e.g. GITHUB_TOKEN maps
// to github.token and SNAPSHOT_BACKEND to snapshot.backend.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Tracker.ChangelogPath)
package config
