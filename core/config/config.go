package config

import (
	"reflect"
	"strings"

	"follower-tracker/core/database"
	"follower-tracker/core/logger"
	"follower-tracker/core/server"
	"follower-tracker/core/storage"
	"follower-tracker/feature/github"
	"follower-tracker/feature/snapshot"
	"follower-tracker/feature/tracker"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Tracker holds reconciliation settings (changelog location).
	Tracker tracker.Config `mapstructure:"tracker"`
	// Snapshot selects and parameterizes the snapshot backend.
	Snapshot snapshot.Config `mapstructure:"snapshot"`
	// GitHub holds configuration for the GitHub API client.
	GitHub github.Config `mapstructure:"github"`
	// Storage holds configuration for the object storage (s3 backend).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the run-history database.
	Database database.Config `mapstructure:"database"`
	// Server holds configuration for the read-only HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. GITHUB_TOKEN -> github.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// GH_TOKEN is the conventional alias used by gh(1); honor it too.
	if config.GitHub.Token == "" {
		config.GitHub.Token = v.GetString("gh.token")
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
