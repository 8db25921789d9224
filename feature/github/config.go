package github

// Config holds configuration for the GitHub API client.
type Config struct {
	// Mode selects the fetcher implementation (api, mock).
	Mode string `mapstructure:"mode" default:"api"`
	// BaseURL is the GitHub REST API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api.github.com"`
	// Token is the API token. Unauthenticated requests work but are
	// subject to a much lower quota.
	Token string `mapstructure:"token" default:""`
	// UserAgent is sent with every request; GitHub requires one.
	UserAgent string `mapstructure:"user_agent" default:"follower-tracker"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PerPage is the page size for follower listing (max 100).
	PerPage int `mapstructure:"per_page" default:"100"`
}
