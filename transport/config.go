package transport

import (
	"os"
	"strings"
	"time"

	apiErrors "github.com/blackroad/blackroad-go/errors"
)

// Environment variables consulted when the corresponding Config field is
// left empty.
const (
	EnvAPIKey  = "BLACKROAD_API_KEY"
	EnvBaseURL = "BLACKROAD_API_URL"
)

// Defaults applied by ResolveConfig for fields that are neither set
// explicitly nor present in the environment.
const (
	DefaultBaseURL    = "https://api.blackroad.io/v1"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Config carries the resolved settings for a client instance. A zero
// Config is not usable directly; pass it through ResolveConfig first.
type Config struct {
	// APIKey authenticates every request as a bearer token.
	APIKey string

	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout bounds each individual HTTP attempt.
	Timeout time.Duration

	// MaxRetries is the total number of send attempts, not the number
	// of retries after the first.
	MaxRetries int
}

// ResolveConfig fills in the missing fields of cfg from the environment
// and the package defaults. Explicit values win over the environment,
// which wins over the defaults.
//
// A missing API key is the one unrecoverable case: no request can ever
// succeed without it, so resolution fails up front with an
// authentication error rather than letting the first call hit the wire.
func ResolveConfig(cfg Config) (Config, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if cfg.APIKey == "" {
		return Config{}, apiErrors.NewAuthenticationError(
			"API key required. Set BLACKROAD_API_KEY environment variable or pass APIKey in config.")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv(EnvBaseURL)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	return cfg, nil
}
