package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ClientConfig configures the console's API client. Everything comes from the
// environment: the console is launched, not deployed, so there is no file.
type ClientConfig struct {
	APIURL         string        `envconfig:"API_URL" default:"http://localhost:8080"`
	MediaURL       string        `envconfig:"MEDIA_URL" default:"http://localhost:8080/media"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	PageSize       int           `envconfig:"PAGE_SIZE" default:"10"`
	SessionFile    string        `envconfig:"SESSION_FILE" default:".heartlink-session"`
	RatePerSecond  float64       `envconfig:"RATE_PER_SECOND" default:"20"`
	RateBurst      int           `envconfig:"RATE_BURST" default:"40"`
	Debug          bool          `envconfig:"DEBUG" default:"false"`
}

// LoadClientConfig reads client configuration from HEARTLINK_* environment
// variables.
func LoadClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("heartlink", &cfg); err != nil {
		return nil, err
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	return &cfg, nil
}
