package config

import (
	"strings"
	"time"

	"github.com/tcgmarket/marketplace/marketplace"
)

// WebAppConfig contains web-specific configuration
type WebAppConfig struct {
	Config      *marketplace.Config
	Debug       bool
	Environment string
}

func NewWebAppConfig(cfg *marketplace.Config) *WebAppConfig {
	environment := "production"
	if cfg.Web.Debug {
		environment = "development"
	}

	return &WebAppConfig{
		Config:      cfg,
		Debug:       cfg.Web.Debug,
		Environment: environment,
	}
}

// AllowOrigins renders the CORS origin list; empty means any origin.
func (w *WebAppConfig) AllowOrigins() string {
	if len(w.Config.Web.AllowOrigins) == 0 {
		return "*"
	}
	return strings.Join(w.Config.Web.AllowOrigins, ",")
}

func (w *WebAppConfig) RateLimitWindow() time.Duration {
	return time.Duration(w.Config.RateLimit.Window) * time.Second
}

// DecodeOnly reports whether request tokens are decoded without signature checks.
func (w *WebAppConfig) DecodeOnly() bool {
	return !w.Config.Auth.VerifyTokens
}
