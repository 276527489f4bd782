package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/visnughosh/portfolio/internal/adapters/otel"
)

// Prefix is prepended to every environment variable, e.g. PORTFOLIO_ADDR.
const Prefix = "portfolio"

// Server holds configuration for the portfolio web server.
type Server struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	PublicDir       string        `envconfig:"PUBLIC_DIR" default:"public"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	OTEL            otel.Config   `envconfig:"OTEL"`
}

// Export holds configuration for static exports.
type Export struct {
	OutDir string `envconfig:"EXPORT_DIR" default:"dist"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadExport loads export configuration from environment variables.
func LoadExport() (*Export, error) {
	var cfg Export
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
