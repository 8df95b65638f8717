package tracekit

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Exporter protocols accepted by Config.ExporterProtocol.
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

const (
	defaultConcurrencyLimit = 10
	minConcurrencyLimit     = 1
	maxConcurrencyLimit     = 100
)

// Config controls how Setup assembles the tracing pipeline.
//
// ServiceName and CollectorURL are required; their absence is a configuration
// error, not a silent default. Everything else has a stated default.
type Config struct {
	// ServiceName identifies this process in exported spans.
	ServiceName string `env:"SERVICE_NAME"`

	// CollectorURL is the OTLP collector endpoint, e.g. http://localhost:4317.
	CollectorURL string `env:"ENDPOINT"`

	// Hostname overrides host detection on the resource descriptor.
	Hostname string `env:"CONTAINER_NAME"`

	// ConcurrencyLimit bounds simultaneous in-flight export requests.
	ConcurrencyLimit int `env:"CONCURRENCY_LIMIT" envDefault:"10"`

	// ExporterProtocol selects the OTLP transport: "grpc" (default) or "http".
	ExporterProtocol string `env:"EXPORTER_PROTOCOL" envDefault:"grpc"`

	// EnableDNS attaches the DNS lookup instrumentation adapter.
	EnableDNS bool `env:"ENABLE_DNS_INSTRUMENTATION"`

	// EnableFilesystem attaches the filesystem instrumentation adapter.
	EnableFilesystem bool `env:"ENABLE_FS_INSTRUMENTATION"`

	// Logger receives lifecycle messages. Defaults to a no-op logger.
	Logger *zap.Logger `env:"-"`
}

// LoadConfigFromEnv loads configuration from environment variables.
// CONTAINER_NAME takes precedence over HOSTNAME for the hostname field.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Hostname == "" {
		cfg.Hostname = os.Getenv("HOSTNAME")
	}
	return cfg, nil
}

// Validate reports the first invalid field. It allocates no tracing
// resources and attempts no network calls.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return &ConfigurationError{Field: "ServiceName", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.CollectorURL) == "" {
		return &ConfigurationError{Field: "CollectorURL", Reason: "must not be empty"}
	}
	u, err := url.Parse(c.CollectorURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigurationError{Field: "CollectorURL", Reason: "must be an absolute URL with a scheme and host"}
	}
	if c.ConcurrencyLimit != 0 && (c.ConcurrencyLimit < minConcurrencyLimit || c.ConcurrencyLimit > maxConcurrencyLimit) {
		return &ConfigurationError{
			Field:  "ConcurrencyLimit",
			Reason: fmt.Sprintf("must be between %d and %d", minConcurrencyLimit, maxConcurrencyLimit),
		}
	}
	switch c.ExporterProtocol {
	case "", ProtocolGRPC, ProtocolHTTP:
	default:
		return &ConfigurationError{Field: "ExporterProtocol", Reason: `must be "grpc" or "http"`}
	}
	return nil
}

func (c Config) concurrencyLimit() int {
	if c.ConcurrencyLimit == 0 {
		return defaultConcurrencyLimit
	}
	return c.ConcurrencyLimit
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
