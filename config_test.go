package tracekit

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_NAME", "checkout")
	t.Setenv("ENDPOINT", "http://collector:4317")
	t.Setenv("CONTAINER_NAME", "")
	t.Setenv("HOSTNAME", "")
	t.Setenv("CONCURRENCY_LIMIT", "25")
	t.Setenv("ENABLE_DNS_INSTRUMENTATION", "true")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "checkout" {
		t.Fatalf("expected service name checkout, got %q", cfg.ServiceName)
	}
	if cfg.CollectorURL != "http://collector:4317" {
		t.Fatalf("unexpected collector URL %q", cfg.CollectorURL)
	}
	if cfg.ConcurrencyLimit != 25 {
		t.Fatalf("expected concurrency limit 25, got %d", cfg.ConcurrencyLimit)
	}
	if !cfg.EnableDNS {
		t.Fatal("expected dns instrumentation enabled")
	}
	if cfg.EnableFilesystem {
		t.Fatal("expected filesystem instrumentation disabled")
	}
	if cfg.ExporterProtocol != ProtocolGRPC {
		t.Fatalf("expected default protocol grpc, got %q", cfg.ExporterProtocol)
	}
}

func TestLoadConfigFromEnvHostnameFallback(t *testing.T) {
	t.Setenv("SERVICE_NAME", "checkout")
	t.Setenv("ENDPOINT", "http://collector:4317")

	t.Setenv("CONTAINER_NAME", "container-7")
	t.Setenv("HOSTNAME", "node-1")
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Hostname != "container-7" {
		t.Fatalf("expected CONTAINER_NAME to win, got %q", cfg.Hostname)
	}

	t.Setenv("CONTAINER_NAME", "")
	cfg, err = LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Hostname != "node-1" {
		t.Fatalf("expected HOSTNAME fallback, got %q", cfg.Hostname)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"missing service name", Config{CollectorURL: "http://localhost:4317"}, "ServiceName"},
		{"blank service name", Config{ServiceName: "  ", CollectorURL: "http://localhost:4317"}, "ServiceName"},
		{"missing collector URL", Config{ServiceName: "checkout"}, "CollectorURL"},
		{"unparseable collector URL", Config{ServiceName: "checkout", CollectorURL: "://nope"}, "CollectorURL"},
		{"relative collector URL", Config{ServiceName: "checkout", CollectorURL: "localhost:4317"}, "CollectorURL"},
		{"concurrency too low", Config{ServiceName: "checkout", CollectorURL: "http://localhost:4317", ConcurrencyLimit: -1}, "ConcurrencyLimit"},
		{"concurrency too high", Config{ServiceName: "checkout", CollectorURL: "http://localhost:4317", ConcurrencyLimit: 101}, "ConcurrencyLimit"},
		{"bad protocol", Config{ServiceName: "checkout", CollectorURL: "http://localhost:4317", ExporterProtocol: "udp"}, "ExporterProtocol"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %T", err)
			}
			if cfgErr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, cfgErr.Field)
			}
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := Config{ServiceName: "checkout", CollectorURL: "http://localhost:4317"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.concurrencyLimit(); got != defaultConcurrencyLimit {
		t.Fatalf("expected default concurrency %d, got %d", defaultConcurrencyLimit, got)
	}
}

func TestValidateDoesNotLeakURLCredentials(t *testing.T) {
	cfg := Config{
		ServiceName:  "checkout",
		CollectorURL: "http://user:hunter2@%zz:4317",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "hunter2") {
		t.Fatalf("error leaks credentials: %v", err)
	}
}
