package tracekit

// Capability identifies one instrumentation adapter that Setup can attach.
type Capability string

const (
	CapabilityHTTP       Capability = "http"
	CapabilityGRPC       Capability = "grpc"
	CapabilityAWS        Capability = "aws"
	CapabilityRedis      Capability = "redis"
	CapabilityLogging    Capability = "logging"
	CapabilityDNS        Capability = "dns"
	CapabilityFilesystem Capability = "filesystem"
)

// adapterTable maps each capability to the predicate deciding whether it is
// attached for a given config. The fixed set is always on; dns and
// filesystem are flag-gated. Setup iterates this table exactly once.
var adapterTable = map[Capability]func(Config) bool{
	CapabilityHTTP:       always,
	CapabilityGRPC:       always,
	CapabilityAWS:        always,
	CapabilityRedis:      always,
	CapabilityLogging:    always,
	CapabilityDNS:        func(c Config) bool { return c.EnableDNS },
	CapabilityFilesystem: func(c Config) bool { return c.EnableFilesystem },
}

func always(Config) bool { return true }

func buildCapabilities(cfg Config) map[Capability]bool {
	caps := make(map[Capability]bool, len(adapterTable))
	for name, enabled := range adapterTable {
		if enabled(cfg) {
			caps[name] = true
		}
	}
	return caps
}
