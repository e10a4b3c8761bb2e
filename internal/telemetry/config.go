package telemetry

import (
	"strings"
	"time"

	"github.com/unkn0wn-root/curseclient/internal/config"
)

type Config struct {
	Endpoint    string
	Insecure    bool
	Headers     map[string]string
	ServiceName string
	Version     string
	DialTimeout time.Duration
}

// Default returns the baseline telemetry config used when no settings exist.
func Default() Config {
	return Config{
		ServiceName: "curseclient",
		DialTimeout: 5 * time.Second,
	}
}

// Enabled reports whether telemetry is configured with a non empty endpoint.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// FromSettings builds a Config from the [telemetry] settings section.
func FromSettings(s config.TelemetrySettings, version string) Config {
	cfg := Default()
	cfg.Version = strings.TrimSpace(version)
	cfg.Endpoint = strings.TrimSpace(s.Endpoint)
	cfg.Insecure = s.Insecure
	if svc := strings.TrimSpace(s.Service); svc != "" {
		cfg.ServiceName = svc
	}
	cfg.Headers = cleanHeaders(s.Headers)
	return cfg
}

// cleanHeaders trims keys and values, dropping empty keys. It returns nil
// when nothing is left so the exporter skips the option entirely.
func cleanHeaders(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
