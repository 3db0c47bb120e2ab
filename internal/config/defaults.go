package config

import (
	"strings"
	"time"
)

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in any unspecified configuration fields with sensible
// defaults. Explicit values are preserved; zero values are replaced.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyManifestDefaults(&cfg.Manifest)
	applyAliasCacheDefaults(&cfg.AliasCache)
	applyDiagnosticsDefaults(&cfg.Diagnostics)
	applyMetricsDefaults(&cfg.Metrics)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = "dev"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
	if cfg.ProfilingEndpoint == "" {
		cfg.ProfilingEndpoint = "http://localhost:4040"
	}
}

func applyManifestDefaults(cfg *ManifestConfig) {
	if len(cfg.SearchPaths) == 0 {
		cfg.SearchPaths = []string{"."}
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultConfigDir() + "/manifest-cache"
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
}

func applyAliasCacheDefaults(cfg *AliasCacheConfig) {
	if cfg.Dir == "" {
		cfg.Dir = defaultConfigDir() + "/alias-cache"
	}
}

func applyDiagnosticsDefaults(cfg *DiagnosticsConfig) {
	if cfg.BindAddr == "" {
		cfg.BindAddr = "127.0.0.1:37337"
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	// Metrics default to disabled; no zero-value fields to fill beyond that.
	_ = cfg
}
