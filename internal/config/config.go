// Package config loads xrizer's runtime configuration from environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config represents xrizer's runtime configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (XRIZER_*)
//  2. Configuration file (YAML)
//  3. Default values (lowest priority)
//
// There is no CLI flag layer: xrizer has no command-line entry point, it is
// loaded in-process by the out-of-scope vtable dispatch layer.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Telemetry controls OpenTelemetry tracing and Pyroscope profiling.
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`

	// Manifest controls action manifest discovery and remote retrieval.
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`

	// AliasCache controls the embedded alias/binding cache.
	AliasCache AliasCacheConfig `mapstructure:"alias_cache" yaml:"alias_cache"`

	// Diagnostics controls the optional introspection HTTP server.
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics" yaml:"diagnostics"`

	// Metrics controls the Prometheus metrics registry.
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Extensions lists optional OpenXR extensions the host has enabled, by name
	// (e.g. "XR_EXT_palm_pose", "XR_MNDX_xdev_space"). The core treats an
	// extension not present here as unavailable and falls back accordingly.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format is the log encoding: text or json.
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr, or a file path.
	Output string `mapstructure:"output" yaml:"output"`
}

// TelemetryConfig controls OpenTelemetry tracing and profiling.
type TelemetryConfig struct {
	Enabled        bool    `mapstructure:"enabled" yaml:"enabled"`
	ServiceVersion string  `mapstructure:"service_version" yaml:"service_version"`
	Endpoint       string  `mapstructure:"endpoint" yaml:"endpoint"`
	Insecure       bool    `mapstructure:"insecure" yaml:"insecure"`
	SampleRate     float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1" yaml:"sample_rate"`

	// ProfilingEnabled turns on continuous Pyroscope profiling.
	ProfilingEnabled  bool   `mapstructure:"profiling_enabled" yaml:"profiling_enabled"`
	ProfilingEndpoint string `mapstructure:"profiling_endpoint" yaml:"profiling_endpoint"`
}

// ManifestConfig controls action manifest discovery and remote retrieval.
type ManifestConfig struct {
	// SearchPaths are filesystem directories searched, in order, for an
	// application's action manifest when a host does not set an absolute path.
	SearchPaths []string `mapstructure:"search_paths" yaml:"search_paths"`

	// CacheDir is where s3:// manifests and their referenced binding files
	// are downloaded before the loader reads them.
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`

	// FetchTimeout bounds a single remote manifest or binding file fetch.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" validate:"gt=0" yaml:"fetch_timeout"`

	// S3Region overrides the region resolved by the default AWS credential chain.
	S3Region string `mapstructure:"s3_region" yaml:"s3_region"`

	// S3Endpoint overrides the S3 endpoint, for S3-compatible storage.
	S3Endpoint string `mapstructure:"s3_endpoint" yaml:"s3_endpoint"`

	// S3AccessKeyID and S3SecretAccessKey, if set, are used as static
	// credentials instead of the default AWS credential chain.
	S3AccessKeyID     string `mapstructure:"s3_access_key_id" yaml:"s3_access_key_id"`
	S3SecretAccessKey string `mapstructure:"s3_secret_access_key" yaml:"s3_secret_access_key"`

	// S3ForcePathStyle selects path-style S3 addressing, required by
	// most non-AWS S3-compatible endpoints.
	S3ForcePathStyle bool `mapstructure:"s3_force_path_style" yaml:"s3_force_path_style"`
}

// AliasCacheConfig controls the embedded alias/binding cache.
type AliasCacheConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Dir     string `mapstructure:"dir" yaml:"dir"`
}

// DiagnosticsConfig controls the optional introspection HTTP server.
type DiagnosticsConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	BindAddr   string `mapstructure:"bind_addr" yaml:"bind_addr"`
}

// MetricsConfig controls the Prometheus metrics registry.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Load loads configuration from file, environment, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envKeys lists every dotted config key that XRIZER_* environment variables
// may override. Unlike a config file, a bare AutomaticEnv() only resolves
// nested keys during Unmarshal if they are bound explicitly or already
// present in the file; binding them here lets env vars work standalone.
var envKeys = []string{
	"logging.level", "logging.format", "logging.output",
	"telemetry.enabled", "telemetry.service_version", "telemetry.endpoint",
	"telemetry.insecure", "telemetry.sample_rate",
	"telemetry.profiling_enabled", "telemetry.profiling_endpoint",
	"manifest.search_paths", "manifest.cache_dir", "manifest.fetch_timeout", "manifest.s3_region",
	"manifest.s3_endpoint", "manifest.s3_access_key_id", "manifest.s3_secret_access_key", "manifest.s3_force_path_style",
	"alias_cache.enabled", "alias_cache.dir",
	"diagnostics.enabled", "diagnostics.bind_addr",
	"metrics.enabled",
	"extensions",
}

// setupViper configures viper with environment variable and config file support.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the XRIZER_ prefix and underscores in place of dots.
	// Example: XRIZER_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("XRIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}

	v.AddConfigPath(defaultConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// readConfigFile reads the configuration file if present. A missing file is
// not an error: the caller falls back to defaults.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// defaultConfigDir returns $XDG_CONFIG_HOME/xrizer, falling back to
// ~/.config/xrizer.
func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "xrizer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xrizer"
	}
	return filepath.Join(home, ".config", "xrizer")
}

// Validate checks a Config against its struct tags.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}
