// Package metrics provides Prometheus-backed observability for the session
// sync path, the action manifest loader, and the custom binding engine.
//
// Every collector interface in this package is optional: a nil value is a
// valid zero-overhead receiver, so callers that do not want metrics pass nil
// rather than branching on IsEnabled() themselves.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
	enabled  bool
)

// InitRegistry creates and installs the global Prometheus registry. Calling
// it with enabled=false clears any previously installed registry and puts
// every NewXxxMetrics constructor back into zero-overhead (nil) mode.
func InitRegistry(isEnabled bool) *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()

	enabled = isEnabled
	if !enabled {
		registry = nil
		return nil
	}

	registry = prometheus.NewRegistry()
	return registry
}

// IsEnabled reports whether the metrics registry is installed.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// GetRegistry returns the installed registry, or nil if metrics are disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}
