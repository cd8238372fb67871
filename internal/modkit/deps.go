// Package modkit provides module wiring and core deps
package modkit

import (
	"mailvet/internal/platform/config"
	"mailvet/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Metrics is where modules register their collectors; nil means the process default registry
	Metrics prometheus.Registerer
}

// Registerer returns Metrics or the process default registry
func (d Deps) Registerer() prometheus.Registerer {
	if d.Metrics == nil {
		return prometheus.DefaultRegisterer
	}
	return d.Metrics
}

// Logger returns Log or a component logger named after the module
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	ll := d.Log.With().Str("component", component).Logger()
	return &ll
}
