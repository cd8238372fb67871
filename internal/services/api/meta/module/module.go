// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"mailvet/internal/modkit"
	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/modkit/module"
	"mailvet/internal/platform/version"

	metahttp "mailvet/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base

	startedAt time.Time
}

// New constructs a meta module; upstreams feeds the readiness report and required
// names the upstreams the service cannot run without
func New(deps modkit.Deps, upstreams map[string]string, required []string, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Upstreams:   upstreams,
			Required:    required,
			Modules:     module.Names,
		})
	})
	return m
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
