// Package module wires the validate API into HTTP via modkit
package module

import (
	"mailvet/internal/adapters/intel/authenticity"
	"mailvet/internal/adapters/intel/mailcheck"
	"mailvet/internal/adapters/intel/reputation"
	"mailvet/internal/modkit"
	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/services/api/validate/domain"
	"mailvet/internal/services/api/validate/metrics"

	validatehttp "mailvet/internal/services/api/validate/http"
	"mailvet/internal/services/api/validate/service"
)

// Ports exposes the service port for cross-module lookups
type Ports struct {
	Service domain.ServicePort
}

// Module implements the validate module
type Module struct {
	modkit.Base

	ports Ports
	svc   *service.Service
}

// New constructs the validate module from env config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWithOptions(deps, OptionsFromConfig(deps.Cfg), opts...)
}

// NewWithOptions constructs the validate module with explicit upstream settings
func NewWithOptions(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("validate"), modkit.WithPrefix("/")}, opts...)...)

	svc := service.New(
		mailcheck.New(o.Email),
		authenticity.New(o.Authenticity),
		reputation.New(o.Reputation),
		metrics.New(deps.Registerer()),
	)

	deps.Logger("validate").Info().
		Str("email", o.Email.BaseURL).
		Str("authenticity", o.Authenticity.BaseURL).
		Str("reputation", o.Reputation.BaseURL).
		Msg("upstreams configured")

	m := &Module{svc: svc}
	m.ports = Ports{Service: svc}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		validatehttp.Register(r, m.svc)
	})
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
