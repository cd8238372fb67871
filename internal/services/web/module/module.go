// Package module wires the validation page into HTTP via modkit
package module

import (
	"time"

	"mailvet/internal/modkit"
	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/modkit/module"
	"mailvet/internal/services/web/presenter"

	validatemod "mailvet/internal/services/api/validate/module"
	webhttp "mailvet/internal/services/web/http"
)

// Ports exposes the validator the page talks to
type Ports struct {
	Validator presenter.Validator
}

// Module implements the web module
type Module struct {
	modkit.Base

	ports Ports
}

// New builds the page module. It calls the registered validate service in
// process; MAILVET_WEB_API_URL switches it to a remote api over HTTP.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	c := deps.Cfg.Prefix("MAILVET_")
	log := deps.Logger("web")
	if c.MayString("WEB_API_URL", "") == "" {
		if p, ok := module.PortsAs[validatemod.Ports]("validate"); ok && p.Service != nil {
			log.Info().Str("validator", "in-process").Msg("page wired")
			return NewWithValidator(p.Service, opts...)
		}
	}
	base := c.MayURL("WEB_API_URL", "http://127.0.0.1:4000").String()
	log.Info().Str("validator", base).Msg("page wired")
	client := presenter.NewClient(presenter.ClientOptions{
		BaseURL: base,
		Timeout: c.MayDuration("WEB_API_TIMEOUT", 45*time.Second),
	})
	return NewWithValidator(client, opts...)
}

// NewWithValidator builds the page module over any validator
func NewWithValidator(v presenter.Validator, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("web"), modkit.WithPrefix("/")}, opts...)...)
	m := &Module{ports: Ports{Validator: v}}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		webhttp.Register(r, m.ports.Validator)
	})
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
