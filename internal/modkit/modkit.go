package modkit

import (
	"net/http"

	phttp "mailvet/internal/platform/net/http"
	str "mailvet/internal/platform/strings"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
// modules typically expose New(deps Deps, opts ...Option) Module and may delegate to this pattern
type Builder func(Deps, ...Option) Module

// Base carries the built options and implements the routing half of Module
// modules embed it and set Register to attach their endpoints
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	// Register attaches the module endpoints to its scoped router
	Register func(phttp.Router)
}

// NewBase turns a Built into a Base; external register hooks run after own
func NewBase(b Built, own func(phttp.Router)) Base {
	external := b.Register
	return Base{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  b.Ports,
		Register: func(r phttp.Router) {
			if own != nil {
				own(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module under its prefix, or in place when the prefix is "/" or empty
func (m *Base) MountRoutes(r phttp.Router) {
	mount := func(rr phttp.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		if m.Register != nil {
			m.Register(rr)
		}
	}
	if m.prefix == "" || m.prefix == "/" {
		r.Group(mount)
		return
	}
	r.Route(str.MustPrefix(m.prefix), mount)
}

// Name returns the module name
func (m *Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Base) Prefix() string { return m.prefix }

// Middlewares returns the per module middleware slice
func (m *Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns whatever was injected via WithPorts; modules override to export their own
func (m *Base) Ports() any { return m.ports }
