package modkit

import (
	"net/http"

	phttp "mailvet/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*Built)

// Built is the resolved module configuration handed to NewBase
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies opts in order; later options win except middleware, which accumulates
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// WithName sets a module name used in logs and the port registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts a module under a path prefix; "/" mounts in place
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares attaches per module middleware, first added runs outermost
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts sets the default port set a module exposes when it does not override Ports
func WithPorts(p any) Option {
	return func(b *Built) { b.Ports = p }
}

// WithRegister adds endpoints after the module's own; tests use it to bolt on probes
func WithRegister(fn func(phttp.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
