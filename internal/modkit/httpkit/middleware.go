package httpkit

import (
	"net/http"
	"time"

	"mailvet/internal/platform/net/middleware"
)

// StackOptions tunes the baseline middleware stack
type StackOptions struct {
	// Timeout bounds a whole request; keep it above the slowest upstream deadline
	Timeout time.Duration
	// Slow marks access log lines as warn
	Slow time.Duration
	// CORSOrigins limits browser origins; empty allows any
	CORSOrigins []string
}

// CommonStack returns the root middleware slice; apply it before mounting any route
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	return append(middleware.Defaults(o.Timeout),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.Heartbeat("/health"),
	)
}

// APIStack is the extra middleware for the browser facing JSON api
func APIStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
	}
}
