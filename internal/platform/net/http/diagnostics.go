package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MountProfiler serves pprof at prefix+"/pprof/" when enabled
// the bare prefix redirects there so operators can type "/debug" by hand
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	pprof := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Get(prefix, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, prefix+"/pprof/", stdhttp.StatusFound)
	})
	r.Handle(prefix+"/*", pprof)
}

// MountMetrics serves the prometheus exposition for g at path when enabled
// a nil gatherer falls back to the process default registry
func MountMetrics(r Router, path string, enabled bool, g prometheus.Gatherer) {
	if !enabled {
		return
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	r.Handle(path, promhttp.HandlerFor(g, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	}))
}
