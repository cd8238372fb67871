// Package api mounts every HTTP surface of the service
package api

import (
	"time"

	"mailvet/internal/platform/config"
	phttp "mailvet/internal/platform/net/http"

	"mailvet/internal/modkit"
	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/modkit/module"
	"mailvet/internal/modkit/swaggerkit"

	metamod "mailvet/internal/services/api/meta/module"
	validatemod "mailvet/internal/services/api/validate/module"
	webmod "mailvet/internal/services/web/module"

	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	// Config is the unprefixed root; modules pick their own prefixes
	Config config.Conf

	// Registry receives every collector and serves /metrics; nil uses the process default
	Registry *prometheus.Registry

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	CORSOrigins    []string
	RequestTimeout time.Duration
	SlowRequest    time.Duration
}

// Mount mounts the API, the page and the operational endpoints onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	var gatherer prometheus.Gatherer
	if opt.Registry != nil {
		deps.Metrics = opt.Registry
		gatherer = opt.Registry
	}

	stack := httpkit.StackOptions{
		Timeout:     opt.RequestTimeout,
		Slow:        opt.SlowRequest,
		CORSOrigins: opt.CORSOrigins,
	}
	r.Use(httpkit.CommonStack(stack)...)

	vopts := validatemod.OptionsFromConfig(deps.Cfg)
	validate := validatemod.NewWithOptions(deps, vopts)

	apiMods := []module.Module{
		metamod.New(deps, vopts.Targets(), []string{"email"}),
		validate,
	}
	httpkit.MountAPIV1(r, httpkit.APIStack(stack), func(api httpkit.Router) {
		for _, m := range apiMods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	// the page resolves the validate ports registered above
	web := webmod.New(deps)
	module.Register(web.Name(), web.Ports())
	web.MountRoutes(r)

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	phttp.MountMetrics(r, "/metrics", opt.EnableMetrics, gatherer)
}
