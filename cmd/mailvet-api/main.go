// @title         mailvet API
// @version       1.0
// @description   Email validation aggregator
// @BasePath      /api/v1

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"mailvet/internal/platform/config"
	"mailvet/internal/platform/logger"
	phttp "mailvet/internal/platform/net/http"
	"mailvet/internal/platform/version"

	"mailvet/internal/services/api"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*), upstreams read MAILVET_* from root
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early, every line carries the build it came from
	bi := version.Info()
	lopt := logger.FromEnv()
	lopt.StaticFields = map[string]string{"version": bi.Version, "commit": bi.Commit}
	logger.Init(lopt)
	l := logger.Get()
	l.Info().Str("go", bi.Go).Msg("starting " + bi.Service)

	// the email check is the one upstream the service cannot answer without
	root.Prefix("MAILVET_").Require("EMAIL_BASE_URL")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// http server (reads CORE_API_API_PORT / CORE_API_WRITE_TIMEOUT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Registry:       reg,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
			RequestTimeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
			SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", 5*time.Second),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server drained")
}
