// Package http provides meta endpoints
package http

import (
	"net/http"
	"net/url"
	"slices"
	"time"

	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/platform/version"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time

	// Upstreams maps an upstream name to its configured base url
	Upstreams map[string]string
	// Required names the upstreams whose absence fails readiness
	Required []string
	// Modules lists the mounted modules at request time; nil reports none
	Modules func() []string

	now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.now == nil {
		d.now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"mailvet-api"`
	Started string `json:"started"  example:"2026-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-09-03T13:05:00Z"`
}

// ReadyCheck describes a single upstream
type ReadyCheck struct {
	Name   string `json:"name"   example:"email"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Target string `json:"target,omitempty" example:"https://www.spamhaus.org"`
	Error  string `json:"error,omitempty"  example:"base url not configured"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"mailvet-api"`
	Started string   `json:"started" example:"2026-09-03T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe over upstream configuration
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	names := make([]string, 0, len(h.deps.Upstreams))
	for n := range h.deps.Upstreams {
		names = append(names, n)
	}
	slices.Sort(names)

	overall := "ok"
	checks := make([]ReadyCheck, 0, len(names))
	for _, n := range names {
		c := checkTarget(n, h.deps.Upstreams[n])
		checks = append(checks, c)
		if c.Status == "ok" {
			continue
		}
		if slices.Contains(h.deps.Required, n) {
			overall = "fail"
		} else if overall == "ok" {
			overall = "degraded"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    h.deps.now().UTC().Format(time.RFC3339),
	}, nil
}

func checkTarget(name, target string) ReadyCheck {
	if target == "" {
		return ReadyCheck{Name: name, Status: "skipped", Error: "base url not configured"}
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return ReadyCheck{Name: name, Status: "fail", Target: target, Error: "base url is not absolute"}
	}
	return ReadyCheck{Name: name, Status: "ok", Target: target}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.now().Sub(h.deps.StartedAt)
	mods := []string{}
	if h.deps.Modules != nil {
		mods = h.deps.Modules()
	}
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Modules: mods,
	}, nil
}
