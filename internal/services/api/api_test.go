package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"mailvet/internal/modkit/module"
	"mailvet/internal/platform/config"
	phttp "mailvet/internal/platform/net/http"
	"mailvet/internal/platform/testkit"

	validatemod "mailvet/internal/services/api/validate/module"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func mount(t *testing.T) *chi.Mux {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	mail := testkit.NewFakeUpstream(t, testkit.RespondJSON(200, `{"email":"a@example.com","is_reachable":"Safe"}`))
	intel := testkit.NewFakeUpstream(t, testkit.RespondJSON(503, `{}`))
	t.Setenv("MAILVET_EMAIL_BASE_URL", mail.URL)
	t.Setenv("MAILVET_AUTH_BASE_URL", intel.URL)
	t.Setenv("MAILVET_REPUTATION_BASE_URL", intel.URL)
	t.Setenv("MAILVET_WEB_API_URL", "")

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), Options{
		Config:         config.New(),
		Registry:       prometheus.NewRegistry(),
		EnableSwagger:  true,
		EnableMetrics:  true,
		RequestTimeout: 5 * time.Second,
	})
	return m
}

func serve(m http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	m.ServeHTTP(rec, req)
	return rec
}

func TestMount_Surfaces(t *testing.T) {
	m := mount(t)

	rec := serve(m, http.MethodPost, "/api/v1/validate", `{"email":"a@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("validate: %d %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"domain_reputation":null`)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id should be echoed")
	}

	rec = serve(m, http.MethodPost, "/api/v1/validate", `{}`)
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != `{"error":"Email is required"}` {
		t.Fatalf("missing email: %d %s", rec.Code, rec.Body.String())
	}

	for _, p := range []string{"/api/v1/meta/health", "/api/v1/meta/ready", "/health", "/", "/api/docs/doc.json"} {
		if rec := serve(m, http.MethodGet, p, ""); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: %d", p, rec.Code)
		}
	}

	rec = serve(m, http.MethodGet, "/metrics", "")
	testkit.MustContain(t, rec.Body.String(), "mailvet_validations_total")

	if p, ok := module.PortsAs[validatemod.Ports]("validate"); !ok || p.Service == nil {
		t.Fatal("validate ports should be registered")
	}
	rec = serve(m, http.MethodGet, "/api/v1/meta/service", "")
	testkit.MustContain(t, rec.Body.String(), `"modules":["meta","validate","web"]`)
}

func TestMount_PageValidatesInProcess(t *testing.T) {
	m := mount(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"email": {"a@example.com"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	m.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("page: %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), "a@example.com")
	testkit.MustContain(t, rec.Body.String(), "Valid")
}
