package module

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailvet/internal/adapters/intel/authenticity"
	"mailvet/internal/adapters/intel/mailcheck"
	"mailvet/internal/adapters/intel/reputation"
	"mailvet/internal/modkit"
	"mailvet/internal/modkit/module"
	"mailvet/internal/platform/config"
	phttp "mailvet/internal/platform/net/http"
	"mailvet/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("MAILVET_EMAIL_BASE_URL", "http://mail.internal:8080")
	t.Setenv("MAILVET_AUTH_TIMEOUT", "5s")
	t.Setenv("MAILVET_USER_AGENT", "probe/1")

	o := OptionsFromConfig(config.New())
	if o.Email.BaseURL != "http://mail.internal:8080" || o.Email.Path != "/validatemyemail" || o.Email.Timeout != 10*time.Second {
		t.Fatalf("email = %+v", o.Email)
	}
	if o.Authenticity.BaseURL != "https://www.spamhaus.org" || o.Authenticity.Timeout != 5*time.Second {
		t.Fatalf("authenticity = %+v", o.Authenticity)
	}
	if o.Reputation.Timeout != 30*time.Second || o.Reputation.UserAgent != "probe/1" {
		t.Fatalf("reputation = %+v", o.Reputation)
	}
	if o.Targets()["reputation"] != "https://networkingtoolbox.net" {
		t.Fatalf("targets = %v", o.Targets())
	}
}

func TestOptionsFromConfig_EmailURLRequired(t *testing.T) {
	t.Setenv("MAILVET_EMAIL_BASE_URL", "")
	testkit.MustPanic(t, func() { OptionsFromConfig(config.New()) })
}

func TestModule_EndToEnd(t *testing.T) {
	t.Parallel()

	mail := testkit.NewFakeUpstream(t, testkit.RespondJSON(200, `{"email":"a@example.com","is_reachable":"Safe"}`))
	auth := testkit.NewFakeUpstream(t, testkit.RespondJSON(503, `{}`))
	rep := testkit.NewFakeUpstream(t, testkit.RespondJSON(200, `{"summary":{"listedCount":0,"totalChecked":3,"cleanCount":3}}`))

	m := NewWithOptions(modkit.Deps{Metrics: prometheus.NewRegistry()}, Options{
		Email:        mailcheck.Options{BaseURL: mail.URL},
		Authenticity: authenticity.Options{BaseURL: auth.URL},
		Reputation:   reputation.Options{BaseURL: rep.URL},
	})
	if m.Name() != "validate" {
		t.Fatalf("name = %q", m.Name())
	}
	if _, ok := module.PortsOf[Ports](m); !ok {
		t.Fatal("ports should be exported")
	}

	r := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(r))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`{"email":"a@example.com"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), `"domain_authenticity":null`)
	testkit.MustContain(t, rec.Body.String(), `"isClean":true`)
	if auth.Calls() != 1 || rep.Calls() != 1 {
		t.Fatalf("calls auth=%d rep=%d", auth.Calls(), rep.Calls())
	}
	if call, _ := auth.Last(); !strings.Contains(call.Path, "/example.com/overview") {
		t.Fatalf("auth path = %s", call.Path)
	}
}
