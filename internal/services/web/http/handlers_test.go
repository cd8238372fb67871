package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	perr "mailvet/internal/platform/errors"
	phttp "mailvet/internal/platform/net/http"
	"mailvet/internal/platform/testkit"
	"mailvet/internal/services/api/validate/domain"

	"github.com/go-chi/chi/v5"
)

type stub struct {
	got string
	res domain.CombinedValidationResult
	err error
}

func (s *stub) Validate(_ context.Context, email string) (domain.CombinedValidationResult, error) {
	s.got = email
	return s.res, s.err
}

func fptr(f float64) *float64 { return &f }

func do(t *testing.T, v *stub, method string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), v)
	var req *stdhttp.Request
	if form != nil {
		req = httptest.NewRequest(method, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)
	return rec
}

func TestForm_Empty(t *testing.T) {
	t.Parallel()

	rec := do(t, &stub{}, stdhttp.MethodGet, nil)
	if rec.Code != stdhttp.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("status %d %v", rec.Code, rec.Header())
	}
	testkit.MustContain(t, rec.Body.String(), `name="email"`)
	if strings.Contains(rec.Body.String(), `role="alert"`) {
		t.Fatal("empty form should not show an error")
	}
}

func TestSubmit_RendersResult(t *testing.T) {
	t.Parallel()

	v := &stub{res: domain.Merge(
		map[string]any{
			"email": "a@example.com", "is_reachable": "Safe", "is_valid_syntax": true, "mx_exists": true,
			"is_deliverable": true, "classification": "personal", "processing_time_ms": 88.0,
			"request_id": "abcdef0123456789",
		},
		&domain.AuthenticityResult{Score: fptr(5)},
		&domain.ReputationResult{ListedCount: 3},
	)}
	rec := do(t, v, stdhttp.MethodPost, url.Values{"email": {" a@example.com "}})
	body := rec.Body.String()

	if v.got != "a@example.com" {
		t.Fatalf("validator got %q", v.got)
	}
	for _, want := range []string{"Valid", "Blacklisted", "3 lists", "Excellent", "Found", "88ms", "abcdef012345...", `value="a@example.com"`} {
		testkit.MustContain(t, body, want)
	}
}

func TestSubmit_ShowsErrorVerbatim(t *testing.T) {
	t.Parallel()

	v := &stub{err: perr.New(perr.ErrorCodeUpstream, "Email is required")}
	rec := do(t, v, stdhttp.MethodPost, url.Values{})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), "Email is required")
	if strings.Contains(rec.Body.String(), "Domain Reputation") {
		t.Fatal("no result should be rendered with an error")
	}
}

func TestSubmit_EscapesInput(t *testing.T) {
	t.Parallel()

	v := &stub{err: perr.New(perr.ErrorCodeUpstream, "Failed to validate email")}
	rec := do(t, v, stdhttp.MethodPost, url.Values{"email": {`"><script>x</script>`}})
	if strings.Contains(rec.Body.String(), "<script>x") {
		t.Fatal("input must be escaped")
	}
}
