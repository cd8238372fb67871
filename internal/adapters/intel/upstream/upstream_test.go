package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	perr "mailvet/internal/platform/errors"
	pnet "mailvet/internal/platform/net"
	"mailvet/internal/platform/testkit"
)

func TestObject_SendsHeadersAndBody(t *testing.T) {
	t.Parallel()

	up := testkit.NewFakeUpstream(t, testkit.RespondJSON(200, `{"n":1.50,"s":"x"}`))
	c := New(Options{Name: "probe", BaseURL: up.URL + "/"})

	ctx := pnet.WithRequestID(context.Background(), "req-123")
	out, err := c.Object(ctx, http.MethodPost, "/check", map[string]string{"target": "example.com"})
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if n, ok := out["n"].(json.Number); !ok || n.String() != "1.50" {
		t.Fatalf("number should round trip as json.Number, got %#v", out["n"])
	}

	call, _ := up.Last()
	if call.Method != http.MethodPost || call.Path != "/check" {
		t.Fatalf("call = %s %s", call.Method, call.Path)
	}
	if got := call.Header.Get("User-Agent"); got != DefaultUserAgent {
		t.Fatalf("user agent = %q", got)
	}
	if call.Header.Get("Accept") != "application/json" || call.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("headers = %v", call.Header)
	}
	if call.Header.Get(pnet.HeaderRequestID) != "req-123" {
		t.Fatalf("request id = %q", call.Header.Get(pnet.HeaderRequestID))
	}
	if string(call.Body) != `{"target":"example.com"}` {
		t.Fatalf("body = %s", call.Body)
	}
}

func TestObject_GetHasNoBodyAndFreshCorrelation(t *testing.T) {
	t.Parallel()

	up := testkit.NewFakeUpstream(t, testkit.RespondJSON(200, `{}`))
	c := New(Options{Name: "probe", BaseURL: up.URL, UserAgent: "custom/2"})

	if _, err := c.Object(context.Background(), http.MethodGet, "/x", nil); err != nil {
		t.Fatalf("Object: %v", err)
	}
	call, _ := up.Last()
	if len(call.Body) != 0 || call.Header.Get("Content-Type") != "" {
		t.Fatalf("GET should carry no body: %q %v", call.Body, call.Header)
	}
	if call.Header.Get("User-Agent") != "custom/2" {
		t.Fatalf("user agent = %q", call.Header.Get("User-Agent"))
	}
	if len(call.Header.Get(pnet.HeaderRequestID)) != 36 {
		t.Fatalf("expected a uuid correlation id, got %q", call.Header.Get(pnet.HeaderRequestID))
	}
}

func TestObject_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		h    http.HandlerFunc
		code perr.ErrorCode
	}{
		{"status", testkit.RespondJSON(503, `{"error":"down"}`), perr.ErrorCodeUpstream},
		{"array", testkit.RespondJSON(200, `[1,2]`), perr.ErrorCodeUpstream},
		{"null", testkit.RespondJSON(200, `null`), perr.ErrorCodeUpstream},
		{"garbage", testkit.RespondJSON(200, `<html>`), perr.ErrorCodeUpstream},
		{"stall", testkit.Stall(2 * time.Second), perr.ErrorCodeTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			up := testkit.NewFakeUpstream(t, tc.h)
			c := New(Options{Name: "probe", BaseURL: up.URL, Timeout: 50 * time.Millisecond})
			_, err := c.Object(context.Background(), http.MethodGet, "/", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := perr.CodeOf(err); got != tc.code {
				t.Fatalf("code = %v want %v (%v)", got, tc.code, err)
			}
			if !strings.Contains(err.Error(), "probe") {
				t.Fatalf("error should name the upstream: %v", err)
			}
		})
	}
}

func TestObject_Unreachable(t *testing.T) {
	t.Parallel()

	c := New(Options{Name: "probe", BaseURL: "http://127.0.0.1:1"})
	_, err := c.Object(context.Background(), http.MethodGet, "/", nil)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestObject_CanceledParent(t *testing.T) {
	t.Parallel()

	up := testkit.NewFakeUpstream(t, testkit.Stall(2*time.Second))
	c := New(Options{Name: "probe", BaseURL: up.URL, Timeout: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	go func() { time.Sleep(20 * time.Millisecond); cancel() }()
	if _, err := c.Object(ctx, http.MethodGet, "/", nil); err == nil {
		t.Fatal("expected error after parent cancel")
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := New(Options{Name: "probe", BaseURL: "http://x/"})
	if c.Timeout() != defaultTimeout || c.Name() != "probe" || c.opts.BaseURL != "http://x" {
		t.Fatalf("defaults = %+v", c.opts)
	}
}

func TestExchange_DecodesErrorBodies(t *testing.T) {
	t.Parallel()

	up := testkit.NewFakeUpstream(t, testkit.RespondJSON(400, `{"error":"Email is required"}`))
	c := New(Options{Name: "probe", BaseURL: up.URL})

	var out struct {
		Error string `json:"error"`
	}
	status, err := c.Exchange(context.Background(), http.MethodPost, "/", map[string]string{}, &out)
	if err != nil || status != 400 || out.Error != "Email is required" {
		t.Fatalf("status=%d err=%v out=%+v", status, err, out)
	}
}
