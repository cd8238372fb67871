package authenticity

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	pnet "mailvet/internal/platform/net"
	"mailvet/internal/platform/testkit"
)

func TestCheckAuthenticity_Overview(t *testing.T) {
	t.Parallel()

	up := testkit.NewFakeUpstream(t, testkit.RespondJSON(200,
		`{"whois":{"registrar":"r"},"score":5,"dimensions":{"age":1},"ignored":true}`))
	c := New(Options{BaseURL: up.URL})

	ctx := pnet.WithRequestID(context.Background(), "req-9")
	res := c.CheckAuthenticity(ctx, "example.com")
	if res == nil || res.Score == nil || *res.Score != 5 {
		t.Fatalf("res = %+v", res)
	}
	if res.Whois.(map[string]any)["registrar"] != "r" || res.Dimensions == nil {
		t.Fatalf("res = %+v", res)
	}

	call, _ := up.Last()
	if call.Method != http.MethodGet {
		t.Fatalf("method = %s", call.Method)
	}
	if call.Path != "/api/v1/sia-proxy/api/intel/v2/byobject/domain/example.com/overview" {
		t.Fatalf("path = %s", call.Path)
	}
	if call.Header.Get("User-Agent") != "EmailValidator/1.0" || call.Header.Get("Accept") != "application/json" {
		t.Fatalf("headers = %v", call.Header)
	}
	if call.Header.Get(pnet.HeaderRequestID) != "req-9" {
		t.Fatalf("request id = %q", call.Header.Get(pnet.HeaderRequestID))
	}
}

func TestCheckAuthenticity_Unavailable(t *testing.T) {
	t.Parallel()

	cases := map[string]http.HandlerFunc{
		"503":        testkit.RespondJSON(503, `{"error":"down"}`),
		"no fields":  testkit.RespondJSON(200, `{"other":1}`),
		"all empty":  testkit.RespondJSON(200, `{"whois":null,"score":"5","dimensions":0}`),
		"not object": testkit.RespondJSON(200, `"nope"`),
		"slow":       testkit.Stall(2 * time.Second),
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			up := testkit.NewFakeUpstream(t, h)
			c := New(Options{BaseURL: up.URL, Timeout: 50 * time.Millisecond})
			if res := c.CheckAuthenticity(context.Background(), "example.com"); res != nil {
				t.Fatalf("want nil, got %+v", res)
			}
		})
	}
}

func TestCheckAuthenticity_EmptyDomainSkipsCall(t *testing.T) {
	t.Parallel()

	up := testkit.NewFakeUpstream(t, testkit.RespondJSON(200, `{"score":1}`))
	if res := New(Options{BaseURL: up.URL}).CheckAuthenticity(context.Background(), ""); res != nil {
		t.Fatalf("want nil, got %+v", res)
	}
	if up.Calls() != 0 {
		t.Fatalf("calls = %d", up.Calls())
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	zero := Normalize(map[string]any{"score": json.Number("0")})
	if zero == nil || zero.Score == nil || *zero.Score != 0 {
		t.Fatalf("score 0 should be kept: %+v", zero)
	}
	if zero.Whois != nil || zero.Dimensions != nil {
		t.Fatalf("absent fields should stay nil: %+v", zero)
	}

	neg := Normalize(map[string]any{"score": json.Number("-3.5"), "whois": false})
	if neg == nil || *neg.Score != -3.5 || neg.Whois != nil {
		t.Fatalf("neg = %+v", neg)
	}

	onlyDims := Normalize(map[string]any{"dimensions": []any{"a"}})
	if onlyDims == nil || onlyDims.Score != nil {
		t.Fatalf("dimensions alone should count: %+v", onlyDims)
	}

	if Normalize(map[string]any{"whois": "", "score": nil}) != nil {
		t.Fatal("empty values should normalise to nil")
	}
}
