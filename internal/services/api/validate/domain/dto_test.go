package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshal_SpreadsFieldsAndOverridesDomainKeys(t *testing.T) {
	t.Parallel()

	score := 0.0
	c := Merge(
		map[string]any{
			"email":         "a@b.co",
			"is_reachable":  "Safe",
			"custom_field":  7,
			KeyReputation:   "upstream value",
			KeyAuthenticity: map[string]any{"x": 1},
		},
		&AuthenticityResult{Score: &score},
		&ReputationResult{TotalChecked: 10, CleanCount: 10, IsClean: true},
	)

	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	_ = json.Unmarshal(b, &got)

	if got["custom_field"] != float64(7) || got["is_reachable"] != "Safe" {
		t.Fatalf("upstream fields should be spread: %s", b)
	}
	auth := got[KeyAuthenticity].(map[string]any)
	if auth["score"] != float64(0) || auth["whois"] != nil {
		t.Fatalf("authenticity = %v", auth)
	}
	rep := got[KeyReputation].(map[string]any)
	if rep["isClean"] != true || rep["totalChecked"] != float64(10) {
		t.Fatalf("reputation = %v", rep)
	}
}

func TestMarshal_NilDomainChecksAreNull(t *testing.T) {
	t.Parallel()

	b, _ := json.Marshal(Merge(map[string]any{"email": "a@b.co"}, nil, nil))
	var got map[string]any
	_ = json.Unmarshal(b, &got)

	for _, k := range []string{KeyAuthenticity, KeyReputation} {
		v, ok := got[k]
		if !ok || v != nil {
			t.Fatalf("%s should be present and null: %s", k, b)
		}
	}
}

func TestMerge_DoesNotAliasFields(t *testing.T) {
	t.Parallel()

	in := map[string]any{"email": "a@b.co"}
	c := Merge(in, nil, nil)
	c.Fields["email"] = "changed"
	if in["email"] != "a@b.co" {
		t.Fatal("Merge should copy the upstream map")
	}
}

func TestUnmarshal_SplitsParts(t *testing.T) {
	t.Parallel()

	var c CombinedValidationResult
	body := `{"request_id":"r1","domain_authenticity":null,"domain_reputation":{"listedCount":3,"isClean":false}}`
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.DomainAuthenticity != nil {
		t.Fatal("null authenticity should decode to nil")
	}
	if c.DomainReputation == nil || c.DomainReputation.ListedCount != 3 {
		t.Fatalf("reputation = %+v", c.DomainReputation)
	}
	if c.Fields["request_id"] != "r1" || len(c.Fields) != 1 {
		t.Fatalf("fields = %v", c.Fields)
	}
}

func TestUnmarshal_KeepsWideIntegers(t *testing.T) {
	t.Parallel()

	var c CombinedValidationResult
	body := `{"processing_time_ms":12345678901234567890,"score":0.25}`
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	n, ok := c.Fields["processing_time_ms"].(json.Number)
	if !ok || n.String() != "12345678901234567890" {
		t.Fatalf("processing_time_ms = %#v", c.Fields["processing_time_ms"])
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"processing_time_ms":12345678901234567890`; !json.Valid(out) || !strings.Contains(string(out), want) {
		t.Fatalf("re-encoded body %s lacks %s", out, want)
	}
}
