package module

import (
	"context"
	"strings"
	"testing"

	"mailvet/internal/modkit/httpkit"
)

// Checker is a tiny port our Ports() payloads can implement
type Checker interface {
	Check(ctx context.Context, email string) bool
}

type checkerImpl struct{ ok bool }

func (c checkerImpl) Check(context.Context, string) bool { return c.ok }

// fakeModule is a small module double for tests
type fakeModule struct {
	name  string
	ports any
}

var _ Module = fakeModule{}

func (m fakeModule) Name() string               { return m.name }
func (m fakeModule) Ports() any                 { return m.ports }
func (m fakeModule) MountRoutes(httpkit.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Checker Checker
		Count   int
	}
	type hidden struct {
		checker Checker
	}

	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil ports", nil, false},
		{"direct", Checker(checkerImpl{ok: true}), true},
		{"exported field", bundle{Checker: checkerImpl{ok: true}}, true},
		{"unexported field", hidden{checker: checkerImpl{ok: true}}, false},
		{"non struct", 42, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[Checker](fakeModule{name: c.name, ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v want %v", ok, c.ok)
			}
			if ok && !got.Check(context.Background(), "a@b.co") {
				t.Fatalf("unexpected port value")
			}
		})
	}
}

func TestPortsOf_PointerBundle(t *testing.T) {
	t.Parallel()

	type bundle struct{ Checker Checker }
	if _, ok := PortsOf[Checker](fakeModule{ports: (*bundle)(nil)}); ok {
		t.Fatal("nil pointer bundle should report false")
	}
	got, ok := PortsOf[Checker](fakeModule{ports: &bundle{Checker: checkerImpl{ok: true}}})
	if !ok || !got.Check(context.Background(), "a@b.co") {
		t.Fatal("expected port from pointer bundle")
	}
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	type portSet struct{ ID int }

	Register("web", nil)
	Register("validate", portSet{ID: 1})
	Register("meta", nil)

	if got := Names(); strings.Join(got, ",") != "meta,validate,web" {
		t.Fatalf("Names = %v", got)
	}
	if got, ok := PortsAs[portSet]("validate"); !ok || got.ID != 1 {
		t.Fatalf("PortsAs = %+v %v", got, ok)
	}
	if _, ok := PortsAs[int]("validate"); ok {
		t.Fatal("wrong type should report false")
	}
	if _, ok := PortsAs[portSet]("missing"); ok {
		t.Fatal("missing name should report false")
	}

	Register("validate", portSet{ID: 2})
	if got, _ := PortsAs[portSet]("validate"); got.ID != 2 {
		t.Fatalf("re-register should overwrite, got %+v", got)
	}

	Reset()
	if len(Names()) != 0 {
		t.Fatal("Reset should clear the registry")
	}
}
