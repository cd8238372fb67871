package modkit

import (
	"testing"

	"mailvet/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func TestDeps_ZeroValueFallbacks(t *testing.T) {
	t.Parallel()
	var d Deps
	if d.Registerer() != prometheus.DefaultRegisterer {
		t.Fatal("zero Deps should fall back to the default registerer")
	}
	if d.Logger("validate") == nil {
		t.Fatal("zero Deps should still hand out a logger")
	}
}

func TestDeps_InjectedValues(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	d := Deps{Log: logger.Get(), Metrics: reg}
	if d.Registerer() != reg {
		t.Fatal("expected injected registry")
	}
	if d.Logger("web") == nil {
		t.Fatal("expected a child logger")
	}
}
