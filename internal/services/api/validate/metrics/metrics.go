// Package metrics holds the prometheus series for the validate API
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream names used as label values
const (
	UpstreamEmail        = "email"
	UpstreamAuthenticity = "authenticity"
	UpstreamReputation   = "reputation"
)

// Outcomes of one upstream call
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)

// Results of one validation request
const (
	ResultOK         = "ok"
	ResultBadRequest = "bad_request"
	ResultFailed     = "failed"
)

// Metrics provides observability for the validate module
type Metrics struct {
	// Upstream call latency by upstream
	UpstreamLatency *prometheus.HistogramVec

	// Upstream call outcomes by upstream and outcome
	UpstreamOutcome *prometheus.CounterVec

	// Validation requests by result
	Validations *prometheus.CounterVec

	// Whole fan out latency
	ValidateLatency prometheus.Histogram
}

// New registers the validate series on reg; nil uses the default registerer
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mailvet_upstream_duration_seconds",
			Help:    "Duration of upstream intel calls by upstream",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"upstream"}),

		UpstreamOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mailvet_upstream_outcomes_total",
			Help: "Upstream intel call outcomes by upstream and outcome",
		}, []string{"upstream", "outcome"}),

		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mailvet_validations_total",
			Help: "Validation requests by result",
		}, []string{"result"}),

		ValidateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mailvet_validate_duration_seconds",
			Help:    "Duration of a full validation including every upstream",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}),
	}
}

// ObserveUpstream records the latency and outcome of one upstream call
func (m *Metrics) ObserveUpstream(upstream, outcome string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(upstream).Observe(d.Seconds())
		m.UpstreamOutcome.WithLabelValues(upstream, outcome).Inc()
	}
}

// IncrementValidation records the result of one request
func (m *Metrics) IncrementValidation(result string) {
	if m != nil {
		m.Validations.WithLabelValues(result).Inc()
	}
}

// ObserveValidate records the total validation duration
func (m *Metrics) ObserveValidate(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
