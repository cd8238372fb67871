// Package reputation sweeps a domain across DNS blacklists
// failures never reach the caller; they are logged and read as unavailable
package reputation

import (
	"context"
	"net/http"
	"time"

	"mailvet/internal/adapters/intel/upstream"
	"mailvet/internal/platform/logger"
	"mailvet/internal/services/api/validate/domain"
)

const (
	// DefaultBaseURL is the public diagnostics host
	DefaultBaseURL = "https://networkingtoolbox.net"
	// DefaultPath is the DNSBL sweep endpoint
	DefaultPath = "/api/internal/diagnostics/dnsbl"
	// DefaultTimeout bounds one sweep
	DefaultTimeout = 30 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	Path      string
	UserAgent string
	Timeout   time.Duration
}

// Client runs blacklist sweeps
type Client struct {
	up   *upstream.Client
	path string
}

// New returns a Client with defaults filled in
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return &Client{
		up: upstream.New(upstream.Options{
			Name:      "reputation",
			BaseURL:   o.BaseURL,
			UserAgent: o.UserAgent,
			Timeout:   o.Timeout,
		}),
		path: o.Path,
	}
}

type sweepBody struct {
	Target string `json:"target"`
}

// CheckReputation returns the sweep summary for domain or nil when it is unavailable
func (c *Client) CheckReputation(ctx context.Context, d string) *domain.ReputationResult {
	if d == "" {
		return nil
	}
	log := logger.C(ctx).With().Str("component", "reputation").Str("domain", d).Logger()

	body, err := c.up.Object(ctx, http.MethodPost, c.path, sweepBody{Target: d})
	if err != nil {
		log.Warn().Err(err).Msg("reputation check unavailable")
		return nil
	}

	res := Normalize(body)
	if res == nil {
		log.Warn().Msg("reputation response has no usable summary")
		return nil
	}
	log.Debug().Int("listed", res.ListedCount).Msg("reputation check completed")
	return res
}

// Normalize reads the summary object; missing counters are zero and a negative one
// makes the whole result nil
func Normalize(body map[string]any) *domain.ReputationResult {
	summary, ok := body["summary"].(map[string]any)
	if !ok {
		return nil
	}
	var res domain.ReputationResult
	for _, f := range []struct {
		key string
		dst *int
	}{
		{"listedCount", &res.ListedCount},
		{"totalChecked", &res.TotalChecked},
		{"cleanCount", &res.CleanCount},
		{"errorCount", &res.ErrorCount},
	} {
		n, ok := upstream.Count(summary[f.key])
		if !ok {
			return nil
		}
		*f.dst = n
	}
	res.IsClean = res.ListedCount == 0
	return &res
}
