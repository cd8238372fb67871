// Package authenticity scores a domain against a threat intel overview
// failures never reach the caller; they are logged and read as unavailable
package authenticity

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mailvet/internal/adapters/intel/upstream"
	"mailvet/internal/platform/logger"
	"mailvet/internal/services/api/validate/domain"
)

const (
	// DefaultBaseURL is the public intel host
	DefaultBaseURL = "https://www.spamhaus.org"
	// DefaultPath is the overview endpoint; {domain} is replaced per call
	DefaultPath = "/api/v1/sia-proxy/api/intel/v2/byobject/domain/{domain}/overview"
	// DefaultTimeout bounds one overview call
	DefaultTimeout = 20 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	Path      string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches and normalises domain overviews
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
			Name:      "authenticity",
			BaseURL:   o.BaseURL,
			UserAgent: o.UserAgent,
			Timeout:   o.Timeout,
		}),
		path: o.Path,
	}
}

// CheckAuthenticity returns the overview for domain or nil when it is unavailable
func (c *Client) CheckAuthenticity(ctx context.Context, d string) *domain.AuthenticityResult {
	if d == "" {
		return nil
	}
	log := logger.C(ctx).With().Str("component", "authenticity").Str("domain", d).Logger()

	body, err := c.up.Object(ctx, http.MethodGet, strings.ReplaceAll(c.path, "{domain}", url.PathEscape(d)), nil)
	if err != nil {
		log.Warn().Err(err).Msg("authenticity check unavailable")
		return nil
	}

	res := Normalize(body)
	if res == nil {
		log.Warn().Msg("authenticity overview carried no usable fields")
		return nil
	}
	log.Debug().Interface("score", res.Score).Msg("authenticity check completed")
	return res
}

// Normalize keeps whois and dimensions when truthy and score when numeric
// it returns nil unless at least one of them survives; a score of 0 survives
func Normalize(body map[string]any) *domain.AuthenticityResult {
	var res domain.AuthenticityResult
	if v := body["whois"]; upstream.Truthy(v) {
		res.Whois = v
	}
	if v := body["dimensions"]; upstream.Truthy(v) {
		res.Dimensions = v
	}
	if f, ok := upstream.Number(body["score"]); ok {
		res.Score = &f
	}
	if res.Whois == nil && res.Dimensions == nil && res.Score == nil {
		return nil
	}
	return &res
}
