// Package upstream holds the http plumbing shared by the intel clients
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "mailvet/internal/platform/errors"
	"mailvet/internal/platform/logger"
	pnet "mailvet/internal/platform/net"
	pstrings "mailvet/internal/platform/strings"
)

const (
	defaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies outbound calls when none is configured
	DefaultUserAgent = "EmailValidator/1.0"
	maxBody          = 4 << 20
)

// Options configures a Client
type Options struct {
	// Name tags log lines and error messages, e.g. "mailcheck"
	Name      string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client issues JSON requests against one upstream host
type Client struct {
	http *http.Client
	opts Options
	log  *logger.Logger
}

// New returns a Client with defaults filled in
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  logger.Named(o.Name),
	}
}

// Name returns the upstream tag
func (c *Client) Name() string { return c.opts.Name }

// Timeout returns the per call deadline
func (c *Client) Timeout() time.Duration { return c.opts.Timeout }

// Object sends in as a JSON body (nil sends none) and decodes a JSON object reply
// transport failures, non 2xx statuses and non object bodies are errors
// numbers are kept as json.Number so they round trip unchanged
func (c *Client) Object(ctx context.Context, method, path string, in any) (map[string]any, error) {
	var out map[string]any
	status, err := c.Exchange(ctx, method, path, in, &out)
	if status != 0 && (status < 200 || status > 299) {
		return nil, perr.Upstreamf("%s returned status %d", c.opts.Name, status)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, perr.Upstreamf("%s returned a null body", c.opts.Name)
	}
	return out, nil
}

// Exchange sends in and decodes the reply into out whatever the status
// status is 0 when no response arrived; a body that does not decode is an upstream error
func (c *Client) Exchange(ctx context.Context, method, path string, in, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, perr.Wrapf(err, perr.ErrorCodeJSON, "%s encode request", c.opts.Name)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, pstrings.JoinPath(c.opts.BaseURL, path), body)
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Name)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(pnet.HeaderRequestID, pnet.CorrelationID(ctx))
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, perr.WrapTransport(err, "%s %s failed", c.opts.Name, method)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("upstream response")

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		if perr.IsDeadline(err) {
			return resp.StatusCode, perr.WrapTransport(err, "%s read body", c.opts.Name)
		}
		return resp.StatusCode, perr.Wrapf(err, perr.ErrorCodeUpstream, "%s returned a non object body", c.opts.Name)
	}
	return resp.StatusCode, nil
}
