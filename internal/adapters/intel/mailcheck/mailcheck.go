// Package mailcheck calls the email validation upstream
package mailcheck

import (
	"context"
	"net/http"
	"time"

	"mailvet/internal/adapters/intel/upstream"
	perr "mailvet/internal/platform/errors"
)

const (
	// DefaultPath is the validation endpoint under the base url
	DefaultPath = "/validatemyemail"
	// DefaultTimeout bounds one validation call
	DefaultTimeout = 10 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	Path      string
	UserAgent string
	Timeout   time.Duration
}

// Client checks syntax and deliverability of one address
type Client struct {
	up   *upstream.Client
	path string
}

// New returns a Client with defaults filled in
func New(o Options) *Client {
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return &Client{
		up: upstream.New(upstream.Options{
			Name:      "mailcheck",
			BaseURL:   o.BaseURL,
			UserAgent: o.UserAgent,
			Timeout:   o.Timeout,
		}),
		path: o.Path,
	}
}

type checkBody struct {
	Email string `json:"email"`
}

// CheckEmail posts the address and returns the upstream body untouched
func (c *Client) CheckEmail(ctx context.Context, email string) (map[string]any, error) {
	out, err := c.up.Object(ctx, http.MethodPost, c.path, checkBody{Email: email})
	if err != nil {
		return nil, perr.WithOp(err, "mailcheck.CheckEmail")
	}
	return out, nil
}
