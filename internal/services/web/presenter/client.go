// Package presenter holds the validation form state and the rules that turn a
// combined result into what the page shows
package presenter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mailvet/internal/adapters/intel/upstream"
	perr "mailvet/internal/platform/errors"
	pnet "mailvet/internal/platform/net"
	"mailvet/internal/services/api/validate/domain"
)

// DefaultErrorText is shown when the api gives no usable error message
const DefaultErrorText = "Failed to validate email"

// ValidatePath is where the api serves the orchestrator
const ValidatePath = "/api/v1/validate"

// Validator is the orchestrator seen from the page
type Validator interface {
	Validate(ctx context.Context, email string) (domain.CombinedValidationResult, error)
}

// ClientOptions configures the api client
type ClientOptions struct {
	BaseURL string
	// Timeout must cover the slowest upstream the api waits on
	Timeout time.Duration
}

// Client calls the validate endpoint over http
type Client struct {
	up *upstream.Client
}

// NewClient returns a Client for the api at o.BaseURL
func NewClient(o ClientOptions) *Client {
	if o.Timeout <= 0 {
		o.Timeout = 45 * time.Second
	}
	return &Client{up: upstream.New(upstream.Options{Name: "validate-api", BaseURL: o.BaseURL, Timeout: o.Timeout})}
}

// Validate posts the address; a non 2xx reply becomes an error carrying the api message
func (c *Client) Validate(ctx context.Context, email string) (domain.CombinedValidationResult, error) {
	var raw json.RawMessage
	status, err := c.up.Exchange(ctx, http.MethodPost, ValidatePath, domain.ValidationRequest{Email: email}, &raw)
	if status == 0 {
		return domain.CombinedValidationResult{}, perr.Wrap(err, perr.ErrorCodeUnavailable, DefaultErrorText)
	}
	if status < 200 || status > 299 {
		var body pnet.ErrorBody
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			return domain.CombinedValidationResult{}, perr.New(perr.ErrorCodeUpstream, body.Error)
		}
		return domain.CombinedValidationResult{}, perr.New(perr.ErrorCodeUpstream, DefaultErrorText)
	}
	if err != nil || len(raw) == 0 || string(raw) == "null" {
		return domain.CombinedValidationResult{}, perr.Wrap(err, perr.ErrorCodeUpstream, DefaultErrorText)
	}

	var res domain.CombinedValidationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return domain.CombinedValidationResult{}, perr.Wrap(err, perr.ErrorCodeJSON, DefaultErrorText)
	}
	return res, nil
}
