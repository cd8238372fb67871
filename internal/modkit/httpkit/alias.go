// Package httpkit is what modules mount routes with
// modules import it instead of internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "mailvet/internal/platform/net/http"
	"mailvet/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Response lets a handler pick its own status and shape
	Response = phttp.Response

	// JSONOptions controls request body binding
	JSONOptions = bind.JSONOptions
)

// Call adapts a handler that takes no JSON body into an enveloped reply
// returning a Response instead of plain data overrides status and shape
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
