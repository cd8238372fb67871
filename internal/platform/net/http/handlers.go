package http

import (
	"net/http"

	"mailvet/internal/platform/net/http/bind"
)

// BareJSONHandler binds the body into T and calls fn; the result is the whole body
// and failures are written as {"error": msg} with the mapped status
func BareJSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return BareError(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return BareError(err)
		}
		return Bare(out)
	})
}

// PostBareJSON mounts fn for POST through BareJSONHandler
func PostBareJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, BareJSONHandler(fn, opts...))
}
