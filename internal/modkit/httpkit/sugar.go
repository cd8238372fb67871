package httpkit

import (
	"net/http"

	phttp "mailvet/internal/platform/net/http"
)

// Get mounts a no body handler with an enveloped reply
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostBare mounts a JSON handler under POST whose result is the whole body
// errors are written as {"error": msg}
func PostBare[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	phttp.PostBareJSON(r, path, h, opts...)
}
