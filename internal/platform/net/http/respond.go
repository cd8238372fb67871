// Package http provides helpers for writing JSON responses, enveloped or bare
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "mailvet/internal/platform/errors"
	pnet "mailvet/internal/platform/net"
)

// Envelope is the response body for service endpoints (meta, health)
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, Envelope(wire))
}

// RespondBareError writes {"error": msg} with the mapped status
func RespondBareError(w stdhttp.ResponseWriter, err error) {
	status, body := pnet.BareError(err)
	JSON(w, status, body)
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
// Bare responses skip the envelope: Body is written as is, errors as {"error": msg}
type Response struct {
	Status int
	Body   any
	Bare   bool
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	// If Body is an error, derive status from error before building the body
	if err, ok := resp.Body.(error); ok && err != nil {
		if resp.Bare {
			RespondBareError(w, err)
			return
		}
		RespondError(w, r, err)
		return
	}

	if resp.Bare {
		JSON(w, status, resp.Body)
		return
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       resp.Body,
	})
}

// OK returns a 200 enveloped response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Bare returns a 200 response that writes data without an envelope
func Bare(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data, Bare: true} }

// BareError returns a response that writes {"error": msg} with the mapped status
func BareError(err error) Response { return Response{Body: err, Bare: true} }
