// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation header forwarded to upstream services
// matching chi's default RequestIDHeader
const HeaderRequestID = "X-Request-Id"

// WithRequestID annotates context with the inbound request id
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	// set chi RequestID so chimw.GetReqID can retrieve it
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// CorrelationID returns the inbound request id, or a fresh uuid when the call did not
// originate from an http request
func CorrelationID(ctx context.Context) string {
	if v := RequestID(ctx); v != "" {
		return v
	}
	return uuid.NewString()
}
