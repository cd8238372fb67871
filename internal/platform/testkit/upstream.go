package testkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// Call is one request captured by a FakeUpstream
type Call struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// FakeUpstream is an httptest server that records every request it serves
type FakeUpstream struct {
	*httptest.Server

	mu    sync.Mutex
	calls []Call
}

// NewFakeUpstream starts a server running h and closes it on test cleanup
func NewFakeUpstream(t *testing.T, h http.HandlerFunc) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls = append(f.calls, Call{Method: r.Method, Path: r.URL.EscapedPath(), Header: r.Header.Clone(), Body: body})
		f.mu.Unlock()
		h(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

// Calls returns how many requests were served
func (f *FakeUpstream) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Last returns the most recent request; ok is false when nothing was served
func (f *FakeUpstream) Last() (c Call, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return Call{}, false
	}
	return f.calls[len(f.calls)-1], true
}

// RespondJSON replies with status and a raw JSON body
func RespondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// Stall holds the request until the client gives up or d elapses
func Stall(d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(d):
		}
		w.WriteHeader(http.StatusGatewayTimeout)
	}
}
