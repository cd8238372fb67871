// Package version reports the build stamped into the binary
package version

import "runtime"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information
// stamp with -ldflags "-X mailvet/internal/platform/version.version=v0.1.0 -X ...commit=abcd -X ...date=2026-01-02"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// Service is the process name reported by meta endpoints and logs
const Service = "mailvet-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
