// Package config handles application configuration via environment variables
package config

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"mailvet/internal/platform/config/raw"
	"mailvet/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g., "CORE_API_", "MAILVET_")
// Use New() for global access, or Prefix("MAILVET_") for module scopes.
// Unlike raw.Conf it logs bad values and panics on missing required ones
type Conf struct{ env raw.Conf }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{env: raw.New()} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("EMAIL_")
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.env.Key(k) }

// lookup returns the trimmed value; empty means unset
func (c Conf) lookup(k string) string {
	v, _ := c.env.Lookup(k)
	return v
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustURL panics if the given key is missing, empty, or not a valid absolute http(s) URL
func (c Conf) MustURL(key string) *url.URL {
	return c.parseURL(key, c.MustString(key))
}

// MayURL is MustURL with a fallback when the key is unset; a set but invalid value still panics
func (c Conf) MayURL(key, def string) *url.URL {
	return c.parseURL(key, c.MayString(key, def))
}

func (c Conf) parseURL(key, s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid absolute URL")
	}
	return u
}

// Require ensures that all given keys are present (non-empty). Panics otherwise.
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if c.lookup(k) == "" {
			logger.Get().Panic().Str("key", c.key(k)).Msg("missing required env")
		}
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid or not positive
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
