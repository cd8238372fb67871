// Package strings provides small string helpers shared by transports and adapters
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /meta or /validate
// ensures a single leading slash and no trailing slash except for the root itself
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// DomainOf returns everything after the first '@'; no '@' yields ""
func DomainOf(email string) string {
	_, domain, ok := std.Cut(email, "@")
	if !ok {
		return ""
	}
	return domain
}

// Ellipsis keeps the first n bytes of s and appends "..."
// shorter strings still get the suffix so truncated ids read consistently
func Ellipsis(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		s = s[:n]
	}
	return s + "..."
}

// JoinPath joins a base url and a path with exactly one slash between them
func JoinPath(base, path string) string {
	base = std.TrimRight(base, "/")
	if path == "" {
		return base
	}
	return base + "/" + std.TrimLeft(path, "/")
}
