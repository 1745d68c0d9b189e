// Package cors holds the origin allow-list shared by the HTTP server and the
// function adapter.
package cors

import "strings"

// Policy decides the Access-Control-Allow-Origin value for a request.
type Policy struct {
	allowAll bool
	allowed  map[string]bool
}

// NewPolicy parses a comma separated origin list. "*" or an empty value allows any origin.
func NewPolicy(allowedOrigins string) Policy {
	p := Policy{allowed: map[string]bool{}}
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			p.allowAll = true
			continue
		}
		if o != "" {
			p.allowed[o] = true
		}
	}
	if len(p.allowed) == 0 {
		p.allowAll = true
	}
	return p
}

// AllowAll reports whether any origin is accepted.
func (p Policy) AllowAll() bool {
	return p.allowAll
}

// AllowOrigin returns the header value for a request from origin, or false
// when the origin is not on the list.
func (p Policy) AllowOrigin(origin string) (string, bool) {
	if p.allowAll {
		return "*", true
	}
	if origin != "" && p.allowed[origin] {
		return origin, true
	}
	return "", false
}
