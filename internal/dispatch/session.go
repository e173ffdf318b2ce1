package dispatch

import (
	"net/http"
	"time"
)

// SessionOptions configures the HTTP client used to talk to the Bot API.
// Fields here have come and gone between releases of this package, so
// deployment shims probe for them by name instead of setting them blind.
type SessionOptions struct {
	// Transport overrides the client transport when non-nil.
	Transport http.RoundTripper
	// TrustEnv makes the default transport honor proxy env vars.
	TrustEnv bool
	// Timeout bounds a single API call. Zero means none, which long
	// polling requires: a poll request outlives any sane per-call limit.
	Timeout time.Duration
}

// NewHTTPClient builds the Bot API session from opts.
func NewHTTPClient(opts SessionOptions) *http.Client {
	c := &http.Client{Timeout: opts.Timeout}
	if opts.Transport != nil {
		c.Transport = opts.Transport
		return c
	}
	if opts.TrustEnv {
		c.Transport = &http.Transport{Proxy: http.ProxyFromEnvironment}
	}
	return c
}
