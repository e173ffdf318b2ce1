package bot

import (
	"context"
	"net"
	"net/http"
	"reflect"
	"time"

	"botrunner/internal/dispatch"
)

// ipv4Transport returns a transport that dials IPv4 only. Some container
// networks advertise IPv6 routes to the Bot API that silently drop
// traffic, so the shim never tries them.
func ipv4Transport() *http.Transport {
	d := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
			return d.DialContext(ctx, "tcp4", addr)
		},
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
}

// setOption sets the named field on the options struct pointed to by opts,
// but only if the installed dispatch version has that field with a type
// val fits. Reports whether the field was set. A missing or mismatched
// field just means the feature is unavailable, never an error.
func setOption(opts any, name string, val any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	v := reflect.ValueOf(opts)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return false
	}
	f := v.Elem().FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return false
	}
	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(f.Type()) {
		return false
	}
	f.Set(rv)
	return true
}

// newSession builds the HTTP client for the Bot API, preferring IPv4 and
// passing only the options this dispatch version understands.
func newSession() *http.Client {
	opts := &dispatch.SessionOptions{}
	setOption(opts, "Transport", http.RoundTripper(ipv4Transport()))
	setOption(opts, "TrustEnv", true)
	return dispatch.NewHTTPClient(*opts)
}
