package bot

import (
	"io"
	"net/http"
	"testing"
)

func TestHealthEndpointsReturnOK(t *testing.T) {
	h := NewHealthServer(0)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	for _, route := range []string{"/", "/health"} {
		resp, err := http.Get("http://" + h.Addr() + route)
		if err != nil {
			t.Fatalf("GET %s: %v", route, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", route, resp.StatusCode)
		}
		if string(body) != "ok" {
			t.Errorf("GET %s body = %q, want ok", route, body)
		}
	}
}

func TestHealthAddrBeforeStart(t *testing.T) {
	if addr := NewHealthServer(0).Addr(); addr != "" {
		t.Errorf("Addr before Start = %q, want empty", addr)
	}
}

func TestHealthCloseIsIdempotent(t *testing.T) {
	h := NewHealthServer(0)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	h.Close()
	h.Close()
}
