package bot

import (
	"fmt"
	"log"
	"net"
	"net/http"
)

// HealthServer answers the platform's TCP health probe while the bot does
// long polling and never opens a port of its own.
type HealthServer struct {
	srv *http.Server
	ln  net.Listener
}

func NewHealthServer(port int) *HealthServer {
	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ok)
	mux.HandleFunc("/health", ok)

	return &HealthServer{
		srv: &http.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", port),
			Handler: mux,
		},
	}
}

// Start binds the port and serves in the background. The bind is
// synchronous so a taken port surfaces at startup.
func (h *HealthServer) Start() error {
	ln, err := net.Listen("tcp", h.srv.Addr)
	if err != nil {
		return err
	}
	h.ln = ln

	go func() {
		if err := h.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("health server: %v", err)
		}
	}()

	log.Printf("health server listening on %s", ln.Addr())
	return nil
}

// Close stops the listener. Teardown errors are swallowed.
func (h *HealthServer) Close() {
	_ = h.srv.Close()
}

// Addr returns the bound address, or "" before Start.
func (h *HealthServer) Addr() string {
	if h.ln == nil {
		return ""
	}
	return h.ln.Addr().String()
}
