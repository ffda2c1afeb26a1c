package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultReadHeaderTimeout = 10 * time.Second

// Exporter serves a registry over HTTP.
type Exporter struct {
	addr     string
	path     string
	registry *prometheus.Registry

	mu     sync.Mutex
	server *http.Server
	closed bool
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

func NewExporter(addr, path string, registry *prometheus.Registry) *Exporter {
	if path == "" {
		path = "/metrics"
	}
	return &Exporter{addr: addr, path: path, registry: registry}
}

func (e *Exporter) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(e.path, promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Start blocks serving metrics until Shutdown. It returns
// http.ErrServerClosed after a graceful stop.
func (e *Exporter) Start() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return http.ErrServerClosed
	}
	if e.server != nil {
		e.mu.Unlock()
		return nil
	}
	e.server = &http.Server{
		Addr:              e.addr,
		Handler:           e.Handler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
	srv := e.server
	e.mu.Unlock()

	return srv.ListenAndServe()
}

func (e *Exporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.server == nil {
		return nil
	}
	return e.server.Shutdown(ctx)
}
