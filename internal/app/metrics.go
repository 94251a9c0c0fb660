package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dshills/softglow/internal/engine/history"
)

// Metrics exports history activity to Prometheus. Each Metrics has its own
// registry so several applications can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	events  *prometheus.CounterVec
	evicted prometheus.Counter
	past    prometheus.Gauge
	future  prometheus.Gauge
}

// NewMetrics creates the collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "softglow_history_events_total",
			Help: "History changes by kind",
		}, []string{"kind"}),
		evicted: factory.NewCounter(prometheus.CounterOpts{
			Name: "softglow_history_evicted_total",
			Help: "Past entries dropped by the history size bound",
		}),
		past: factory.NewGauge(prometheus.GaugeOpts{
			Name: "softglow_history_past_entries",
			Help: "Current number of undo entries",
		}),
		future: factory.NewGauge(prometheus.GaugeOpts{
			Name: "softglow_history_future_entries",
			Help: "Current number of redo entries",
		}),
	}
}

// Observe records a history event. It has the signature editor.Observe expects.
func (m *Metrics) Observe(ev history.Event) {
	m.events.WithLabelValues(ev.Kind.String()).Inc()
	m.evicted.Add(float64(ev.Evicted))
	m.past.Set(float64(ev.PastCount))
	m.future.Set(float64(ev.FutureCount))
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// metricsServer serves /metrics until shut down.
type metricsServer struct {
	srv  *http.Server
	done chan error
}

func startMetricsServer(addr string, m *Metrics) *metricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	s := &metricsServer{
		srv:  &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		done: make(chan error, 1),
	}
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
	return s
}

// shutdown stops the server and returns any error from serving.
func (s *metricsServer) shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-s.done
}
