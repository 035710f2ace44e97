// Package metrics exposes catalog request counters for prometheus.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes used as the "outcome" label
const (
	OutcomeOK      = "ok"
	OutcomeOffline = "offline"
	OutcomeStatus  = "bad_status"
)

// CatalogMetrics instruments the catalog client. A nil *CatalogMetrics is valid and records nothing.
type CatalogMetrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	bulkRuns *prometheus.CounterVec
}

// NewCatalogMetrics creates and registers the catalog collectors
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	m := &CatalogMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easel",
			Subsystem: "catalog",
			Name:      "requests_total",
			Help:      "Catalog page requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "easel",
			Subsystem: "catalog",
			Name:      "request_duration_seconds",
			Help:      "Catalog page request latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		bulkRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easel",
			Subsystem: "selection",
			Name:      "bulk_runs_total",
			Help:      "Bulk range selections by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.requests, m.duration, m.bulkRuns)
	return m
}

// ObserveRequest records one catalog request
func (m *CatalogMetrics) ObserveRequest(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObserveBulkRun records a finished bulk selection; partial means a fetch failed mid-run
func (m *CatalogMetrics) ObserveBulkRun(partial bool) {
	if m == nil {
		return
	}
	result := "complete"
	if partial {
		result = "partial"
	}
	m.bulkRuns.WithLabelValues(result).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listener started", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
