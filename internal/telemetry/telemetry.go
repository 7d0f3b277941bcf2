// Package telemetry provides Prometheus metrics and OpenTelemetry
// tracing for the analysis pipeline.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "creative-radar"

// Pipeline metrics, registered once at package init.
var (
	RecordsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_records_processed_total",
		Help: "Total records successfully tagged and scored",
	}, []string{"source"})

	RecordsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_records_failed_total",
		Help: "Total records skipped because tagging or scoring failed",
	}, []string{"source"})

	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_source_failures_total",
		Help: "Total source fetches that errored and were skipped",
	}, []string{"source"})

	ReuseStyles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "radar_reuse_style_total",
		Help: "Scored records by reuse-style decision",
	}, []string{"style"})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "radar_run_duration_seconds",
		Help:    "Wall time of one full pipeline run",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
	})
)

// Provider wraps the tracer and the metrics HTTP handler.
type Provider struct {
	Tracer trace.Tracer
}

// NewProvider initializes telemetry for the service.
func NewProvider() *Provider {
	return &Provider{Tracer: otel.Tracer(serviceName)}
}

// Handler returns the Prometheus handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}
