// Package telemetry provides OpenTelemetry instrumentation for the
// awareness classifier service. It exports Prometheus metrics and
// provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "awareness-classifier"

// Metrics holds all classifier Prometheus metrics.
type Metrics struct {
	// Classification metrics
	ItemsClassified        *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram
	Confidence             prometheus.Histogram
	BatchSize              prometheus.Histogram

	// Distribution metrics
	PhaseShare *prometheus.GaugeVec

	// Pipeline metrics
	BatchesProcessed prometheus.Counter
	BatchesFailed    prometheus.Counter
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ItemsClassified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "awareness_items_classified_total",
			Help: "Total content items classified, by awareness phase",
		}, []string{"phase"}),

		ClassificationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "awareness_classification_duration_seconds",
			Help:    "Time to classify a single content item",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),

		Confidence: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "awareness_classification_confidence",
			Help:    "Confidence of classification results",
			Buckets: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "awareness_batch_size",
			Help:    "Number of content items per analysis batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
		}),

		PhaseShare: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "awareness_phase_share_percent",
			Help: "Current phase distribution percentage, by awareness phase",
		}, []string{"phase"}),

		BatchesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "awareness_batches_processed_total",
			Help: "Total analysis batches processed",
		}),

		BatchesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "awareness_batches_failed_total",
			Help: "Total analysis batches that failed",
		}),
	}
}

// StartSpan starts a trace span named after the operation.
func (p *Provider) StartSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, operation,
		trace.WithAttributes(attribute.String("service", serviceName)))
}

// RecordClassification records metrics for a single classified item.
func (p *Provider) RecordClassification(_ context.Context, phase string, confidence float64, duration time.Duration) {
	p.Metrics.ItemsClassified.WithLabelValues(phase).Inc()
	p.Metrics.ClassificationDuration.Observe(duration.Seconds())
	p.Metrics.Confidence.Observe(confidence)
}

// RecordBatch records metrics for one analysis batch.
func (p *Provider) RecordBatch(size int, failed bool) {
	p.Metrics.BatchSize.Observe(float64(size))
	if failed {
		p.Metrics.BatchesFailed.Inc()
		return
	}
	p.Metrics.BatchesProcessed.Inc()
}

// SetPhaseShare updates the phase distribution gauge.
func (p *Provider) SetPhaseShare(phase string, percentage float64) {
	p.Metrics.PhaseShare.WithLabelValues(phase).Set(percentage)
}
