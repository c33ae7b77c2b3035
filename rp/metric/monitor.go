package metric

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// Monitor holds the process's instruments. Counters are exported both to
// the OTel pipeline and to the prometheus scrape endpoint, mirroring how
// operators consume them.
type Monitor struct {
	WebhookLatency     otelmetric.Float64Histogram
	RunsLaunched       otelmetric.Int64Counter
	RunsFinished       otelmetric.Int64Counter
	Terminations       otelmetric.Int64Counter
	GPUShortageRetries otelmetric.Int64Counter
	StreamSubscribers  otelmetric.Int64UpDownCounter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewMonitor() (*Monitor, error) {
	meter := otel.Meter("github.com/ae-scientist/tower/rp")

	var (
		m   Monitor
		err error
	)

	m.WebhookLatency, err = meter.Float64Histogram(
		"tower.webhook.latency",
		otelmetric.WithDescription("webhook ingest latency"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	m.RunsLaunched, err = meter.Int64Counter(
		"tower.runs.launched",
		otelmetric.WithDescription("research runs launched"),
	)
	if err != nil {
		return nil, err
	}

	m.RunsFinished, err = meter.Int64Counter(
		"tower.runs.finished",
		otelmetric.WithDescription("research runs reaching a terminal status"),
	)
	if err != nil {
		return nil, err
	}

	m.Terminations, err = meter.Int64Counter(
		"tower.terminations.processed",
		otelmetric.WithDescription("termination jobs processed"),
	)
	if err != nil {
		return nil, err
	}

	m.GPUShortageRetries, err = meter.Int64Counter(
		"tower.gpu_shortage.retries",
		otelmetric.WithDescription("runs relaunched after a GPU shortage"),
	)
	if err != nil {
		return nil, err
	}

	m.StreamSubscribers, err = meter.Int64UpDownCounter(
		"tower.stream.subscribers",
		otelmetric.WithDescription("connected stream subscribers"),
	)
	if err != nil {
		return nil, err
	}

	m.httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tower",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method, and status.",
	}, []string{"route", "method", "status"})

	m.httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tower",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	return &m, nil
}

func (m *Monitor) IncRunsLaunched(ctx context.Context) {
	m.RunsLaunched.Add(ctx, 1)
}
