package metric

import (
	"context"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/tedsuo/rata"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// HTTPWrappa wraps every route handler with latency and status capture.
type HTTPWrappa struct {
	monitor *Monitor
}

func NewHTTPWrappa(monitor *Monitor) HTTPWrappa {
	return HTTPWrappa{monitor: monitor}
}

func (w HTTPWrappa) Wrap(handlers rata.Handlers) rata.Handlers {
	wrapped := rata.Handlers{}
	for name, handler := range handlers {
		wrapped[name] = w.wrap(name, handler)
	}
	return wrapped
}

func (w HTTPWrappa) wrap(route string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		captured := httpsnoop.CaptureMetrics(handler, rw, r)

		w.monitor.httpRequests.WithLabelValues(
			route, r.Method, strconv.Itoa(captured.Code),
		).Inc()
		w.monitor.httpDuration.WithLabelValues(route).
			Observe(captured.Duration.Seconds())

		w.monitor.WebhookLatency.Record(context.Background(),
			float64(captured.Duration.Milliseconds()),
			otelmetric.WithAttributes(
				attribute.String("route", route),
				attribute.Int("status", captured.Code),
			),
		)
	})
}
