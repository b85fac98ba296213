// Package metrics exposes Prometheus collectors for exports and RPC calls.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Export outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

// Metrics holds the collectors registered for one server.
// A nil *Metrics records nothing.
type Metrics struct {
	exports        *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec
	requests       *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		exports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invoicemaker",
			Name:      "exports_total",
			Help:      "Invoice exports by format and outcome.",
		}, []string{"format", "outcome"}),
		exportDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "invoicemaker",
			Name:      "export_duration_seconds",
			Help:      "Time spent producing an export artifact.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invoicemaker",
			Name:      "rpc_requests_total",
			Help:      "Connect RPC requests by procedure and code.",
		}, []string{"procedure", "code"}),
	}
}

// ObserveExport records one export attempt.
func (m *Metrics) ObserveExport(format, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format, outcome).Inc()
	if outcome != OutcomeSkipped {
		m.exportDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

// Interceptor counts unary RPCs by procedure and result code.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			resp, err := next(ctx, req)
			if m != nil {
				m.requests.WithLabelValues(req.Spec().Procedure, codeOf(err)).Inc()
			}
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr.Code().String()
	}
	return connect.CodeUnknown.String()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
