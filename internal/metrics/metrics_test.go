package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveExport("pdf", OutcomeOK, 20*time.Millisecond)
	m.ObserveExport("pdf", OutcomeOK, 10*time.Millisecond)
	m.ObserveExport("svg", OutcomeSkipped, 0)

	if got := testutil.ToFloat64(m.exports.WithLabelValues("pdf", OutcomeOK)); got != 2 {
		t.Errorf("pdf ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.exports.WithLabelValues("svg", OutcomeSkipped)); got != 1 {
		t.Errorf("svg skipped = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.exportDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveExport("pdf", OutcomeOK, time.Second)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"connect error", connect.NewError(connect.CodeNotFound, errors.New("missing")), "not_found"},
		{"plain error", errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codeOf(tt.err); got != tt.want {
				t.Errorf("codeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveExport("svg", OutcomeOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `invoicemaker_exports_total{format="svg",outcome="ok"} 1`) {
		t.Errorf("metrics output missing export counter:\n%s", rec.Body.String())
	}
}
