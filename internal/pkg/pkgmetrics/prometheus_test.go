package pkgmetrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncHandled("pkgerror.NotFound", http.StatusNotFound)
	pr.IncHandled("pkgerror.NotFound", http.StatusNotFound)
	pr.IncUnhandled("error-exception")

	if got := testutil.ToFloat64(pr.handled.WithLabelValues("pkgerror.NotFound", "404")); got != 2 {
		t.Fatalf("expected 2 handled, got %v", got)
	}
	if got := testutil.ToFloat64(pr.unhandled.WithLabelValues("error-exception")); got != 1 {
		t.Fatalf("expected 1 unhandled, got %v", got)
	}
}

func TestPrometheusRecorderHandler(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncHandled("pkgerror.Forbidden", http.StatusForbidden)

	rec := httptest.NewRecorder()
	pr.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "goexception_dispatch_errors_handled_total") {
		t.Fatalf("expected handled counter in output:\n%s", rec.Body.String())
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncHandled("x", 500)
	r.IncUnhandled("y")
}
