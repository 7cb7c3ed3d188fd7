package pkgmetrics

import (
	"net/http"
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus counters.
type PrometheusRecorder struct {
	reg       *prom.Registry
	handled   *prom.CounterVec
	unhandled *prom.CounterVec
}

// NewPrometheusRecorder constructs the counters and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		reg: reg,
		handled: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "goexception",
			Name:      "dispatch_errors_handled_total",
			Help:      "Dispatch errors mapped to an HTTP status by marker",
		}, []string{"marker", "status"}),
		unhandled: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "goexception",
			Name:      "dispatch_errors_unhandled_total",
			Help:      "Dispatch error events left to the generic fallback",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.handled, pr.unhandled)

	return pr
}

func (p *PrometheusRecorder) IncHandled(marker string, status int) {
	p.handled.WithLabelValues(marker, strconv.Itoa(status)).Inc()
}

func (p *PrometheusRecorder) IncUnhandled(kind string) {
	p.unhandled.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
