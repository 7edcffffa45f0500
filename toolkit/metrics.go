package toolkit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels successful calls; failures are labelled with their error code.
const OutcomeOK = "ok"

// Metrics holds the Prometheus collectors updated on every dispatch.
type Metrics struct {
	CallsTotal   *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
}

// NewMetrics creates the dispatch collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filetools_tool_calls_total",
				Help: "Total number of tool calls by outcome",
			},
			[]string{"tool", "outcome"},
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "filetools_tool_call_duration_seconds",
				Help:    "Tool call duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"tool"},
		),
	}
}

func (m *Metrics) observe(tool, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CallsTotal.WithLabelValues(tool, outcome).Inc()
	m.CallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
