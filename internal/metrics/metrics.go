package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "stagebill_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	statementsTotal  *prometheus.CounterVec
	statementLatency *prometheus.HistogramVec
)

// Init registers the statement metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		statementsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statements_total",
				Help: "Total statements rendered by format and result",
			},
			[]string{"format", "result"},
		)
		statementLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_render_seconds",
				Help:    "Statement build and render latency by format",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)

		prometheus.MustRegister(statementsTotal, statementLatency)
	})
}

// ObserveStatement records one statement render outcome.
func ObserveStatement(format string, result string, elapsed time.Duration) {
	if statementsTotal == nil {
		return
	}
	statementsTotal.WithLabelValues(format, result).Inc()
	statementLatency.WithLabelValues(format).Observe(elapsed.Seconds())
}
