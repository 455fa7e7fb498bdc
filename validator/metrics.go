package validator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/semowl/validator/report"
)

// Metrics holds Prometheus metrics for the validator.
type Metrics struct {
	runsTotal       prometheus.Counter
	executionsTotal *prometheus.CounterVec
	issuesTotal     *prometheus.CounterVec
	ruleDuration    *prometheus.HistogramVec
	indexDuration   prometheus.Histogram
}

// NewMetrics creates validator metrics and registers them with reg. A nil
// registerer yields nil metrics, which the validator treats as disabled.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "validator",
			Name:      "runs_total",
			Help:      "Total validation runs",
		}),

		executionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "validator",
			Name:      "rule_executions_total",
			Help:      "Total rule executions",
		}, []string{"rule"}),

		issuesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "validator",
			Name:      "issues_total",
			Help:      "Issues reported by rules",
		}, []string{"rule", "severity"}),

		ruleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "semowl",
			Subsystem: "validator",
			Name:      "rule_duration_seconds",
			Help:      "Time spent executing individual rules",
			Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"rule"}),

		indexDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "semowl",
			Subsystem: "validator",
			Name:      "index_duration_seconds",
			Help:      "Time spent indexing an ontology before rule execution",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		}),
	}

	reg.MustRegister(
		m.runsTotal,
		m.executionsTotal,
		m.issuesTotal,
		m.ruleDuration,
		m.indexDuration,
	)
	return m
}

func (m *Metrics) recordRun(indexTime time.Duration) {
	if m == nil {
		return
	}
	m.runsTotal.Inc()
	m.indexDuration.Observe(indexTime.Seconds())
}

func (m *Metrics) recordRule(rule string, elapsed time.Duration, issues []report.Issue) {
	if m == nil {
		return
	}
	m.executionsTotal.WithLabelValues(rule).Inc()
	m.ruleDuration.WithLabelValues(rule).Observe(elapsed.Seconds())
	for _, issue := range issues {
		m.issuesTotal.WithLabelValues(rule, issue.Severity.String()).Inc()
	}
}
