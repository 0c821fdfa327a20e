package activity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the activity log.
type Metrics struct {
	EntriesWritten  *prometheus.CounterVec
	AppendFailures  *prometheus.CounterVec
	ExtractFailures *prometheus.CounterVec
}

// NewMetrics registers the activity collectors on reg.
// A nil reg gets a private registry, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		EntriesWritten: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "activity",
			Name:      "entries_written_total",
			Help:      "Activity log entries persisted, by entity type, action and outcome.",
		}, []string{"entity_type", "action", "outcome"}),
		AppendFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "activity",
			Name:      "append_failures_total",
			Help:      "Activity log entries that could not be persisted.",
		}, []string{"entity_type", "reason"}),
		ExtractFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "activity",
			Name:      "extract_failures_total",
			Help:      "Successful mutations whose resulting state could not be captured.",
		}, []string{"entity_type"}),
	}
}
