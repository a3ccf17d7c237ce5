package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operational counters only. Nothing here carries an emotional mode or
// any other per-entry classification detail.
var (
	entriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stillpage_entries_total",
			Help: "Total number of journal entries processed",
		},
	)

	engagementNotesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stillpage_engagement_notes_total",
			Help: "Total number of responses carrying an engagement note",
		},
	)

	reflectionSummariesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stillpage_reflection_summaries_total",
			Help: "Total number of responses carrying a reflection summary",
		},
	)

	storeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stillpage_store_failures_total",
			Help: "Total number of entry store failures",
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(
		entriesTotal,
		engagementNotesTotal,
		reflectionSummariesTotal,
		storeFailuresTotal,
	)
}

func RecordEntry() {
	entriesTotal.Inc()
}

func RecordEngagementNote() {
	engagementNotesTotal.Inc()
}

func RecordReflectionSummary() {
	reflectionSummariesTotal.Inc()
}

func RecordStoreFailure(op string) {
	storeFailuresTotal.WithLabelValues(op).Inc()
}

// MetricsHandler exposes the Prometheus registry over HTTP.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
