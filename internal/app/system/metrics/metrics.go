// Package metrics exposes Prometheus counters for deck interactions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mbticards"

// Recorder holds the deck counters. A nil *Recorder records nothing.
type Recorder struct {
	deckRenders    *prometheus.CounterVec
	filterChanges  *prometheus.CounterVec
	sortSelections *prometheus.CounterVec
	visibleTypes   prometheus.Histogram
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		deckRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deck_renders_total",
			Help:      "Deck renders by output format.",
		}, []string{"format"}),
		filterChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_changes_total",
			Help:      "Filter submissions, labelled by whether normalisation adjusted the input.",
		}, []string{"adjusted"}),
		sortSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_selections_total",
			Help:      "Sort priority selections by cognitive function.",
		}, []string{"function"}),
		visibleTypes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "visible_types",
			Help:      "Number of types left visible after filtering.",
			Buckets:   []float64{0, 1, 2, 4, 8, 12, 16},
		}),
	}
	reg.MustRegister(r.deckRenders, r.filterChanges, r.sortSelections, r.visibleTypes)
	return r
}

// DeckRendered counts one render in format ("html", "snippet", "json").
func (r *Recorder) DeckRendered(format string, visible int) {
	if r == nil {
		return
	}
	r.deckRenders.WithLabelValues(format).Inc()
	r.visibleTypes.Observe(float64(visible))
}

// FilterChanged counts one filter submission.
func (r *Recorder) FilterChanged(adjusted bool) {
	if r == nil {
		return
	}
	label := "false"
	if adjusted {
		label = "true"
	}
	r.filterChanges.WithLabelValues(label).Inc()
}

// SortSelected counts one sort selection.
func (r *Recorder) SortSelected(function string) {
	if r == nil {
		return
	}
	r.sortSelections.WithLabelValues(function).Inc()
}

// Handler serves the exposition format for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
