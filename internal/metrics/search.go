package metrics

import "github.com/prometheus/client_golang/prometheus"

// Strategy label values for SearchRequestsTotal.
const (
	StrategySemantic = "semantic"
	StrategyFallback = "fallback"
)

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "outfitsearch",
			Name:      "search_requests_total",
			Help:      "Total number of searches by scoring strategy and status",
		},
		[]string{"strategy", "status"},
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "outfitsearch",
			Name:      "search_results_returned",
			Help:      "Number of outfits returned per search",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultsReturned)
	searchMetricsRegistered = true
}
