package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	QuotesGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "quotes_generated_total",
			Help:      "Total number of quotes generated",
		},
	)

	OrdersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "orders_created_total",
			Help:      "Total number of orders created",
		},
		[]string{"customer_type"},
	)

	OrderConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "order_conflicts_total",
			Help:      "Stock reductions that failed after the order was persisted",
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "search_duration_seconds",
			Help:      "Product search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(QuotesGeneratedTotal)
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(OrderConflictsTotal)
	prometheus.MustRegister(SearchDuration)
	engineMetricsRegistered = true
}
