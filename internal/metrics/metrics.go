package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolListRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aitoolhub_tool_list_requests_total",
		Help: "Catalog listing requests, labeled by outcome.",
	}, []string{"status"})

	ToolListDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aitoolhub_tool_list_duration_seconds",
		Help:    "Time to serve one catalog listing.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})

	FavoriteTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aitoolhub_favorite_toggles_total",
		Help: "Favorite add/remove operations, labeled by direction.",
	}, []string{"direction"})

	ReviewUpsertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_review_upserts_total",
		Help: "Review submissions written to the database.",
	})

	StaleResultsDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_stale_results_discarded_total",
		Help: "Listing responses dropped because a newer query superseded them.",
	})

	ToolsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aitoolhub_tools_total",
		Help: "Total number of tools in the catalog.",
	})

	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aitoolhub_users_total",
		Help: "Total number of registered users in the database.",
	})
)
