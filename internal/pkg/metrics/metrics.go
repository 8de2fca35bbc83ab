// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gerencia"

var (
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of store queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"table", "op"})

	queryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "query_errors_total",
		Help:      "Store queries that returned an error other than not found.",
	}, []string{"table", "op"})

	orphanKeys = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "soft_join_orphan_keys",
		Help:      "Group keys that matched no dimension member in the last soft join.",
	}, []string{"domain"})
)

// ObserveQuery records the duration of a query started at start.
func ObserveQuery(table, op string, start time.Time) {
	queryDuration.WithLabelValues(table, op).Observe(time.Since(start).Seconds())
}

func QueryFailed(table, op string) {
	queryErrors.WithLabelValues(table, op).Inc()
}

func SetOrphans(domain string, n int) {
	orphanKeys.WithLabelValues(domain).Set(float64(n))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
