// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "course_group_finder"

var (
	registerOnce sync.Once

	searches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of scored queries by kind (ranking, matrix, suggest)",
	}, []string{"kind"})
	searchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Histogram of query scoring durations in seconds by kind",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2.5, 10), // ~100µs up to a second
	}, []string{"kind"})
	cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Result cache hits by kind",
	}, []string{"kind"})
	cacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Result cache misses by kind",
	}, []string{"kind"})
	catalogReloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_reloads_total",
		Help:      "Catalog reload attempts by result (success, failure)",
	}, []string{"result"})

	groupsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_groups",
		Help:      "Number of groups in the current catalog",
	})
	coursesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_courses",
		Help:      "Number of distinct course codes in the current catalog",
	})
	malformedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_malformed_rows",
		Help:      "Number of rows skipped while building the current catalog",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searches, searchDuration, cacheHits, cacheMisses, catalogReloads,
			groupsGauge, coursesGauge, malformedGauge)
	})
}

// Query helpers
func IncSearch(kind string) { searches.WithLabelValues(kind).Inc() }
func ObserveSearchDuration(kind string, d time.Duration) {
	searchDuration.WithLabelValues(kind).Observe(d.Seconds())
}
func IncCacheHit(kind string)  { cacheHits.WithLabelValues(kind).Inc() }
func IncCacheMiss(kind string) { cacheMisses.WithLabelValues(kind).Inc() }

// Catalog helpers
func IncReload(result string) { catalogReloads.WithLabelValues(result).Inc() }

// SetCatalog records the size of a freshly installed catalog.
func SetCatalog(groups, courses, malformed int) {
	groupsGauge.Set(float64(groups))
	coursesGauge.Set(float64(courses))
	malformedGauge.Set(float64(malformed))
}
