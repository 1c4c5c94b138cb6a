package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter
	RecordsLoadedTotal   prometheus.Counter
	MalformedRowsSkipped prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "uidai_http_requests_total",
			Help: "Total number of HTTP requests served, by route and status code",
		}, []string{"route", "status"}),
		CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uidai_cache_hits_total",
			Help: "Total number of analytics cache hits",
		}),
		CacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uidai_cache_misses_total",
			Help: "Total number of analytics cache misses",
		}),
		RecordsLoadedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uidai_records_loaded_total",
			Help: "Total number of raw records loaded at startup",
		}),
		MalformedRowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uidai_malformed_rows_skipped_total",
			Help: "Total number of source rows skipped by schema validation",
		}),
	}
}

func (m *Metrics) IncrementRequests(route, status string) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
}

func (m *Metrics) IncrementCacheHits() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

func (m *Metrics) IncrementCacheMisses() {
	if m == nil {
		return
	}
	m.CacheMissesTotal.Inc()
}

func (m *Metrics) AddRecordsLoaded(n int) {
	if m == nil {
		return
	}
	m.RecordsLoadedTotal.Add(float64(n))
}

func (m *Metrics) AddMalformedRows(n int) {
	if m == nil {
		return
	}
	m.MalformedRowsSkipped.Add(float64(n))
}
