package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	EntityCategory    = "category"
	EntitySubCategory = "subcategory"
	EntityCostume     = "costume"

	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// CatalogPrometheusMetrics counts catalog writes and stats cache lookups.
// A nil receiver records nothing.
type CatalogPrometheusMetrics struct {
	mutationsTotal  *prometheus.CounterVec
	statsCacheTotal *prometheus.CounterVec
}

func newCatalogPrometheusMetrics(reg prometheus.Registerer) *CatalogPrometheusMetrics {
	mutationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Catalog writes by entity, operation and outcome.",
		},
		[]string{"entity", "operation", "status"},
	)

	statsCacheTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_stats_cache_total",
			Help: "Costume stats lookups by cache result.",
		},
		[]string{"result"},
	)

	reg.MustRegister(mutationsTotal, statsCacheTotal)

	return &CatalogPrometheusMetrics{
		mutationsTotal:  mutationsTotal,
		statsCacheTotal: statsCacheTotal,
	}
}

func (m *CatalogPrometheusMetrics) RecordMutation(entity, operation string, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	m.mutationsTotal.WithLabelValues(entity, operation, status).Inc()
}

func (m *CatalogPrometheusMetrics) RecordStatsCache(hit bool) {
	if m == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}
	m.statsCacheTotal.WithLabelValues(result).Inc()
}
