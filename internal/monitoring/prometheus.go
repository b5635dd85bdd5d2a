package monitoring

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var durationHist atomic.Pointer[prometheus.HistogramVec]

// RegisterPrometheus enables the per call duration histogram. Until it is
// called monitors only log.
func RegisterPrometheus(reg prometheus.Registerer) error {
	hist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_layer_call_duration_seconds",
			Help:    "Duration of repository, service and delivery calls.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.010, 0.050, 0.100, 0.250, 0.500, 1, 2.5, 5},
		},
		[]string{"layer", "segment", "status"},
	)

	if err := reg.Register(hist); err != nil {
		return err
	}

	durationHist.Store(hist)
	return nil
}

func observe(layer, segment, status string, elapsed time.Duration) {
	hist := durationHist.Load()
	if hist == nil {
		return
	}
	hist.WithLabelValues(layer, segment, status).Observe(elapsed.Seconds())
}
