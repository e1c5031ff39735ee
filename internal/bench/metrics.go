package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Registry *prometheus.Registry

	ops        *prometheus.CounterVec
	phase      *prometheus.HistogramVec
	treeSize   *prometheus.GaugeVec
	treeHeight *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "treebench_ops_total",
			Help: "Operations applied, by tree and phase.",
		}, []string{"tree", "phase"}),
		phase: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "treebench_phase_seconds",
			Help:    "Wall time of a benchmark phase.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"tree", "phase"}),
		treeSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treebench_tree_size",
			Help: "Live keys after the last phase.",
		}, []string{"tree"}),
		treeHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treebench_tree_height",
			Help: "Tree height after the last phase.",
		}, []string{"tree"}),
	}
	m.Registry.MustRegister(m.ops, m.phase, m.treeSize, m.treeHeight)
	return m
}

func (m *Metrics) observe(r Result) {
	m.ops.WithLabelValues(r.Tree, r.Phase).Add(float64(r.Ops))
	m.phase.WithLabelValues(r.Tree, r.Phase).Observe(r.Duration.Seconds())
	m.treeSize.WithLabelValues(r.Tree).Set(float64(r.Len))
	m.treeHeight.WithLabelValues(r.Tree).Set(float64(r.Height))
}

// opsPerSec guards against a zero duration on tiny datasets.
func opsPerSec(ops int, d time.Duration) int64 {
	if d <= 0 {
		return int64(ops)
	}
	return int64(float64(ops) / d.Seconds())
}
