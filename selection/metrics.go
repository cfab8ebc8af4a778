package selection

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// 📊 选择引擎指标
// =============================================================================

// Metrics 选择引擎的 Prometheus 指标集。
// 引擎持有的 Metrics 可为 nil，所有记录方法都是 nil 安全的。
type Metrics struct {
	selectionsTotal   *prometheus.CounterVec
	oracleFallbacks   prometheus.Counter
	selectionDuration prometheus.Histogram
	selectedWorkers   prometheus.Histogram
}

// NewMetrics 创建指标集并注册到给定 Registerer。
// reg 为 nil 时使用默认注册表。
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		selectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selections_total",
				Help:      "Total number of selection runs by resolved complexity",
			},
			[]string{"complexity"},
		),
		oracleFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "oracle_fallbacks_total",
				Help:      "Total number of oracle failures substituted with the default judgment",
			},
		),
		selectionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "selection_duration_seconds",
				Help:      "Duration of one selection run in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		selectedWorkers: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "selected_workers",
				Help:      "Number of workers in the final sequence",
				Buckets:   prometheus.LinearBuckets(0, 2, 10),
			},
		),
	}
}

// ObserveSelection 记录一次选择运行
func (m *Metrics) ObserveSelection(complexity string, workers int, duration time.Duration) {
	if m == nil {
		return
	}
	m.selectionsTotal.WithLabelValues(complexity).Inc()
	m.selectionDuration.Observe(duration.Seconds())
	m.selectedWorkers.Observe(float64(workers))
}

// ObserveOracleFallback 记录一次 Oracle 默认判断替换
func (m *Metrics) ObserveOracleFallback() {
	if m == nil {
		return
	}
	m.oracleFallbacks.Inc()
}
