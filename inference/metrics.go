// SPDX-License-Identifier: MIT

package inference

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvfuzzy/internal/metrics"
)

type engineMetrics struct {
	evaluations prometheus.Counter
	rejected    *prometheus.CounterVec
	duration    prometheus.Histogram
	defuzzified *prometheus.CounterVec
	empty       *prometheus.CounterVec
	fired       prometheus.Counter
}

func newEngineMetrics(reg prometheus.Registerer, name string) *engineMetrics {
	f := promauto.With(prometheus.WrapRegistererWith(prometheus.Labels{"model": name}, reg))

	return &engineMetrics{
		evaluations: f.NewCounter(prometheus.CounterOpts{
			Name: metrics.EngineEvaluationsN,
			Help: metrics.EngineEvaluationsH,
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.EngineRejectedN,
			Help: metrics.EngineRejectedH,
		}, []string{metrics.LabelReason}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    metrics.EngineDurationN,
			Help:    metrics.EngineDurationH,
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		defuzzified: f.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.OutputDefuzzifiedN,
			Help: metrics.OutputDefuzzifiedH,
		}, []string{metrics.LabelOutput}),
		empty: f.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.OutputEmptyN,
			Help: metrics.OutputEmptyH,
		}, []string{metrics.LabelOutput}),
		fired: f.NewCounter(prometheus.CounterOpts{
			Name: metrics.RuleFiredN,
			Help: metrics.RuleFiredH,
		}),
	}
}

// The methods below are nil-safe so an engine without WithMetrics pays nothing.

func (m *engineMetrics) started() {
	if m != nil {
		m.evaluations.Inc()
	}
}

func (m *engineMetrics) reject(reason string) {
	if m != nil {
		m.rejected.WithLabelValues(reason).Inc()
	}
}

func (m *engineMetrics) observe(t0 time.Time) {
	if m != nil {
		m.duration.Observe(time.Since(t0).Seconds())
	}
}

func (m *engineMetrics) output(name string, ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.defuzzified.WithLabelValues(name).Inc()
	} else {
		m.empty.WithLabelValues(name).Inc()
	}
}

func (m *engineMetrics) ruleFired() {
	if m != nil {
		m.fired.Inc()
	}
}
