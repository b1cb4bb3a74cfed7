package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// PrometheusSink implements Sink using the Prometheus client library.
// Registration failures are logged and the affected metric becomes a no-op
// for the process lifetime; they are never propagated.
type PrometheusSink struct {
	logger *zap.Logger

	expansionsTotal *prometheus.CounterVec
	expandDuration  prometheus.Histogram
	cpuPercent      prometheus.Gauge
	memoryBytes     prometheus.Gauge
}

// NewPrometheusSink creates a sink registered against reg.
func NewPrometheusSink(reg prometheus.Registerer, logger *zap.Logger) *PrometheusSink {
	s := &PrometheusSink{logger: logger.Named("metrics")}

	s.expansionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cronexpand_expansions_total",
		Help: "Total number of served expansion requests by outcome.",
	}, []string{"outcome"})
	s.expandDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cronexpand_expand_duration_seconds",
		Help:    "Duration of each served expansion in seconds.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
	s.cpuPercent = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cronexpand_process_cpu_percent",
		Help: "CPU usage of the host as sampled by the monitor.",
	})
	s.memoryBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cronexpand_process_memory_bytes",
		Help: "Memory in use on the host as sampled by the monitor.",
	})

	s.register(reg, s.expansionsTotal, "cronexpand_expansions_total")
	s.register(reg, s.expandDuration, "cronexpand_expand_duration_seconds")
	s.register(reg, s.cpuPercent, "cronexpand_process_cpu_percent")
	s.register(reg, s.memoryBytes, "cronexpand_process_memory_bytes")

	return s
}

func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		s.logger.Warn("Failed to register metric",
			zap.String("metric", name),
			zap.Error(err))
	}
}

// ExpansionServed implements Sink.
func (s *PrometheusSink) ExpansionServed(outcome string, duration time.Duration) {
	s.expansionsTotal.WithLabelValues(outcome).Inc()
	s.expandDuration.Observe(duration.Seconds())
}

// ProcessStats implements Sink.
func (s *PrometheusSink) ProcessStats(cpuPercent float64, memoryBytes uint64) {
	s.cpuPercent.Set(cpuPercent)
	s.memoryBytes.Set(float64(memoryBytes))
}
