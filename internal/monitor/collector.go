// Package monitor samples host resource usage for the metrics sink.
package monitor

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/t77yq/cronexpand/internal/metrics"
)

// Collector periodically samples CPU and memory usage into the sink.
type Collector struct {
	logger   *zap.Logger
	sink     metrics.Sink
	interval time.Duration
	stop     chan struct{}
}

// NewCollector creates a collector sampling at the given interval.
func NewCollector(sink metrics.Sink, interval time.Duration, logger *zap.Logger) *Collector {
	return &Collector{
		logger:   logger.Named("monitor"),
		sink:     sink,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start starts the collection loop.
func (c *Collector) Start(ctx context.Context) {
	c.logger.Info("Starting resource monitor", zap.Duration("interval", c.interval))
	go c.collectLoop(ctx)
}

// Stop stops the collection loop.
func (c *Collector) Stop() {
	c.logger.Info("Stopping resource monitor")
	close(c.stop)
}

func (c *Collector) collectLoop(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-ticker.C:
			c.collect()
		}
	}
}

// collect takes one sample and pushes it into the sink.
func (c *Collector) collect() {
	cpuPercent, err := cpu.Percent(0, false)
	if err != nil {
		c.logger.Error("Failed to get CPU usage", zap.Error(err))
		return
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		c.logger.Error("Failed to get memory usage", zap.Error(err))
		return
	}

	c.sink.ProcessStats(cpuPercent[0], memInfo.Used)

	c.logger.Debug("Sampled resources",
		zap.Float64("cpu_percent", cpuPercent[0]),
		zap.Uint64("memory_bytes", memInfo.Used))
}
