// Package metrics records expansion-service metrics.
package metrics

import "time"

// Outcome label values for served expansions.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Sink records service metrics. Implementations must not block and must not
// propagate errors; a broken metrics backend never fails a request.
type Sink interface {
	// ExpansionServed records one served expansion request and its duration.
	ExpansionServed(outcome string, duration time.Duration)

	// ProcessStats records the latest process resource sample.
	ProcessStats(cpuPercent float64, memoryBytes uint64)
}

// Noop discards all metrics.
type Noop struct{}

func (Noop) ExpansionServed(string, time.Duration) {}
func (Noop) ProcessStats(float64, uint64)          {}
