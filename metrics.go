package qsim

import (
	"sync"
	"time"
)

/*
Metrics aggregates counters across circuit executions. It carries its own
lock so observers and dashboards may read it while a circuit runs; the
Simulator itself stays single-threaded.
*/
type Metrics struct {
	mu sync.RWMutex

	GatesApplied     int64
	GateCounts       map[GateType]int64
	Measurements     int64
	Executions       int64
	LastExecution    time.Time
	TotalExecuteTime time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{
		GateCounts: make(map[GateType]int64),
	}
}

func (m *Metrics) recordGate(t GateType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GatesApplied++
	m.GateCounts[t]++
}

func (m *Metrics) recordMeasurement() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Measurements++
}

func (m *Metrics) recordExecution(start time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Executions++
	m.LastExecution = start
	m.TotalExecuteTime += time.Since(start)
}

// ExportMetrics returns a flat map suitable for logging or dashboards.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[GateType]int64, len(m.GateCounts))
	for t, n := range m.GateCounts {
		counts[t] = n
	}

	return map[string]interface{}{
		"gates_applied":      m.GatesApplied,
		"gate_counts":        counts,
		"measurements":       m.Measurements,
		"executions":         m.Executions,
		"total_execute_time": m.TotalExecuteTime.Milliseconds(),
	}
}
