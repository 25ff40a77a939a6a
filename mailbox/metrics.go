package mailbox

import "sync/atomic"

// MetricsSnapshot is a point-in-time view of a mailbox's counters.
type MetricsSnapshot struct {
	Sent     int64
	Rejected int64
}

// Metrics tracks per-mailbox delivery counters.
type Metrics struct {
	sent     atomic.Int64
	rejected atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordSent(delta int) {
	m.sent.Add(int64(delta))
}

func (m *Metrics) RecordRejected(delta int) {
	m.rejected.Add(int64(delta))
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Sent:     m.sent.Load(),
		Rejected: m.rejected.Load(),
	}
}
