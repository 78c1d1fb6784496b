// Package metrics provides runtime metric collection and latency
// statistics for the benchmark harness.
package metrics

import (
	"runtime"
	"runtime/debug"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
)

// Snapshot is a point-in-time capture of runtime metrics.
type Snapshot struct {
	TS           time.Time
	HeapAlloc    uint64
	HeapSys      uint64
	HeapReleased uint64
	NumGC        uint32
	NumGoroutine int
}

// Take captures current runtime metrics.
func Take() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Snapshot{
		TS:           time.Now(),
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapReleased: m.HeapReleased,
		NumGC:        m.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}
}

// GC forces a collection and returns freed memory to the OS, so
// successive snapshots compare builds rather than garbage.
func GC() {
	runtime.GC()
	debug.FreeOSMemory()
}

// LatencyStats summarizes a latency distribution in milliseconds.
type LatencyStats struct {
	P50Ms float64
	P95Ms float64
	P99Ms float64
	AvgMs float64
	N     int
}

// LatencyRecorder accumulates operation latencies into an HDR
// histogram (1µs resolution up to one minute).
type LatencyRecorder struct {
	h *hdrhistogram.Histogram
}

// NewLatencyRecorder returns an empty recorder.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{
		h: hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3),
	}
}

// Record adds one observation. Values outside the histogram range are
// clamped by the histogram itself.
func (r *LatencyRecorder) Record(d time.Duration) {
	_ = r.h.RecordValue(d.Microseconds())
}

// Stats returns the percentile summary of everything recorded so far.
func (r *LatencyRecorder) Stats() LatencyStats {
	return LatencyStats{
		P50Ms: float64(r.h.ValueAtQuantile(50)) / 1e3,
		P95Ms: float64(r.h.ValueAtQuantile(95)) / 1e3,
		P99Ms: float64(r.h.ValueAtQuantile(99)) / 1e3,
		AvgMs: r.h.Mean() / 1e3,
		N:     int(r.h.TotalCount()),
	}
}
