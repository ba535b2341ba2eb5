package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks per-session counters. Only the session loop records;
// snapshots may be taken from any goroutine.
type Metrics struct {
	// Frame timing (render + paint)
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64

	// Navigation events by outcome
	eventCount  atomic.Uint64
	resizeCount atomic.Uint64
	reloadCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records the time taken to render and paint one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent counts a navigation event handled by the cursor.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// RecordResize counts a terminal resize.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// RecordReload counts a configuration reload.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// Snapshot returns a point-in-time view of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		EventCount:     m.eventCount.Load(),
		ResizeCount:    m.resizeCount.Load(),
		ReloadCount:    m.reloadCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	EventCount     uint64
	ResizeCount    uint64
	ReloadCount    uint64
}

// String summarizes the snapshot for the session log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s frames=%d avg=%s max=%s events=%d resizes=%d reloads=%d",
		s.Uptime.Round(time.Millisecond), s.FrameCount,
		time.Duration(s.AvgFrameTimeNs), time.Duration(s.MaxFrameTimeNs),
		s.EventCount, s.ResizeCount, s.ReloadCount)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
