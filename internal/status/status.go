// Package status provides a thread-safe status tracker for the
// climate-display daemon. It is updated by the control loop and read by the
// heartbeat reporter.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/climate-display/internal/logic"
)

// Config contains daemon configuration for display in heartbeats.
type Config struct {
	PollMs      int64
	HeartbeatMs int64
	I2CBus      int
	I2CAddr     uint8
	LEDPin      int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	LastReading   logic.Reading
	HasReading    bool
	LastDirective logic.Directive
	Level         int
	Cycles        int
	Failures      int
	Counts        logic.CycleCounts
	StartTime     time.Time
	Now           time.Time
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// RecordCycle sets the latest reading, directive, and actuation level.
// Called from the loop on every successful cycle.
func (t *Tracker) RecordCycle(r logic.Reading, d logic.Directive, level int) {
	t.mu.Lock()
	t.snap.LastReading = r
	t.snap.HasReading = true
	t.snap.LastDirective = d
	t.snap.Level = level
	t.snap.Cycles++
	switch d {
	case logic.DirectiveUp:
		t.snap.Counts.Up++
	case logic.DirectiveDown:
		t.snap.Counts.Down++
	default:
		t.snap.Counts.Steady++
	}
	t.mu.Unlock()
}

// RecordFailure counts a failed acquisition cycle.
func (t *Tracker) RecordFailure() {
	t.mu.Lock()
	t.snap.Failures++
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
