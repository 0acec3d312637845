package monitor

import (
	"fmt"
	"time"

	"github.com/yildizm/breedview/internal/logger"
)

// LookupStats tracks how much typing turned into lookups during a session
type LookupStats struct {
	keystrokes *Counter
	settles    *Counter
	failures   *Counter
	stale      *Counter
	lookups    *Timer
}

// NewLookupStats creates empty session stats
func NewLookupStats() *LookupStats {
	return &LookupStats{
		keystrokes: NewCounter("keystrokes"),
		settles:    NewCounter("settles"),
		failures:   NewCounter("failures"),
		stale:      NewCounter("stale"),
		lookups:    NewTimer("lookups"),
	}
}

// RecordKeystroke counts one change to the query text
func (s *LookupStats) RecordKeystroke() {
	s.keystrokes.Inc()
}

// RecordSettle counts one debounced hand-off
func (s *LookupStats) RecordSettle() {
	s.settles.Inc()
}

// RecordLookup records a completed lookup that was applied to the screen
func (s *LookupStats) RecordLookup(elapsed time.Duration, failed bool) {
	s.lookups.Record(elapsed)
	if failed {
		s.failures.Inc()
	}
}

// RecordStale counts a lookup that finished after a newer one started
func (s *LookupStats) RecordStale() {
	s.stale.Inc()
}

// Snapshot is a point-in-time copy of LookupStats
type Snapshot struct {
	Keystrokes int64         `json:"keystrokes"`
	Settles    int64         `json:"settles"`
	Lookups    int64         `json:"lookups"`
	Failures   int64         `json:"failures"`
	Stale      int64         `json:"stale"`
	AvgLatency time.Duration `json:"avg_latency_ns"`
	MinLatency time.Duration `json:"min_latency_ns"`
	MaxLatency time.Duration `json:"max_latency_ns"`
}

// Snapshot copies the current values
func (s *LookupStats) Snapshot() Snapshot {
	return Snapshot{
		Keystrokes: s.keystrokes.Get(),
		Settles:    s.settles.Get(),
		Lookups:    s.lookups.Count(),
		Failures:   s.failures.Get(),
		Stale:      s.stale.Get(),
		AvgLatency: s.lookups.AvgTime(),
		MinLatency: s.lookups.MinTime(),
		MaxLatency: s.lookups.MaxTime(),
	}
}

// Summary renders a one-line status, empty until a lookup has completed
func (s Snapshot) Summary() string {
	if s.Lookups == 0 {
		return ""
	}
	return fmt.Sprintf("%d lookups for %d keystrokes, avg %s",
		s.Lookups, s.Keystrokes, s.AvgLatency.Round(time.Millisecond))
}

// Fields returns the snapshot as structured log fields
func (s Snapshot) Fields() []logger.Field {
	return []logger.Field{
		logger.F("keystrokes", s.Keystrokes),
		logger.F("settles", s.Settles),
		logger.F("lookups", s.Lookups),
		logger.F("failures", s.Failures),
		logger.F("stale", s.Stale),
		logger.F("avg_latency", s.AvgLatency),
		logger.F("max_latency", s.MaxLatency),
	}
}
