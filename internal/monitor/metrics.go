package monitor

import (
	"math"
	"sync/atomic"
	"time"
)

// Counter is a thread-safe monotonically increasing count
type Counter struct {
	value atomic.Int64
	name  string
}

// NewCounter creates a named counter
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	c.value.Add(1)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return c.value.Load()
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

const noMin = math.MaxInt64

// Timer accumulates durations of a repeated operation
type Timer struct {
	count atomic.Int64
	total atomic.Int64
	min   atomic.Int64
	max   atomic.Int64
	name  string
}

// NewTimer creates a named timer
func NewTimer(name string) *Timer {
	t := &Timer{name: name}
	t.min.Store(noMin)
	return t
}

// Record adds one measurement
func (t *Timer) Record(d time.Duration) {
	nanos := d.Nanoseconds()
	t.count.Add(1)
	t.total.Add(nanos)

	for {
		current := t.min.Load()
		if nanos >= current || t.min.CompareAndSwap(current, nanos) {
			break
		}
	}
	for {
		current := t.max.Load()
		if nanos <= current || t.max.CompareAndSwap(current, nanos) {
			break
		}
	}
}

// Count returns the number of measurements
func (t *Timer) Count() int64 {
	return t.count.Load()
}

// MinTime returns the shortest measurement, 0 when nothing was recorded
func (t *Timer) MinTime() time.Duration {
	if v := t.min.Load(); v != noMin {
		return time.Duration(v)
	}
	return 0
}

// MaxTime returns the longest measurement
func (t *Timer) MaxTime() time.Duration {
	return time.Duration(t.max.Load())
}

// AvgTime returns the mean measurement
func (t *Timer) AvgTime() time.Duration {
	count := t.count.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(t.total.Load() / count)
}

// Name returns the timer name
func (t *Timer) Name() string {
	return t.name
}
