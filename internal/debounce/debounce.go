// Package debounce coalesces bursts of calls into a single delayed action.
//
// Every call bumps a generation counter and schedules a timer for that
// generation. When the timer fires it only runs the action if no newer call
// has happened since, so the last argument of a burst wins and earlier ones
// are dropped.
package debounce

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Dispatcher defers an action until calls have been quiet for a fixed delay.
type Dispatcher[T any] struct {
	action func(T)
	delay  time.Duration

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	pending    bool
}

// New wraps action so that it runs delay after the most recent Call.
func New[T any](action func(T), delay time.Duration) *Dispatcher[T] {
	if delay < 0 {
		delay = 0
	}
	return &Dispatcher[T]{
		action: action,
		delay:  delay,
	}
}

// Call records arg and restarts the countdown, superseding any pending one.
func (d *Dispatcher[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	gen := d.generation
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen, arg)
	})
}

// Pending reports whether a countdown is outstanding.
func (d *Dispatcher[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Delay returns the quiet period the dispatcher waits for.
func (d *Dispatcher[T]) Delay() time.Duration {
	return d.delay
}

func (d *Dispatcher[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	// A Stop that lost the race with the timer lands here with an old generation.
	if gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.action(arg)
}

// TickMsg is delivered by Tick once its delay elapses.
type TickMsg[T any] struct {
	ID  uint64
	Arg T
}

// Gate tracks the latest generation for debouncing inside a bubbletea
// Update loop, where all state is owned by a single goroutine.
type Gate struct {
	current uint64
}

// Next starts a new generation and returns its id.
func (g *Gate) Next() uint64 {
	g.current++
	return g.current
}

// Current reports whether id is still the latest generation.
func (g *Gate) Current(id uint64) bool {
	return id == g.current
}

// Tick schedules a TickMsg carrying id and arg after delay. Pair it with a
// Gate and ignore ticks whose id is no longer current.
func Tick[T any](id uint64, arg T, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg[T]{ID: id, Arg: arg}
	})
}
