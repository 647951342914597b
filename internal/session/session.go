package session

import (
	"sync"
	"time"
)

// DefaultResetAfter is how long a burst total stays visible after the last
// update.
const DefaultResetAfter = 700 * time.Millisecond

// Accumulator sums the deltas of one burst of input for on-screen feedback.
// Every Add restarts the reset timer; when it fires the total drops back to
// zero and onReset, if set, is called with the final total. onReset must not
// call Stop.
type Accumulator struct {
	// cbMu is held for the whole reset, including onReset, so Stop can wait
	// for a reset in flight.
	cbMu       sync.Mutex
	mu         sync.Mutex
	total      int
	timer      *time.Timer
	gen        uint64
	resetAfter time.Duration
	onReset    func(total int)
}

func NewAccumulator(resetAfter time.Duration, onReset func(total int)) *Accumulator {
	if resetAfter <= 0 {
		resetAfter = DefaultResetAfter
	}
	return &Accumulator{resetAfter: resetAfter, onReset: onReset}
}

// Add adds delta to the running total and returns the new total.
func (a *Accumulator) Add(delta int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total += delta
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.resetAfter, func() { a.expire(gen) })
	return a.total
}

// Total returns the current burst total.
func (a *Accumulator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Stop cancels a pending reset and clears the total without calling
// onReset. If a reset is already running, Stop waits for it to finish.
func (a *Accumulator) Stop() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
	a.total = 0
	a.mu.Unlock()

	a.cbMu.Lock()
	a.cbMu.Unlock()
}

// expire resets the total unless a newer update has superseded gen.
func (a *Accumulator) expire(gen uint64) {
	a.cbMu.Lock()
	defer a.cbMu.Unlock()

	a.mu.Lock()
	if a.gen != gen {
		a.mu.Unlock()
		return
	}
	total := a.total
	a.total = 0
	a.timer = nil
	a.mu.Unlock()

	if a.onReset != nil {
		a.onReset(total)
	}
}
