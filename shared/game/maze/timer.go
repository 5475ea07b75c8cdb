package maze

import "time"

// Timer counts elapsed whole seconds between Start and Stop. Sub-second
// precision is deliberately out of scope; drift within a second is fine.
type Timer struct {
	now       func() time.Time
	startedAt time.Time
	frozen    int
	running   bool
}

// NewTimer returns a stopped timer reading zero.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// Start resets the count to zero and begins counting.
func (t *Timer) Start() {
	t.startedAt = t.now()
	t.frozen = 0
	t.running = true
}

// Stop freezes the current count. Repeated calls are no-ops, and no
// further increase is observable after the first Stop returns.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.frozen = t.elapsed()
	t.running = false
}

// Seconds returns the whole seconds counted so far, or the frozen value
// once stopped.
func (t *Timer) Seconds() int {
	if t.running {
		return t.elapsed()
	}
	return t.frozen
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

func (t *Timer) elapsed() int {
	return int(t.now().Sub(t.startedAt) / time.Second)
}
