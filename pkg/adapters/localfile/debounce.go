package localfile

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers into a single callback once the
// window elapses without further triggers. It is a single-slot scheduler:
// triggering while a callback is pending cancels and restarts the timer.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window}
}

// trigger schedules fn to run after the quiet window. A trigger arriving
// before the window elapses replaces the pending fn entirely; cancellation
// is total, there is no partial run of a cancelled slot.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		if d.timer.Stop() {
			d.wg.Done()
		}
	}
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// stopAndWait refuses further triggers and waits for any in-flight callback
// to finish, up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		if d.timer.Stop() {
			d.wg.Done()
		}
		d.timer = nil
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
