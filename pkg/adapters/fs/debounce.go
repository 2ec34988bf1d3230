package fs

import (
	"sync"
	"time"

	"github.com/spectrakit/nmrio/pkg/core"
)

// debouncer coalesces bursts of filesystem events per path. Editors and
// instruments often produce several writes for one logical save; only
// the last event within the window fires.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire for the event, replacing any pending timer for the
// same path.
func (d *debouncer) add(event core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if timer, ok := d.timers[event.Path]; ok {
		if timer.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[event.Path] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, event.Path)
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fire(event)
		}
	})
}

// stopAndWait stops accepting new events and waits for in-flight timers
// to complete, up to timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
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
