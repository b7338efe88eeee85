package drill

import (
	"sync"
	"time"
)

// Timer represents a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed and repeating callbacks.
// This interface enables dependency injection for testing timer behavior.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (systemClock) Every(d time.Duration, f func()) Timer {
	t := &repeatTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.loop(f)
	return t
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// repeatTimer runs f on every tick until stopped. Calls to f never overlap.
type repeatTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *repeatTimer) loop(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *repeatTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
