package slider

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// Timer is a pending delayed callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, like time.Timer.Stop.
	Stop() bool
}

// Scheduler runs f once after d on the slider's event loop. The callback
// must never run concurrently with other slider calls.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Loop is a single-goroutine event loop for driving a Slider outside of a
// UI toolkit. Input is posted to the loop and timers fire back onto it, so
// the slider only ever sees one caller.
type Loop struct {
	tasks   chan func()
	done    chan struct{}
	started atomic.Bool
}

// NewLoop creates a loop. Call Run to start processing.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Run processes posted funcs until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return errors.New("loop already started")
	}
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-l.tasks:
			f()
		}
	}
}

// Post queues f to run on the loop. It blocks while the queue is full.
func (l *Loop) Post(f func()) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}

	select {
	case <-l.done:
		return ErrLoopStopped
	case l.tasks <- f:
		return nil
	}
}

// Do posts f and waits until it has run.
func (l *Loop) Do(f func()) error {
	ran := make(chan struct{})
	if err := l.Post(func() {
		defer close(ran)
		f()
	}); err != nil {
		return err
	}

	select {
	case <-ran:
		return nil
	case <-l.done:
		return ErrLoopStopped
	}
}

// AfterFunc implements Scheduler. The callback is posted to the loop when
// the timer expires and skipped if Stop was called before it ran.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		_ = l.Post(func() {
			if !lt.stopped.Load() {
				f()
			}
		})
	})

	return lt
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (lt *loopTimer) Stop() bool {
	wasStopped := lt.stopped.Swap(true)
	stopped := lt.timer.Stop()

	return stopped && !wasStopped
}
