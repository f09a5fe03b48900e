// Package slidertest provides deterministic collaborators for testing code
// built on package slider.
package slidertest

import (
	"sort"
	"time"

	"github.com/alkime/slidebar/pkg/slider"
)

// ManualScheduler is a slider.Scheduler driven by virtual time. Timers run
// only inside Advance, on the caller's goroutine.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (mt *manualTimer) Stop() bool {
	if mt.stopped {
		return false
	}

	mt.stopped = true

	return true
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements slider.Scheduler.
func (ms *ManualScheduler) AfterFunc(d time.Duration, f func()) slider.Timer {
	ms.seq++
	mt := &manualTimer{at: ms.now + d, seq: ms.seq, fn: f}
	ms.pending = append(ms.pending, mt)

	return mt
}

// Now returns the virtual time.
func (ms *ManualScheduler) Now() time.Duration {
	return ms.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (ms *ManualScheduler) Pending() int {
	n := 0
	for _, mt := range ms.pending {
		if !mt.stopped {
			n++
		}
	}

	return n
}

// Advance moves virtual time forward by d, firing every timer that comes
// due in order, including timers scheduled by earlier callbacks.
func (ms *ManualScheduler) Advance(d time.Duration) {
	deadline := ms.now + d

	for {
		next := ms.nextDue(deadline)
		if next == nil {
			break
		}

		ms.now = next.at
		next.stopped = true
		next.fn()
	}

	ms.now = deadline
	ms.compact()
}

func (ms *ManualScheduler) nextDue(deadline time.Duration) *manualTimer {
	var due []*manualTimer
	for _, mt := range ms.pending {
		if !mt.stopped && mt.at <= deadline {
			due = append(due, mt)
		}
	}

	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})

	return due[0]
}

func (ms *ManualScheduler) compact() {
	live := ms.pending[:0]
	for _, mt := range ms.pending {
		if !mt.stopped {
			live = append(live, mt)
		}
	}
	ms.pending = live
}

// Recorder is a slider.Listener that keeps every event it receives.
type Recorder struct {
	Events []slider.Event
}

func (r *Recorder) OnStartSliding(s *slider.Slider) {
	r.Events = append(r.Events, slider.Event{Kind: slider.EventStart, Value: s.CurrentValue()})
}

func (r *Recorder) OnStopSliding(s *slider.Slider) {
	r.Events = append(r.Events, slider.Event{Kind: slider.EventStop, Value: s.CurrentValue()})
}

func (r *Recorder) OnValueChanged(_ *slider.Slider, value float64) {
	r.Events = append(r.Events, slider.Event{Kind: slider.EventValueChanged, Value: value})
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []slider.EventKind {
	kinds := make([]slider.EventKind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}

	return kinds
}

// Values returns the values of the recorded value-changed events in order.
func (r *Recorder) Values() []float64 {
	var values []float64
	for _, ev := range r.Events {
		if ev.Kind == slider.EventValueChanged {
			values = append(values, ev.Value)
		}
	}

	return values
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind slider.EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}

	return n
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
