package slider

import "time"

const (
	// DefaultRepeatDelay is the wait between a directional key press and the
	// first repeated step.
	DefaultRepeatDelay = 400 * time.Millisecond
	// DefaultRepeatInterval is the wait between steady repeated steps.
	DefaultRepeatInterval = 30 * time.Millisecond
)

// keyRepeat keeps shifting the knob while a directional key is held. Each
// arm replaces the pending task with a fresh one carrying new parameters;
// gen guards against a task that was already dispatched when it was
// cancelled.
type keyRepeat struct {
	sched    Scheduler
	delay    time.Duration
	interval time.Duration

	timer      Timer
	gen        uint64
	firstRun   bool
	direction  Direction
	multiplier float64
}

func newKeyRepeat() keyRepeat {
	return keyRepeat{
		delay:    DefaultRepeatDelay,
		interval: DefaultRepeatInterval,
	}
}

// cancel stops the pending task. Safe to call when nothing is armed.
func (kr *keyRepeat) cancel() {
	kr.gen++
	if kr.timer != nil {
		kr.timer.Stop()
		kr.timer = nil
	}
}

// arm schedules the first repeat after the initial delay.
func (kr *keyRepeat) arm(direction Direction, multiplier float64, fire func()) {
	kr.cancel()
	kr.firstRun = true
	kr.direction = direction
	kr.multiplier = multiplier
	kr.schedule(kr.delay, fire)
}

func (kr *keyRepeat) schedule(d time.Duration, fire func()) {
	if kr.sched == nil {
		return
	}

	gen := kr.gen
	kr.timer = kr.sched.AfterFunc(d, func() {
		if gen != kr.gen {
			return
		}
		kr.timer = nil
		fire()
	})
}

// onRepeat is the repeat task body: highlight on the first run, shift by
// multiplier steps, then reschedule at the steady interval.
func (s *Slider) onRepeat() {
	if s.state != DraggingByKeyboard {
		return
	}

	kr := &s.repeat
	gen := kr.gen

	if kr.firstRun {
		kr.firstRun = false
		s.startSliding(true, false)
	}

	s.shift(kr.direction, kr.multiplier)

	// a listener may have released or re-armed the key during the shift
	if gen != kr.gen || s.state != DraggingByKeyboard {
		return
	}

	kr.schedule(kr.interval, s.onRepeat)
}
