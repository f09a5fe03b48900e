package slider

import (
	"log/slog"
	"time"
)

// Option configures a Slider at construction.
type Option func(*Slider)

// WithAxis sets the track orientation. The default is Horizontal.
func WithAxis(a Axis) Option {
	return func(s *Slider) { s.axis = a }
}

// WithStepSize sets the quantization step. It must be positive.
func WithStepSize(step float64) Option {
	return func(s *Slider) { s.model.step = step }
}

// WithValue sets the initial value. No event is fired for it.
func WithValue(v float64) Option {
	return func(s *Slider) {
		s.initial = v
		s.hasInitial = true
	}
}

// WithTrack sets the track geometry source used for pointer input.
func WithTrack(t Track) Option {
	return func(s *Slider) { s.track = t }
}

// WithRedrawer sets the collaborator notified of visual changes.
func WithRedrawer(r Redrawer) Option {
	return func(s *Slider) { s.redrawer = r }
}

// WithCapturer sets the collaborator that captures the pointer during a drag.
func WithCapturer(c Capturer) Option {
	return func(s *Slider) { s.capturer = c }
}

// WithLabelFormatter replaces the default one-decimal label text.
func WithLabelFormatter(f LabelFormatter) Option {
	return func(s *Slider) { s.formatter = f }
}

// WithScheduler enables keyboard auto-repeat. Without a scheduler a held
// key moves the knob only once per key press.
func WithScheduler(sched Scheduler) Option {
	return func(s *Slider) { s.repeat.sched = sched }
}

// WithRepeatDelays overrides the initial 400ms and steady 30ms auto-repeat
// delays.
func WithRepeatDelays(delay, interval time.Duration) Option {
	return func(s *Slider) {
		s.repeat.delay = delay
		s.repeat.interval = interval
	}
}

// WithNumLabels sets the number of label slots (see SetNumLabels).
func WithNumLabels(n int) Option {
	return func(s *Slider) { s.numLabels = max(0, n) }
}

// WithNumTicks sets the number of tick slots (see SetNumTicks).
func WithNumTicks(n int) Option {
	return func(s *Slider) { s.numTicks = max(0, n) }
}

// WithLogger sets the logger used for transitions and listener failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Slider) { s.logger = l }
}
