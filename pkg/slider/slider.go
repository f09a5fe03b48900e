package slider

import (
	"fmt"
	"log/slog"

	"github.com/alkime/slidebar/pkg/uictl"
)

// Slider picks a value from a continuous range. See the package
// documentation for its collaborators and threading rules.
type Slider struct {
	model RangeModel
	axis  Axis

	track     Track
	redrawer  Redrawer
	capturer  Capturer
	formatter LabelFormatter
	listeners *Registry
	logger    *slog.Logger

	state       State
	repeat      keyRepeat
	focused     bool
	highlighted bool
	lastPointer *Point

	numLabels int
	numTicks  int

	initial    float64
	hasInitial bool
}

var _ uictl.CappedDial[float64] = (*Slider)(nil)

// New creates a slider over [minValue, maxValue]. The value starts at
// minValue unless WithValue says otherwise.
func New(minValue, maxValue float64, opts ...Option) (*Slider, error) {
	s := &Slider{
		model:  RangeModel{min: minValue, max: maxValue, step: 1, current: minValue},
		axis:   Horizontal,
		repeat: newKeyRepeat(),
		state:  Idle,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.model.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create slider: %w", err)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.track == nil {
		s.track = nopCollaborator{}
	}
	if s.redrawer == nil {
		s.redrawer = nopCollaborator{}
	}
	if s.capturer == nil {
		s.capturer = nopCollaborator{}
	}
	s.listeners = NewRegistry(s.logger)

	if s.hasInitial {
		s.model.Set(s.initial)
	} else {
		s.model.Set(minValue)
	}

	return s, nil
}

// CurrentValue returns the current value.
func (s *Slider) CurrentValue() float64 { return s.model.Current() }

// MinValue returns the lower bound.
func (s *Slider) MinValue() float64 { return s.model.Min() }

// MaxValue returns the upper bound.
func (s *Slider) MaxValue() float64 { return s.model.Max() }

// StepSize returns the quantization step.
func (s *Slider) StepSize() float64 { return s.model.Step() }

// TotalRange returns MaxValue - MinValue, or 0 for an inverted range.
func (s *Slider) TotalRange() float64 { return s.model.TotalRange() }

// KnobFraction returns the knob position along the track in [0, 1].
func (s *Slider) KnobFraction() float64 { return s.model.Fraction() }

// Axis returns the track orientation.
func (s *Slider) Axis() Axis { return s.axis }

// State returns the current drag state.
func (s *Slider) State() State { return s.state }

// Sliding reports whether a pointer or keyboard drag is in progress.
func (s *Slider) Sliding() bool { return s.state != Idle }

// Highlighted reports whether the knob is drawn in its sliding style.
func (s *Slider) Highlighted() bool { return s.highlighted }

// Focused reports whether the slider has input focus.
func (s *Slider) Focused() bool { return s.focused }

// Read implements uictl.Dial.
func (s *Slider) Read() float64 { return s.CurrentValue() }

// Cap implements uictl.CappedDial.
func (s *Slider) Cap() (num, maxValue float64) { return s.CurrentValue(), s.MaxValue() }

// Subscribe registers l for slider events.
func (s *Slider) Subscribe(l Listener) error {
	return s.listeners.Subscribe(l)
}

// Unsubscribe removes l.
func (s *Slider) Unsubscribe(l Listener) {
	s.listeners.Unsubscribe(l)
}

// SetCurrentValue clamps and quantizes v, redraws the knob and fires
// OnValueChanged. The event fires even when the value does not change.
func (s *Slider) SetCurrentValue(v float64) {
	s.setCurrentValue(v, true)
}

// SetCurrentValueQuiet is SetCurrentValue without the event.
func (s *Slider) SetCurrentValueQuiet(v float64) {
	s.setCurrentValue(v, false)
}

func (s *Slider) setCurrentValue(v float64, fireEvent bool) {
	s.model.Set(v)
	s.redrawer.RequestRedraw(PartKnob)

	if fireEvent {
		s.listeners.NotifyValueChanged(s, s.model.Current())
	}
}

// SetMinValue changes the lower bound, relabels, then re-applies the
// current value (which fires OnValueChanged).
func (s *Slider) SetMinValue(v float64) {
	s.model.min = v
	s.redrawer.RequestRedraw(PartLabels)
	s.resetCurrentValue()
}

// SetMaxValue changes the upper bound, relabels, then re-applies the
// current value (which fires OnValueChanged).
func (s *Slider) SetMaxValue(v float64) {
	s.model.max = v
	s.redrawer.RequestRedraw(PartLabels)
	s.resetCurrentValue()
}

// SetStepSize changes the step and re-applies the current value. The step
// must be positive; a non-positive step is a caller error with undefined
// quantization.
func (s *Slider) SetStepSize(v float64) {
	s.model.step = v
	s.resetCurrentValue()
}

func (s *Slider) resetCurrentValue() {
	s.SetCurrentValue(s.model.Current())
}

// ShiftTowardMin moves the value numSteps steps toward the minimum.
func (s *Slider) ShiftTowardMin(numSteps int) {
	s.shift(TowardMin, float64(numSteps))
}

// ShiftTowardMax moves the value numSteps steps toward the maximum.
func (s *Slider) ShiftTowardMax(numSteps int) {
	s.shift(TowardMax, float64(numSteps))
}

func (s *Slider) shift(d Direction, numSteps float64) {
	s.SetCurrentValue(s.model.Current() + float64(d)*numSteps*s.model.Step())
}

// FormatLabel renders value with the configured LabelFormatter.
func (s *Slider) FormatLabel(value float64) string {
	if s.formatter != nil {
		return s.formatter.FormatLabel(s, value)
	}

	return DefaultFormatLabel(value)
}

// SetLabelFormatter replaces the label formatter; nil restores the default.
func (s *Slider) SetLabelFormatter(f LabelFormatter) {
	s.formatter = f
	s.redrawer.RequestRedraw(PartLabels)
}

// Redraw asks the renderer to redraw everything, e.g. after a resize.
func (s *Slider) Redraw() {
	s.redrawer.RequestRedraw(PartAll)
}
