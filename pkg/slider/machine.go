package slider

import "fmt"

// State is the drag state of a slider. A pointer drag and a keyboard drag
// are never active at once: both are entered only from Idle.
type State int

const (
	Idle State = iota
	DraggingByPointer
	DraggingByKeyboard
)

func (st State) String() string {
	switch st {
	case Idle:
		return "idle"
	case DraggingByPointer:
		return "dragging_by_pointer"
	case DraggingByKeyboard:
		return "dragging_by_keyboard"
	default:
		return fmt.Sprintf("State(%d)", int(st))
	}
}

func (s *Slider) setState(next State) {
	if s.state == next {
		return
	}

	s.logger.Debug("slider state changed",
		"from", s.state,
		"to", next,
		"value", s.model.Current(),
	)
	s.state = next
}

// OnPointerDown starts a pointer drag from Idle. Input during a keyboard
// drag or an existing pointer drag is ignored.
func (s *Slider) OnPointerDown(p Point) {
	if s.state != Idle {
		return
	}

	s.focus()
	s.lastPointer = nil
	s.setState(DraggingByPointer)
	s.capturer.Capture()
	s.startSliding(true, true)
	s.slideTo(p)
}

// OnPointerMove follows the pointer during a pointer drag.
func (s *Slider) OnPointerMove(p Point) {
	if s.state != DraggingByPointer {
		return
	}

	s.slideTo(p)
}

// OnPointerUp ends a pointer drag at p. The final value update is delivered
// before OnStopSliding.
func (s *Slider) OnPointerUp(p Point) {
	if s.state != DraggingByPointer {
		return
	}

	s.capturer.Release()
	s.setState(Idle)
	s.slideTo(p)
	s.stopSliding(true, true)
}

// OnWheel shifts one step: toward the maximum for a positive delta,
// otherwise toward the minimum. The drag state is unchanged.
func (s *Slider) OnWheel(delta int) {
	if delta > 0 {
		s.ShiftTowardMax(1)
	} else {
		s.ShiftTowardMin(1)
	}
}

// OnKeyDown handles a key press. ctrl multiplies a directional step to
// about a tenth of the range for as long as the key is held.
//
// Home, End and Space jump to the minimum, maximum and midpoint in any
// state. A directional key in Idle starts a keyboard drag: start is
// fired, the knob moves one step right away, and auto-repeat is armed. A
// directional key during a keyboard drag re-arms auto-repeat with the new
// direction and multiplier.
func (s *Slider) OnKeyDown(k Key, ctrl bool) {
	switch k {
	case KeyHome:
		s.SetCurrentValue(s.model.Min())
		return
	case KeyEnd:
		s.SetCurrentValue(s.model.Max())
		return
	case KeySpace:
		s.SetCurrentValue(s.model.Midpoint())
		return
	}

	dir, ok := k.direction()
	if !ok {
		return
	}

	multiplier := 1.0
	if ctrl {
		multiplier = s.model.CtrlMultiplier()
	}

	switch s.state {
	case Idle:
		s.setState(DraggingByKeyboard)
		// the highlight waits for the first repeat
		s.startSliding(false, true)
		s.shift(dir, multiplier)

		if s.state == DraggingByKeyboard {
			s.repeat.arm(dir, multiplier, s.onRepeat)
		}
	case DraggingByKeyboard:
		s.repeat.arm(dir, multiplier, s.onRepeat)
	case DraggingByPointer:
	}
}

// OnKeyUp cancels auto-repeat and ends a keyboard drag.
func (s *Slider) OnKeyUp(_ Key) {
	s.repeat.cancel()

	if s.state != DraggingByKeyboard {
		return
	}

	s.setState(Idle)
	s.stopSliding(true, true)
}

// OnFocus marks the slider focused.
func (s *Slider) OnFocus() {
	s.focus()
}

// OnBlur cancels auto-repeat, ends any drag and drops focus. A pointer drag
// ends as if the pointer were released at its last position.
func (s *Slider) OnBlur() {
	s.repeat.cancel()

	switch s.state {
	case DraggingByPointer:
		s.capturer.Release()
		s.setState(Idle)
		if s.lastPointer != nil {
			s.slideTo(*s.lastPointer)
		}
		s.stopSliding(true, true)
	case DraggingByKeyboard:
		s.setState(Idle)
		s.stopSliding(true, true)
	case Idle:
	}

	if s.focused {
		s.focused = false
		s.redrawer.RequestRedraw(PartHighlight)
	}
}

func (s *Slider) focus() {
	if s.focused {
		return
	}

	s.focused = true
	s.redrawer.RequestRedraw(PartHighlight)
}

// slideTo moves the knob under p. Samples with a non-positive coordinate
// are ignored; everything else is clamped by the range model.
func (s *Slider) slideTo(p Point) {
	if s.axis.Coord(p) <= 0 {
		return
	}

	last := p
	s.lastPointer = &last

	fraction := s.axis.Fraction(p, s.track.Bounds())
	s.SetCurrentValue(s.model.TotalRange()*fraction + s.model.Min())
}

func (s *Slider) startSliding(highlight, fireEvent bool) {
	if highlight && !s.highlighted {
		s.highlighted = true
		s.redrawer.RequestRedraw(PartHighlight)
	}

	if fireEvent {
		s.listeners.NotifyStart(s)
	}
}

func (s *Slider) stopSliding(unhighlight, fireEvent bool) {
	if unhighlight && s.highlighted {
		s.highlighted = false
		s.redrawer.RequestRedraw(PartHighlight)
	}

	if fireEvent {
		s.listeners.NotifyStop(s)
	}
}
