package slider

import (
	"fmt"
	"math"

	"github.com/alkime/slidebar/pkg/uictl"
)

// RangeModel holds the bounds, step and current value of a slider.
//
// The current value always lies in [Min, Max] and, except possibly at Max,
// on the grid Min + k*Step. Min > Max is legal: the usable range collapses
// to zero and the value is pinned at Min.
//
// RangeModel has no side effects; Slider layers redraw requests and
// listener notifications on top of it.
type RangeModel struct {
	min, max float64
	step     float64
	current  float64
}

// NewRangeModel creates a model over [minValue, maxValue] with a step of 1.
func NewRangeModel(minValue, maxValue float64) RangeModel {
	rm := RangeModel{
		min:  minValue,
		max:  maxValue,
		step: 1,
	}
	rm.Set(minValue)

	return rm
}

// Min returns the lower bound.
func (rm RangeModel) Min() float64 { return rm.min }

// Max returns the upper bound.
func (rm RangeModel) Max() float64 { return rm.max }

// Step returns the quantization step.
func (rm RangeModel) Step() float64 { return rm.step }

// Current returns the current value.
func (rm RangeModel) Current() float64 { return rm.current }

// Quantize applies the clamp and snap rule to v without storing it.
//
// The value is clamped to [Min, Max]. A value clamped onto Max is kept even
// when Max is off the grid. Anything else is snapped down to the step grid,
// then advanced one step when the remainder is strictly more than half a
// step and the advanced value does not pass Max.
func (rm RangeModel) Quantize(v float64) float64 {
	c := math.Max(rm.min, math.Min(rm.max, v))
	if c == rm.max {
		return c
	}

	remainder := math.Mod(c-rm.min, rm.step)
	c -= remainder

	if remainder > rm.step/2 && c+rm.step <= rm.max {
		c += rm.step
	}

	return c
}

// Set stores the quantized form of v and returns it.
func (rm *RangeModel) Set(v float64) float64 {
	rm.current = rm.Quantize(v)
	return rm.current
}

// SetMin updates the lower bound and re-quantizes the current value.
func (rm *RangeModel) SetMin(v float64) {
	rm.min = v
	rm.Set(rm.current)
}

// SetMax updates the upper bound and re-quantizes the current value.
func (rm *RangeModel) SetMax(v float64) {
	rm.max = v
	rm.Set(rm.current)
}

// SetStep updates the step and re-quantizes the current value.
//
// The step must be positive. A non-positive step is a caller error; the
// model does not reject it here (see Validate), and quantization results
// are undefined until a valid step is set.
func (rm *RangeModel) SetStep(v float64) {
	rm.step = v
	rm.Set(rm.current)
}

// Validate reports whether the step precondition holds.
func (rm RangeModel) Validate() error {
	if !(rm.step > 0) || math.IsInf(rm.step, 1) {
		return fmt.Errorf("step %v: %w", rm.step, ErrInvalidStep)
	}

	return nil
}

// TotalRange returns Max - Min, or 0 when Min > Max.
func (rm RangeModel) TotalRange() float64 {
	if rm.min > rm.max {
		return 0
	}

	return rm.max - rm.min
}

// Fraction returns the position of the current value in [0, 1]. It is 0
// when the range is empty or inverted.
func (rm RangeModel) Fraction() float64 {
	if rm.max <= rm.min {
		return 0
	}

	return uictl.Clamp((rm.current-rm.min)/(rm.max-rm.min), 0, 1)
}

// Midpoint returns Min + TotalRange()/2.
func (rm RangeModel) Midpoint() float64 {
	return rm.min + rm.TotalRange()/2
}

// CtrlMultiplier returns the number of steps a modified key press jumps,
// roughly a tenth of the range. It never drops below one step. The count
// stays a float64 so very large ranges do not overflow an int.
func (rm RangeModel) CtrlMultiplier() float64 {
	return math.Max(1, math.Floor(rm.TotalRange()/rm.step/10))
}
