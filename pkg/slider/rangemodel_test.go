package slider_test

import (
	"math"
	"testing"

	"github.com/alkime/slidebar/pkg/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(minValue, maxValue, step float64) slider.RangeModel {
	rm := slider.NewRangeModel(minValue, maxValue)
	rm.SetStep(step)
	return rm
}

func TestRangeModel_Quantize(t *testing.T) {
	rm := newModel(0, 10, 3)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"remainder below half snaps down", 4, 3},
		{"remainder above half snaps up", 5, 6},
		{"exactly half rounds down", 4.5, 3},
		{"on grid", 9, 9},
		{"max stays off grid", 10, 10},
		{"near max cannot round past max", 9.9, 9},
		{"clamped onto max stays off grid", 11.5, 10},
		{"below min clamps", -4, 0},
		{"above max clamps", 42, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, rm.Quantize(tt.in), 1e-9)
		})
	}
}

func TestRangeModel_AlwaysInRange(t *testing.T) {
	rm := newModel(-2.5, 7.25, 0.5)

	for v := -20.0; v <= 20; v += 0.125 {
		got := rm.Set(v)
		require.GreaterOrEqual(t, got, rm.Min(), "value %v", v)
		require.LessOrEqual(t, got, rm.Max(), "value %v", v)
	}
}

func TestRangeModel_OffsetGrid(t *testing.T) {
	// the grid starts at min, not at zero
	rm := newModel(1, 11, 2)

	assert.InDelta(t, 3.0, rm.Set(3.9), 1e-9)
	assert.InDelta(t, 5.0, rm.Set(4.1), 1e-9)
}

func TestRangeModel_Degenerate(t *testing.T) {
	rm := slider.NewRangeModel(5, 2)

	assert.Zero(t, rm.TotalRange())
	assert.Zero(t, rm.Fraction())
	assert.InDelta(t, 5.0, rm.Set(3), 1e-9)
	assert.InDelta(t, 5.0, rm.Set(-100), 1e-9)
	assert.InDelta(t, 5.0, rm.Midpoint(), 1e-9)
}

func TestRangeModel_Fraction(t *testing.T) {
	rm := newModel(0, 10, 1)

	rm.Set(5)
	assert.InDelta(t, 0.5, rm.Fraction(), 1e-9)

	rm.Set(10)
	assert.InDelta(t, 1.0, rm.Fraction(), 1e-9)

	empty := slider.NewRangeModel(3, 3)
	assert.Zero(t, empty.Fraction())
}

func TestRangeModel_BoundChangesRequantize(t *testing.T) {
	rm := newModel(0, 10, 1)
	rm.Set(8)

	rm.SetMax(5)
	assert.InDelta(t, 5.0, rm.Current(), 1e-9)

	rm.SetMin(6)
	assert.InDelta(t, 6.0, rm.Current(), 1e-9, "inverted range pins to min")

	rm.SetMin(0)
	rm.SetMax(10)
	rm.SetStep(4)
	assert.InDelta(t, 4.0, rm.Current(), 1e-9)
}

func TestRangeModel_Validate(t *testing.T) {
	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		rm := slider.NewRangeModel(0, 10)
		rm.SetStep(step)
		assert.ErrorIs(t, rm.Validate(), slider.ErrInvalidStep, "step %v", step)
	}

	assert.NoError(t, newModel(0, 10, 0.1).Validate())
}

func TestRangeModel_CtrlMultiplier(t *testing.T) {
	assert.InDelta(t, 10, newModel(0, 100, 1).CtrlMultiplier(), 0)
	assert.InDelta(t, 3, newModel(0, 100, 3).CtrlMultiplier(), 0)
	assert.InDelta(t, 1, newModel(0, 5, 1).CtrlMultiplier(), 0, "never below one step")
	assert.InDelta(t, 1, slider.NewRangeModel(5, 2).CtrlMultiplier(), 0)
	assert.InDelta(t, 1e29, newModel(0, 1e30, 1).CtrlMultiplier(), 1e15, "no int overflow")
}
