package slider_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alkime/slidebar/pkg/slider"
	"github.com/alkime/slidebar/pkg/slider/slidertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceListener has a non-comparable dynamic type.
type sliceListener []string

func (sliceListener) OnStartSliding(*slider.Slider)          {}
func (sliceListener) OnStopSliding(*slider.Slider)           {}
func (sliceListener) OnValueChanged(*slider.Slider, float64) {}

// boxListener has a comparable type but may carry a non-comparable value.
type boxListener struct {
	payload any
}

func (boxListener) OnStartSliding(*slider.Slider)          {}
func (boxListener) OnStopSliding(*slider.Slider)           {}
func (boxListener) OnValueChanged(*slider.Slider, float64) {}

func TestRegistry(t *testing.T) {
	t.Run("delivers in subscription order", func(t *testing.T) {
		s, err := slider.New(0, 10)
		require.NoError(t, err)

		var order []string
		first := &slider.ListenerFuncs{ValueChanged: func(*slider.Slider, float64) { order = append(order, "first") }}
		second := &slider.ListenerFuncs{ValueChanged: func(*slider.Slider, float64) { order = append(order, "second") }}

		require.NoError(t, s.Subscribe(first))
		require.NoError(t, s.Subscribe(second))
		s.SetCurrentValue(3)

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("subscribe is idempotent", func(t *testing.T) {
		s, err := slider.New(0, 10)
		require.NoError(t, err)
		rec := &slidertest.Recorder{}

		require.NoError(t, s.Subscribe(rec))
		require.NoError(t, s.Subscribe(rec))
		s.SetCurrentValue(3)

		assert.Len(t, rec.Events, 1)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		s, err := slider.New(0, 10)
		require.NoError(t, err)
		rec := &slidertest.Recorder{}

		require.NoError(t, s.Subscribe(rec))
		s.Unsubscribe(rec)
		s.Unsubscribe(rec)
		s.SetCurrentValue(3)

		assert.Empty(t, rec.Events)
	})

	t.Run("rejects nil and non-comparable listeners", func(t *testing.T) {
		r := slider.NewRegistry(nil)

		require.ErrorIs(t, r.Subscribe(nil), slider.ErrNilListener)
		require.ErrorIs(t, r.Subscribe(sliceListener{"a"}), slider.ErrListenerNotComparable)
		assert.Zero(t, r.Len())

		r.Unsubscribe(sliceListener{"a"})
		r.Unsubscribe(nil)
	})

	t.Run("rejects comparable types holding non-comparable values", func(t *testing.T) {
		r := slider.NewRegistry(nil)

		require.NoError(t, r.Subscribe(boxListener{payload: 1}))
		assert.NotPanics(t, func() {
			require.ErrorIs(t, r.Subscribe(boxListener{payload: []int{0}}), slider.ErrListenerNotComparable)
			require.ErrorIs(t, r.Subscribe(boxListener{payload: []int{1}}), slider.ErrListenerNotComparable)
			r.Unsubscribe(boxListener{payload: []int{0}})
		})
		assert.Equal(t, 1, r.Len())

		r.Unsubscribe(boxListener{payload: 1})
		assert.Zero(t, r.Len())
	})

	t.Run("a panicking listener does not stop delivery", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		s, err := slider.New(0, 10, slider.WithLogger(logger))
		require.NoError(t, err)

		bad := &slider.ListenerFuncs{ValueChanged: func(*slider.Slider, float64) { panic("boom") }}
		rec := &slidertest.Recorder{}
		require.NoError(t, s.Subscribe(bad))
		require.NoError(t, s.Subscribe(rec))

		assert.NotPanics(t, func() { s.SetCurrentValue(4) })
		assert.Equal(t, []float64{4}, rec.Values())
		assert.Contains(t, buf.String(), "slider listener panicked")
		assert.Contains(t, buf.String(), "boom")
		assert.Contains(t, buf.String(), `"event":"value_changed"`)
	})

	t.Run("unsubscribing during delivery finishes the current event", func(t *testing.T) {
		s, err := slider.New(0, 10)
		require.NoError(t, err)
		rec := &slidertest.Recorder{}

		remover := &slider.ListenerFuncs{}
		remover.ValueChanged = func(s *slider.Slider, _ float64) {
			s.Unsubscribe(rec)
			s.Unsubscribe(remover)
		}
		require.NoError(t, s.Subscribe(remover))
		require.NoError(t, s.Subscribe(rec))

		s.SetCurrentValue(1)
		s.SetCurrentValue(2)

		assert.Equal(t, []float64{1}, rec.Values())
	})

	t.Run("nil callbacks are skipped", func(t *testing.T) {
		s, err := slider.New(0, 10, slider.WithScheduler(slidertest.NewManualScheduler()))
		require.NoError(t, err)
		require.NoError(t, s.Subscribe(&slider.ListenerFuncs{}))

		assert.NotPanics(t, func() {
			s.OnKeyDown(slider.KeyRight, false)
			s.OnKeyUp(slider.KeyRight)
		})
	})
}
