package slider_test

import (
	"context"
	"testing"
	"time"

	"github.com/alkime/slidebar/pkg/slider"
	"github.com/alkime/slidebar/pkg/slider/slidertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T) (*slider.Loop, context.CancelFunc) {
	t.Helper()

	loop := slider.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-errCh
	})

	return loop, cancel
}

func TestLoop(t *testing.T) {
	t.Run("runs posted funcs in order", func(t *testing.T) {
		loop, _ := runLoop(t)

		var got []int
		for i := 0; i < 5; i++ {
			i := i
			require.NoError(t, loop.Post(func() { got = append(got, i) }))
		}
		require.NoError(t, loop.Do(func() {}))

		assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})

	t.Run("rejects a second run", func(t *testing.T) {
		loop, _ := runLoop(t)
		require.NoError(t, loop.Do(func() {}))

		err := loop.Run(context.Background())
		require.Error(t, err)
	})

	t.Run("post after stop fails", func(t *testing.T) {
		loop := slider.NewLoop()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, loop.Run(ctx), context.Canceled)
		require.ErrorIs(t, loop.Post(func() {}), slider.ErrLoopStopped)
		require.ErrorIs(t, loop.Do(func() {}), slider.ErrLoopStopped)
	})

	t.Run("stopped timers never fire", func(t *testing.T) {
		loop, _ := runLoop(t)

		fired := make(chan struct{}, 1)
		var timer slider.Timer
		require.NoError(t, loop.Do(func() {
			timer = loop.AfterFunc(20*time.Millisecond, func() { fired <- struct{}{} })
		}))
		require.NoError(t, loop.Do(func() {
			assert.True(t, timer.Stop())
			assert.False(t, timer.Stop())
		}))

		select {
		case <-fired:
			t.Fatal("stopped timer fired")
		case <-time.After(60 * time.Millisecond):
		}
	})

	t.Run("drives keyboard repeat in real time", func(t *testing.T) {
		loop, _ := runLoop(t)

		var s *slider.Slider
		rec := &slidertest.Recorder{}
		require.NoError(t, loop.Do(func() {
			var err error
			s, err = slider.New(0, 100,
				slider.WithScheduler(loop),
				slider.WithRepeatDelays(10*time.Millisecond, 5*time.Millisecond),
			)
			require.NoError(t, err)
			require.NoError(t, s.Subscribe(rec))
			s.OnKeyDown(slider.KeyRight, false)
		}))

		require.Eventually(t, func() bool {
			var v float64
			_ = loop.Do(func() { v = s.CurrentValue() })
			return v >= 5
		}, time.Second, 5*time.Millisecond)

		var stopped int
		require.NoError(t, loop.Do(func() {
			s.OnKeyUp(slider.KeyRight)
			stopped = rec.Count(slider.EventStop)
		}))
		assert.Equal(t, 1, stopped)
	})
}
