package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alkime/slidebar/pkg/slider"
)

const (
	eventBuffer  = 256
	eventTimeout = time.Second
)

// Result is the outcome of a replay.
type Result struct {
	Value   float64
	Events  int
	Dropped int
}

// Runner plays scripts.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a runner that writes one line per slider event to out.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{out: out, logger: logger}
}

// Run plays the script on a fresh event loop. Waits sleep in real time so
// keyboard auto-repeat fires between steps.
func (r *Runner) Run(ctx context.Context, script *Script) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("replay not started: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := slider.NewLoop()
	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(ctx) }()

	events := make(chan slider.Event, eventBuffer)
	listener := slider.NewChannelListenerWithTimeout(events, eventTimeout)

	written := make(chan int, 1)
	go func() { written <- r.write(events) }()

	var s *slider.Slider
	var setupErr error
	if err := loop.Do(func() {
		s, setupErr = r.newSlider(script, loop)
		if setupErr == nil {
			setupErr = s.Subscribe(listener)
		}
	}); err != nil {
		setupErr = err
	}
	if setupErr != nil {
		close(events)
		<-written

		return nil, fmt.Errorf("failed to start replay: %w", setupErr)
	}

	runErr := r.play(ctx, loop, s, script.Steps)

	res := &Result{}
	_ = loop.Do(func() {
		s.Unsubscribe(listener)
		res.Value = s.CurrentValue()
	})
	close(events)
	res.Events = <-written
	res.Dropped = listener.Dropped()

	cancel()
	if err := <-loopDone; err != nil && !errors.Is(err, context.Canceled) {
		return res, fmt.Errorf("replay loop failed: %w", err)
	}

	return res, runErr
}

func (r *Runner) newSlider(script *Script, loop *slider.Loop) (*slider.Slider, error) {
	axis, err := slider.ParseAxis(axisOrDefault(script.Slider.Axis))
	if err != nil {
		return nil, err
	}

	track := script.Track
	opts := []slider.Option{
		slider.WithAxis(axis),
		slider.WithStepSize(script.Slider.Step),
		slider.WithScheduler(loop),
		slider.WithLogger(r.logger),
		slider.WithTrack(slider.TrackFunc(func() slider.Bounds {
			return slider.Bounds{Left: track.Left, Top: track.Top, Width: track.Width, Height: track.Height}
		})),
	}
	if script.Slider.Value != nil {
		opts = append(opts, slider.WithValue(*script.Slider.Value))
	}

	return slider.New(script.Slider.Min, script.Slider.Max, opts...)
}

func (r *Runner) play(ctx context.Context, loop *slider.Loop, s *slider.Slider, steps []Step) error {
	for i, st := range steps {
		r.logger.Debug("replay step", "index", i+1, "step", st.String())

		if st.Wait != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("replay interrupted at step %d: %w", i+1, ctx.Err())
			case <-time.After(*st.Wait):
			}

			continue
		}

		if err := loop.Do(func() { apply(s, st) }); err != nil {
			return fmt.Errorf("failed to apply step %d: %w", i+1, err)
		}
	}

	return nil
}

// apply feeds one validated step to the slider.
func apply(s *slider.Slider, st Step) {
	switch {
	case st.PointerDown != nil:
		s.OnPointerDown(st.PointerDown.point())
	case st.PointerMove != nil:
		s.OnPointerMove(st.PointerMove.point())
	case st.PointerUp != nil:
		s.OnPointerUp(st.PointerUp.point())
	case st.Wheel != nil:
		s.OnWheel(*st.Wheel)
	case st.KeyDown != nil:
		k, _ := slider.ParseKey(st.KeyDown.Key)
		s.OnKeyDown(k, st.KeyDown.Ctrl)
	case st.KeyUp != nil:
		k, _ := slider.ParseKey(st.KeyUp.Key)
		s.OnKeyUp(k)
	case st.Focus:
		s.OnFocus()
	case st.Blur:
		s.OnBlur()
	}
}

func (p PointerStep) point() slider.Point {
	return slider.Point{X: p.X, Y: p.Y}
}

func (r *Runner) write(events <-chan slider.Event) int {
	n := 0
	for ev := range events {
		n++
		if _, err := fmt.Fprintf(r.out, "%s %s\n", ev.Kind, slider.DefaultFormatLabel(ev.Value)); err != nil {
			r.logger.Warn("failed to write replay event", "error", err)
		}
	}

	return n
}
