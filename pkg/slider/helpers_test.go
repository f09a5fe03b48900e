package slider_test

import (
	"testing"

	"github.com/alkime/slidebar/pkg/slider"
	"github.com/alkime/slidebar/pkg/slider/slidertest"
	"github.com/stretchr/testify/require"
)

// fakeRenderer plays the presentation collaborator.
type fakeRenderer struct {
	bounds   slider.Bounds
	parts    []slider.Part
	captures int
	releases int
}

func (f *fakeRenderer) Bounds() slider.Bounds            { return f.bounds }
func (f *fakeRenderer) RequestRedraw(parts slider.Part) { f.parts = append(f.parts, parts) }
func (f *fakeRenderer) Capture()                        { f.captures++ }
func (f *fakeRenderer) Release()                        { f.releases++ }

func (f *fakeRenderer) redrew(part slider.Part) bool {
	for _, p := range f.parts {
		if p.Has(part) {
			return true
		}
	}
	return false
}

type fixture struct {
	s        *slider.Slider
	rec      *slidertest.Recorder
	renderer *fakeRenderer
	sched    *slidertest.ManualScheduler
}

// newFixture builds a horizontal slider whose track starts at x=10 and is
// 100 units long, so x = 10 + v maps to v on a 0..100 range.
func newFixture(t *testing.T, minValue, maxValue float64, opts ...slider.Option) fixture {
	t.Helper()

	renderer := &fakeRenderer{bounds: slider.Bounds{Left: 10, Top: 10, Width: 100, Height: 100}}
	sched := slidertest.NewManualScheduler()

	base := []slider.Option{
		slider.WithTrack(renderer),
		slider.WithRedrawer(renderer),
		slider.WithCapturer(renderer),
		slider.WithScheduler(sched),
	}

	s, err := slider.New(minValue, maxValue, append(base, opts...)...)
	require.NoError(t, err)

	rec := &slidertest.Recorder{}
	require.NoError(t, s.Subscribe(rec))

	return fixture{s: s, rec: rec, renderer: renderer, sched: sched}
}

func at(x float64) slider.Point {
	return slider.Point{X: x, Y: 50}
}
