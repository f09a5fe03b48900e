package slider

import "github.com/alkime/slidebar/pkg/collections"

// Label is a value marker along the track.
type Label struct {
	Value    float64
	Fraction float64
	Text     string
}

// NumLabels returns the number of label slots.
func (s *Slider) NumLabels() int { return s.numLabels }

// NumTicks returns the number of tick slots.
func (s *Slider) NumTicks() int { return s.numTicks }

// SetNumLabels sets the number of slots between labels. n slots give n+1
// labels, one at each end and n-1 in between; 0 disables labels. Setting
// it to TotalRange()/StepSize() lines the labels up with the knob stops.
func (s *Slider) SetNumLabels(n int) {
	s.numLabels = max(0, n)
	s.redrawer.RequestRedraw(PartLabels)
}

// SetNumTicks sets the number of slots between tick marks, with the same
// counting as SetNumLabels; 0 disables ticks.
func (s *Slider) SetNumTicks(n int) {
	s.numTicks = max(0, n)
	s.redrawer.RequestRedraw(PartTicks)
}

// Labels lays out the labels from the minimum to the maximum.
func (s *Slider) Labels() []Label {
	if s.numLabels <= 0 {
		return nil
	}

	n := s.numLabels

	return collections.Apply(collections.Indices(n+1), func(i int) Label {
		value := s.model.Min() + s.model.TotalRange()*float64(i)/float64(n)

		return Label{
			Value:    value,
			Fraction: float64(i) / float64(n),
			Text:     s.FormatLabel(value),
		}
	})
}

// Ticks returns the fraction of each tick mark along the track.
func (s *Slider) Ticks() []float64 {
	if s.numTicks <= 0 {
		return nil
	}

	n := s.numTicks

	return collections.Apply(collections.Indices(n+1), func(i int) float64 {
		return float64(i) / float64(n)
	})
}
