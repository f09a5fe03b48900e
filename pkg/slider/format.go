package slider

import (
	"math"
	"strconv"
)

// LabelFormatter turns a label value into display text.
type LabelFormatter interface {
	FormatLabel(s *Slider, value float64) string
}

// LabelFormatterFunc adapts a function to the LabelFormatter interface.
type LabelFormatterFunc func(s *Slider, value float64) string

// FormatLabel calls f.
func (f LabelFormatterFunc) FormatLabel(s *Slider, value float64) string {
	return f(s, value)
}

// DefaultFormatLabel truncates value to one decimal place toward zero and
// always prints that decimal, so 3 renders as "3.0" and -1.25 as "-1.2".
func DefaultFormatLabel(value float64) string {
	truncated := math.Trunc(10*value) / 10
	if truncated == 0 {
		// avoid "-0.0"
		truncated = 0
	}

	return strconv.FormatFloat(truncated, 'f', 1, 64)
}
