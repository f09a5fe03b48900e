// Package uictl defines the small control interfaces shared between value
// models and the components that render them.
package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp confines v to [lo, hi]. When lo > hi the result is lo.
func Clamp[N Number](v, lo, hi N) N {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}

	return v
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// CappedDial is a Dial with a maximum cap value.
type CappedDial[N Number] interface {
	Dial[N]
	Cap() (num, max N)
}

