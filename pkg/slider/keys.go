package slider

import (
	"fmt"
	"strings"
)

// Key is a keyboard key the slider reacts to. Renderers translate their
// native key events into these.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeySpace
)

var keyNames = map[Key]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyHome:  "home",
	KeyEnd:   "end",
	KeySpace: "space",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey is the inverse of Key.String.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s && k != KeyNone {
			return k, nil
		}
	}

	return KeyNone, fmt.Errorf("unknown key %q", s)
}

// Direction is the way a shift moves the value.
type Direction int

const (
	TowardMin Direction = -1
	TowardMax Direction = 1
)

func (d Direction) String() string {
	if d == TowardMin {
		return "toward_min"
	}

	return "toward_max"
}

// direction reports the shift direction of a directional key. Left and up
// move toward the minimum on both axes (the top of a vertical track is the
// minimum); right and down move toward the maximum.
func (k Key) direction() (Direction, bool) {
	switch k {
	case KeyLeft, KeyUp:
		return TowardMin, true
	case KeyRight, KeyDown:
		return TowardMax, true
	default:
		return 0, false
	}
}
