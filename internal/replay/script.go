// Package replay drives a slider headlessly from a YAML script of input
// events, on a real-time event loop.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alkime/slidebar/pkg/slider"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that parse but cannot run.
var ErrInvalidScript = errors.New("invalid replay script")

// Script is a slider setup plus the input to feed it.
type Script struct {
	Slider SliderSpec `yaml:"slider"`
	Track  TrackSpec  `yaml:"track"`
	Steps  []Step     `yaml:"steps"`
}

// SliderSpec configures the slider under test.
type SliderSpec struct {
	Min   float64  `yaml:"min"`
	Max   float64  `yaml:"max"`
	Step  float64  `yaml:"step"`
	Value *float64 `yaml:"value"`
	Axis  string   `yaml:"axis"`
}

// TrackSpec is the on-screen track rectangle pointer steps refer to.
type TrackSpec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointerStep is a pointer sample.
type PointerStep struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// KeyStep is a key press or release.
type KeyStep struct {
	Key  string `yaml:"key"`
	Ctrl bool   `yaml:"ctrl"`
}

// Step is one input event. Exactly one field is set. In YAML a step is
// either a mapping such as `pointer_down: {x: 10}` or one of the bare
// words `focus` and `blur`.
type Step struct {
	PointerDown *PointerStep   `yaml:"pointer_down"`
	PointerMove *PointerStep   `yaml:"pointer_move"`
	PointerUp   *PointerStep   `yaml:"pointer_up"`
	Wheel       *int           `yaml:"wheel"`
	KeyDown     *KeyStep       `yaml:"key_down"`
	KeyUp       *KeyStep       `yaml:"key_up"`
	Wait        *time.Duration `yaml:"wait"`
	Focus       bool           `yaml:"focus"`
	Blur        bool           `yaml:"blur"`
}

// UnmarshalYAML accepts the bare-word form of focus and blur.
func (st *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		switch strings.TrimSpace(node.Value) {
		case "focus":
			*st = Step{Focus: true}
			return nil
		case "blur":
			*st = Step{Blur: true}
			return nil
		}

		return fmt.Errorf("line %d: unknown step %q", node.Line, node.Value)
	}

	type plain Step
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*st = Step(p)

	return nil
}

func (st Step) kinds() []string {
	var kinds []string
	add := func(set bool, name string) {
		if set {
			kinds = append(kinds, name)
		}
	}

	add(st.PointerDown != nil, "pointer_down")
	add(st.PointerMove != nil, "pointer_move")
	add(st.PointerUp != nil, "pointer_up")
	add(st.Wheel != nil, "wheel")
	add(st.KeyDown != nil, "key_down")
	add(st.KeyUp != nil, "key_up")
	add(st.Wait != nil, "wait")
	add(st.Focus, "focus")
	add(st.Blur, "blur")

	return kinds
}

// String names the step for logs.
func (st Step) String() string {
	return strings.Join(st.kinds(), "+")
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay script: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a script. A missing step size defaults to 1.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", ErrInvalidScript)
		}
		return nil, fmt.Errorf("failed to decode replay script: %w", err)
	}

	if s.Slider.Step == 0 {
		s.Slider.Step = 1
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks that every step names one known action.
func (s *Script) Validate() error {
	if _, err := slider.ParseAxis(axisOrDefault(s.Slider.Axis)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	for i, st := range s.Steps {
		kinds := st.kinds()
		if len(kinds) != 1 {
			return fmt.Errorf("%w: step %d must have exactly one action, has %d", ErrInvalidScript, i+1, len(kinds))
		}

		for _, ks := range []*KeyStep{st.KeyDown, st.KeyUp} {
			if ks == nil {
				continue
			}
			if _, err := slider.ParseKey(ks.Key); err != nil {
				return fmt.Errorf("%w: step %d: %w", ErrInvalidScript, i+1, err)
			}
		}

		if st.Wait != nil && *st.Wait < 0 {
			return fmt.Errorf("%w: step %d: negative wait", ErrInvalidScript, i+1)
		}
	}

	return nil
}

func axisOrDefault(axis string) string {
	if axis == "" {
		return slider.Horizontal.String()
	}

	return axis
}
