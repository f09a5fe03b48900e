package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset overrides slider settings from a YAML file. Absent keys leave the
// configured value alone.
type Preset struct {
	Title  *string  `yaml:"title"`
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
	Step   *float64 `yaml:"step"`
	Value  *float64 `yaml:"value"`
	Axis   *string  `yaml:"axis"`
	Labels *int     `yaml:"labels"`
	Ticks  *int     `yaml:"ticks"`
	Width  *int     `yaml:"width"`
	Height *int     `yaml:"height"`
}

// LoadPreset reads a preset file.
func LoadPreset(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset: %w", err)
	}
	defer f.Close()

	return ParsePreset(f)
}

// ParsePreset decodes a preset, rejecting unknown keys.
func ParsePreset(r io.Reader) (*Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Preset
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode preset: %w", err)
	}

	return &p, nil
}

// Apply copies every set field of p onto c.
func (p *Preset) Apply(c *Config) {
	set(&c.Title, p.Title)
	set(&c.Min, p.Min)
	set(&c.Max, p.Max)
	set(&c.Step, p.Step)
	set(&c.Value, p.Value)
	set(&c.Axis, p.Axis)
	set(&c.Labels, p.Labels)
	set(&c.Ticks, p.Ticks)
	set(&c.Width, p.Width)
	set(&c.Height, p.Height)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
