// Package config loads slidebar settings from the environment, an optional
// .env file and YAML presets.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alkime/slidebar/pkg/slider"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvDevelopment turns on debug logging.
	EnvDevelopment = "development"

	// Prefix is prepended to every environment variable, e.g. SLIDEBAR_MAX.
	Prefix = "SLIDEBAR"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application configuration.
type Config struct {
	// Environment and logging
	Env      string `envconfig:"ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"slidebar.log"`

	// Slider range
	Min   float64 `envconfig:"MIN" default:"0"`
	Max   float64 `envconfig:"MAX" default:"100"`
	Step  float64 `envconfig:"STEP" default:"1"`
	Value float64 `envconfig:"VALUE" default:"0"`

	// Presentation
	Title  string `envconfig:"TITLE" default:"Value"`
	Axis   string `envconfig:"AXIS" default:"horizontal"`
	Labels int    `envconfig:"LABELS" default:"4"`
	Ticks  int    `envconfig:"TICKS" default:"10"`
	Width  int    `envconfig:"WIDTH" default:"40"`
	Height int    `envconfig:"HEIGHT" default:"10"`

	// KeyRelease is how long a key counts as held after the terminal last
	// reported it.
	KeyRelease time.Duration `envconfig:"KEY_RELEASE" default:"120ms"`
	// KeyHold is the held window after a fresh press, before the terminal's
	// first auto-repeat. Raise it if the OS repeat delay is longer.
	KeyHold time.Duration `envconfig:"KEY_HOLD" default:"600ms"`
}

// LoadConfig loads configuration from .env files and environment
// variables. With no files it tries ./.env. Variables already set in the
// environment win over .env values.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		// a missing .env is expected outside development
		if !os.IsNotExist(err) {
			slog.Warn("failed to load .env file", "error", err)
		}
	}

	var config Config
	if err := envconfig.Process(Prefix, &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// Validate checks the settings a slider cannot start without.
func (c *Config) Validate() error {
	if !(c.Step > 0) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidConfig, c.Step)
	}

	if _, err := slider.ParseAxis(c.Axis); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Labels < 0 || c.Ticks < 0 {
		return fmt.Errorf("%w: labels and ticks cannot be negative", ErrInvalidConfig)
	}

	return nil
}

// SliderAxis returns the parsed axis, Horizontal when it does not parse.
func (c *Config) SliderAxis() slider.Axis {
	a, _ := slider.ParseAxis(c.Axis)
	return a
}

// Length returns the track length in cells for the configured axis.
func (c *Config) Length() int {
	if c.SliderAxis() == slider.Vertical {
		return c.Height
	}

	return c.Width
}

// SliderOptions translates the config into core options.
func (c *Config) SliderOptions() []slider.Option {
	return []slider.Option{
		slider.WithAxis(c.SliderAxis()),
		slider.WithStepSize(c.Step),
		slider.WithValue(c.Value),
		slider.WithNumLabels(c.Labels),
		slider.WithNumTicks(c.Ticks),
	}
}
