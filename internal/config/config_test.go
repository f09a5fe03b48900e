package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alkime/slidebar/internal/config"
	"github.com/alkime/slidebar/pkg/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Env)
		assert.Zero(t, cfg.Min)
		assert.InDelta(t, 100.0, cfg.Max, 1e-9)
		assert.InDelta(t, 1.0, cfg.Step, 1e-9)
		assert.Equal(t, "horizontal", cfg.Axis)
		assert.Equal(t, 4, cfg.Labels)
		assert.Equal(t, 10, cfg.Ticks)
		assert.Equal(t, 40, cfg.Width)
		assert.Equal(t, 120*time.Millisecond, cfg.KeyRelease)
		assert.Equal(t, 600*time.Millisecond, cfg.KeyHold)
		assert.Equal(t, "slidebar.log", cfg.LogFile)
		require.NoError(t, cfg.Validate())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SLIDEBAR_MAX", "10")
		t.Setenv("SLIDEBAR_STEP", "0.5")
		t.Setenv("SLIDEBAR_AXIS", "vertical")
		t.Setenv("SLIDEBAR_KEY_RELEASE", "250ms")
		t.Setenv("SLIDEBAR_KEY_HOLD", "800ms")

		cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.InDelta(t, 10.0, cfg.Max, 1e-9)
		assert.InDelta(t, 0.5, cfg.Step, 1e-9)
		assert.Equal(t, slider.Vertical, cfg.SliderAxis())
		assert.Equal(t, cfg.Height, cfg.Length())
		assert.Equal(t, 250*time.Millisecond, cfg.KeyRelease)
		assert.Equal(t, 800*time.Millisecond, cfg.KeyHold)
	})

	t.Run("dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SLIDEBAR_MIN=5\nSLIDEBAR_TITLE=Gain\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("SLIDEBAR_MIN")
			os.Unsetenv("SLIDEBAR_TITLE")
		})

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)

		assert.InDelta(t, 5.0, cfg.Min, 1e-9)
		assert.Equal(t, "Gain", cfg.Title)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Setenv("SLIDEBAR_MAX", "lots")

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{Step: 1, Axis: "h", Width: 10, Height: 10}
	}

	require.NoError(t, valid().Validate())

	for name, mutate := range map[string]func(*config.Config){
		"zero step":      func(c *config.Config) { c.Step = 0 },
		"negative step":  func(c *config.Config) { c.Step = -1 },
		"unknown axis":   func(c *config.Config) { c.Axis = "diagonal" },
		"negative ticks": func(c *config.Config) { c.Ticks = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestSliderOptions(t *testing.T) {
	cfg := &config.Config{Min: 0, Max: 10, Step: 3, Value: 5, Axis: "vertical", Labels: 2, Ticks: 5}

	s, err := slider.New(cfg.Min, cfg.Max, cfg.SliderOptions()...)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, s.CurrentValue(), 1e-9)
	assert.Equal(t, slider.Vertical, s.Axis())
	assert.Equal(t, 2, s.NumLabels())
	assert.Equal(t, 5, s.NumTicks())
}

func TestPreset(t *testing.T) {
	t.Run("overrides only what it sets", func(t *testing.T) {
		p, err := config.ParsePreset(strings.NewReader("title: Pan\nmin: -1\nmax: 1\nstep: 0.1\n"))
		require.NoError(t, err)

		cfg := &config.Config{Title: "Value", Min: 0, Max: 100, Step: 1, Axis: "horizontal", Width: 40}
		p.Apply(cfg)

		assert.Equal(t, "Pan", cfg.Title)
		assert.InDelta(t, -1.0, cfg.Min, 1e-9)
		assert.InDelta(t, 1.0, cfg.Max, 1e-9)
		assert.InDelta(t, 0.1, cfg.Step, 1e-9)
		assert.Equal(t, "horizontal", cfg.Axis)
		assert.Equal(t, 40, cfg.Width)
	})

	t.Run("empty document", func(t *testing.T) {
		p, err := config.ParsePreset(strings.NewReader(""))
		require.NoError(t, err)

		cfg := &config.Config{Max: 100}
		p.Apply(cfg)
		assert.InDelta(t, 100.0, cfg.Max, 1e-9)
	})

	t.Run("unknown keys fail", func(t *testing.T) {
		_, err := config.ParsePreset(strings.NewReader("maximum: 3\n"))
		require.Error(t, err)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preset.yaml")
		require.NoError(t, os.WriteFile(path, []byte("axis: vertical\nheight: 12\n"), 0o600))

		p, err := config.LoadPreset(path)
		require.NoError(t, err)

		cfg := &config.Config{}
		p.Apply(cfg)
		assert.Equal(t, "vertical", cfg.Axis)
		assert.Equal(t, 12, cfg.Height)

		_, err = config.LoadPreset(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
