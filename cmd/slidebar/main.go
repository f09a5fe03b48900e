package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/alkime/slidebar/internal/config"
	"github.com/alkime/slidebar/internal/logger"
	"github.com/alkime/slidebar/internal/replay"
	"github.com/alkime/slidebar/internal/tui"
	"github.com/alkime/slidebar/internal/tui/components/slider"
	core "github.com/alkime/slidebar/pkg/slider"
	tea "github.com/charmbracelet/bubbletea"
)

// Globals are the flags shared by every command. Flags override the preset,
// which overrides the environment.
type Globals struct {
	EnvFile string   `name:"env-file" default:".env" help:"Dotenv file to load"`
	Preset  string   `flag:"" optional:"" type:"existingfile" help:"YAML preset with slider settings"`
	Min     *float64 `flag:"" help:"Lower bound"`
	Max     *float64 `flag:"" help:"Upper bound"`
	Step    *float64 `flag:"" help:"Step size"`
	Value   *float64 `flag:"" help:"Initial value"`
	Axis    *string  `flag:"" help:"Track orientation: horizontal or vertical"`
	Labels  *int     `flag:"" help:"Number of label slots (0 disables)"`
	Ticks   *int     `flag:"" help:"Number of tick slots (0 disables)"`
}

// CLI defines the slidebar command structure.
type CLI struct {
	Globals

	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Launch the interactive slider"`

	// Subcommands
	Quantize QuantizeCmd `cmd:"" help:"Print how values snap onto the slider grid"`
	Labels   LabelsCmd   `cmd:"" help:"Print the label layout"`
	Replay   ReplayCmd   `cmd:"" help:"Replay a YAML input script headlessly"`
}

// settings resolves the configuration for a command.
func (g *Globals) settings() (*config.Config, error) {
	cfg, err := config.LoadConfig(g.EnvFile)
	if err != nil {
		return nil, err
	}

	if g.Preset != "" {
		preset, err := config.LoadPreset(g.Preset)
		if err != nil {
			return nil, err
		}
		preset.Apply(cfg)
	}

	flags := &config.Preset{
		Min:    g.Min,
		Max:    g.Max,
		Step:   g.Step,
		Value:  g.Value,
		Axis:   g.Axis,
		Labels: g.Labels,
		Ticks:  g.Ticks,
	}
	flags.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	Title string `flag:"" optional:"" help:"Slider title (default from SLIDEBAR_TITLE)"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(g *Globals, out io.Writer) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}
	if c.Title != "" {
		cfg.Title = c.Title
	}

	// the terminal belongs to the TUI, so logs go to a file
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logger.SetupLogger(cfg, logFile)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := append(cfg.SliderOptions(), core.WithLogger(log))
	component, err := slider.New(cfg.Min, cfg.Max, slider.Config{
		Title:      cfg.Title,
		Length:     cfg.Length(),
		KeyRelease: cfg.KeyRelease,
		KeyHold:    cfg.KeyHold,
	}, opts...)
	if err != nil {
		return err
	}

	app, err := tui.New(tui.Config{Cancel: cancel, Logger: log}, component)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	log.Info("slidebar started", "min", cfg.Min, "max", cfg.Max, "step", cfg.Step, "axis", cfg.Axis)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	value := component.Slider().FormatLabel(component.Value())
	log.Info("slidebar finished", "value", component.Value())
	fmt.Fprintln(out, value)

	return nil
}

// QuantizeCmd prints values after clamping and snapping.
type QuantizeCmd struct {
	Values []float64 `arg:"" help:"Values to quantize"`
}

// Run executes the quantize command.
func (c *QuantizeCmd) Run(g *Globals, out io.Writer) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}

	rm := core.NewRangeModel(cfg.Min, cfg.Max)
	rm.SetStep(cfg.Step)

	for _, v := range c.Values {
		fmt.Fprintf(out, "%g\t%g\n", v, rm.Quantize(v))
	}

	return nil
}

// LabelsCmd prints where labels and ticks fall on the track.
type LabelsCmd struct {
	ShowTicks bool `flag:"" help:"Also print tick fractions"`
}

// Run executes the labels command.
func (c *LabelsCmd) Run(g *Globals, out io.Writer) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}

	s, err := core.New(cfg.Min, cfg.Max, cfg.SliderOptions()...)
	if err != nil {
		return err
	}

	for _, l := range s.Labels() {
		fmt.Fprintf(out, "%.3f\t%g\t%s\n", l.Fraction, l.Value, l.Text)
	}

	if c.ShowTicks {
		for _, f := range s.Ticks() {
			fmt.Fprintf(out, "tick\t%.3f\n", f)
		}
	}

	return nil
}

// ReplayCmd plays an input script against a headless slider.
type ReplayCmd struct {
	Script string `arg:"" type:"existingfile" help:"YAML replay script"`
}

// Run executes the replay command.
func (c *ReplayCmd) Run(g *Globals, out io.Writer) error {
	cfg, err := g.settings()
	if err != nil {
		return err
	}

	script, err := replay.Load(c.Script)
	if err != nil {
		return err
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logger.Level(cfg),
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	res, err := replay.NewRunner(out, log).Run(ctx, script)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	log.Info("replay finished", "value", res.Value, "events", res.Events, "dropped", res.Dropped)

	return nil
}

func main() {
	// Set up text-based logger for CLI output
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("slidebar"),
		kong.Description("A draggable slider for the terminal."),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
