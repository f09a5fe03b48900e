// Package tui hosts the interactive slider program.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alkime/slidebar/internal/tui/components/slider"
	"github.com/alkime/slidebar/internal/tui/style"
	core "github.com/alkime/slidebar/pkg/slider"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultMaxEvents = 5
	headerRows       = 2
)

// Config holds the program settings.
type Config struct {
	Cancel    context.CancelFunc
	Logger    *slog.Logger
	MaxEvents int
}

// Model is the root model: one slider plus a log of its recent events.
type Model struct {
	config Config
	keys   KeyMap
	slider *slider.Model
	events []string
}

// New wraps a slider component in the root model and subscribes to its
// events.
func New(config Config, s *slider.Model) (*Model, error) {
	if config.MaxEvents <= 0 {
		config.MaxEvents = defaultMaxEvents
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	m := &Model{
		config: config,
		keys:   DefaultKeyMap(),
		slider: s,
	}

	// the slider is drawn below the header
	s.SetOrigin(0, headerRows)

	err := s.Slider().Subscribe(&core.ListenerFuncs{
		Start: func(cs *core.Slider) { m.record(core.EventStart, cs.CurrentValue()) },
		Stop:  func(cs *core.Slider) { m.record(core.EventStop, cs.CurrentValue()) },
		ValueChanged: func(_ *core.Slider, v float64) {
			m.record(core.EventValueChanged, v)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to slider: %w", err)
	}

	return m, nil
}

// Value returns the slider value.
func (m *Model) Value() float64 {
	return m.slider.Value()
}

// Events returns the recent event lines, oldest first.
func (m *Model) Events() []string {
	return m.events
}

// Init returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.slider.Init()
}

// Update handles all messages.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := teaMsg.(tea.KeyMsg); ok {
		if key.Matches(km, m.keys.ForceQuit) || key.Matches(km, m.keys.Quit) {
			if m.config.Cancel != nil {
				m.config.Cancel()
			}

			return m, tea.Quit
		}
	}

	_, cmd := m.slider.Update(teaMsg)

	return m, cmd
}

// View renders the current UI.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render("slidebar"))
	sb.WriteString("\n\n")

	sb.WriteString(m.slider.View())
	sb.WriteString("\n\n")

	for _, line := range m.events {
		sb.WriteString(style.Muted.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderKeyHelp(m.keys.Quit, " "))
	sb.WriteString(renderKeyHelp(m.keys.ForceQuit))

	return sb.String()
}

func (m *Model) record(kind core.EventKind, value float64) {
	m.config.Logger.Debug("slider event", "kind", kind, "value", value)

	m.events = append(m.events, fmt.Sprintf("%-13s %s", kind, core.DefaultFormatLabel(value)))
	if over := len(m.events) - m.config.MaxEvents; over > 0 {
		m.events = m.events[over:]
	}
}

func renderKeyHelp(keyBinding key.Binding, suffix ...string) string {
	s := style.Help.Render("[") + style.Key.Render(keyBinding.Help().Key) +
		style.Help.Render("] ") +
		style.Help.Render(keyBinding.Help().Desc)

	s += strings.Join(suffix, "")

	return s
}
