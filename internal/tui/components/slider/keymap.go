package slider

import (
	core "github.com/alkime/slidebar/pkg/slider"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings of the slider component.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	JumpLeft  key.Binding
	JumpRight key.Binding
	JumpUp    key.Binding
	JumpDown  key.Binding

	Home   key.Binding
	End    key.Binding
	Center key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "decrease"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "increase"),
		),
		JumpLeft: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←/→", "jump"),
		),
		JumpRight: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "jump up"),
		),
		JumpUp: key.NewBinding(
			key.WithKeys("ctrl+up"),
			key.WithHelp("ctrl+↑/↓", "jump"),
		),
		JumpDown: key.NewBinding(
			key.WithKeys("ctrl+down"),
			key.WithHelp("ctrl+↓", "jump down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "min"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "max"),
		),
		Center: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "center"),
		),
	}
}

// lookup translates a terminal key press into a slider key.
func (km KeyMap) lookup(msg tea.KeyMsg) (k core.Key, ctrl, ok bool) {
	switch {
	case key.Matches(msg, km.Left):
		return core.KeyLeft, false, true
	case key.Matches(msg, km.Right):
		return core.KeyRight, false, true
	case key.Matches(msg, km.Up):
		return core.KeyUp, false, true
	case key.Matches(msg, km.Down):
		return core.KeyDown, false, true
	case key.Matches(msg, km.JumpLeft):
		return core.KeyLeft, true, true
	case key.Matches(msg, km.JumpRight):
		return core.KeyRight, true, true
	case key.Matches(msg, km.JumpUp):
		return core.KeyUp, true, true
	case key.Matches(msg, km.JumpDown):
		return core.KeyDown, true, true
	case key.Matches(msg, km.Home):
		return core.KeyHome, false, true
	case key.Matches(msg, km.End):
		return core.KeyEnd, false, true
	case key.Matches(msg, km.Center):
		return core.KeySpace, false, true
	}

	return core.KeyNone, false, false
}

// axisHelp implements help.KeyMap for one track orientation.
type axisHelp struct {
	keys KeyMap
	axis core.Axis
}

func (ah axisHelp) ShortHelp() []key.Binding {
	if ah.axis == core.Vertical {
		return []key.Binding{ah.keys.Up, ah.keys.Down, ah.keys.JumpUp, ah.keys.Home, ah.keys.End, ah.keys.Center}
	}

	return []key.Binding{ah.keys.Left, ah.keys.Right, ah.keys.JumpLeft, ah.keys.Home, ah.keys.End, ah.keys.Center}
}

func (ah axisHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{ah.keys.Left, ah.keys.Right, ah.keys.Up, ah.keys.Down},
		{ah.keys.JumpLeft, ah.keys.JumpRight, ah.keys.JumpUp, ah.keys.JumpDown},
		{ah.keys.Home, ah.keys.End, ah.keys.Center},
	}
}
