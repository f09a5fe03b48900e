// Package slider provides a bubbletea slider component. It renders a
// pkg/slider core and feeds it terminal input.
package slider

import (
	"fmt"
	"sync/atomic"
	"time"

	core "github.com/alkime/slidebar/pkg/slider"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultLength is the default number of cells along the track.
	DefaultLength = 40
	// DefaultKeyRelease is how long a key counts as held after the last
	// press the terminal reported.
	DefaultKeyRelease = 120 * time.Millisecond
	// DefaultKeyHold is how long a fresh press counts as held while waiting
	// for the terminal's first auto-repeat. It covers common OS initial
	// repeat delays.
	DefaultKeyHold = 600 * time.Millisecond

	minLength  = 2
	headerRows = 1
	footerRows = 2
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Config holds the layout and input settings of the component.
type Config struct {
	Title string
	// Length is the number of cells along the track.
	Length int
	// KeyRelease is how long after the last key press a held key is
	// considered released. Terminals report presses only.
	KeyRelease time.Duration
	// KeyHold replaces KeyRelease between a fresh press and the first
	// terminal auto-repeat of it. Slider repeat ticks that come due inside
	// this window wait for that auto-repeat and are dropped if the key is
	// released first, so a tap moves one step and a long hold stays one
	// drag. A hold whose OS repeat delay exceeds KeyHold splits in two.
	KeyHold time.Duration
	// OriginX and OriginY locate the component's top-left cell on screen,
	// for mapping mouse events.
	OriginX, OriginY int
}

// TickMsg delivers an expired slider timer back into Update.
type TickMsg struct {
	ID    int
	timer uint64
}

type heldKey struct {
	key  core.Key
	ctrl bool
	// repeating is set once the terminal auto-repeats the key.
	repeating bool
}

// Model is a bubbletea slider. It is the core's track, redrawer, capturer
// and scheduler: timers become tea.Tick commands returned from Update.
type Model struct {
	id     int
	cfg    Config
	keys   KeyMap
	help   help.Model
	slider *core.Slider

	length   int
	captured bool
	labels   []core.Label
	stale    bool

	timers    map[uint64]func()
	nextTimer uint64
	pending   []tea.Cmd

	held         *heldKey
	releaseTimer core.Timer
	// parked holds repeat ticks waiting for the held key to repeat.
	parked []uint64
}

// New creates a slider component over [minValue, maxValue]. opts configure
// the core; the component installs itself as the core's collaborators.
func New(minValue, maxValue float64, cfg Config, opts ...core.Option) (*Model, error) {
	if cfg.Length == 0 {
		cfg.Length = DefaultLength
	}
	if cfg.KeyRelease <= 0 {
		cfg.KeyRelease = DefaultKeyRelease
	}
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = DefaultKeyHold
	}
	cfg.Length = max(minLength, cfg.Length)

	m := &Model{
		id:     nextID(),
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		length: cfg.Length,
		stale:  true,
		timers: make(map[uint64]func()),
	}

	c := collaborator{m: m}
	opts = append(opts,
		core.WithTrack(c),
		core.WithRedrawer(c),
		core.WithCapturer(c),
		core.WithScheduler(c),
	)

	s, err := core.New(minValue, maxValue, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create slider component: %w", err)
	}
	m.slider = s

	return m, nil
}

// Slider returns the core driven by the component.
func (m *Model) Slider() *core.Slider {
	return m.slider
}

// Value returns the current value.
func (m *Model) Value() float64 {
	return m.slider.CurrentValue()
}

// ID returns the component's unique id, carried by its TickMsgs.
func (m *Model) ID() int {
	return m.id
}

// SetOrigin moves the component's top-left cell, e.g. when a parent lays
// it out below other content.
func (m *Model) SetOrigin(x, y int) {
	m.cfg.OriginX = x
	m.cfg.OriginY = y
}

// Init returns no command; timers are started by input.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update feeds terminal input to the core and returns any timers it
// scheduled as commands.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case TickMsg:
		if msg.ID == m.id {
			m.fire(msg.timer)
		}

	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.FocusMsg:
		m.slider.OnFocus()

	case tea.BlurMsg:
		m.forgetKey()
		m.slider.OnBlur()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	return m, m.flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	k, ctrl, ok := m.keys.lookup(msg)
	if !ok {
		// any other key means the held one was let go
		m.releaseKey()
		return
	}

	switch k {
	case core.KeyHome, core.KeyEnd, core.KeySpace:
		m.slider.OnKeyDown(k, false)
		return
	}

	if m.held == nil || m.held.key != k || m.held.ctrl != ctrl {
		m.held = &heldKey{key: k, ctrl: ctrl}
		m.dropParked()
		m.slider.OnKeyDown(k, ctrl)
		m.extendHold(m.cfg.KeyHold)

		return
	}

	// terminal auto-repeat of the held key only keeps it held
	m.extendHold(m.cfg.KeyRelease)
	if !m.held.repeating {
		m.held.repeating = true
		m.fireParked()
	}
}

func (m *Model) extendHold(d time.Duration) {
	if m.releaseTimer != nil {
		m.releaseTimer.Stop()
	}

	m.releaseTimer = collaborator{m: m}.AfterFunc(d, m.releaseKey)
}

func (m *Model) releaseKey() {
	if m.held == nil {
		return
	}

	k := m.held.key
	m.forgetKey()
	m.slider.OnKeyUp(k)
}

func (m *Model) forgetKey() {
	m.held = nil
	m.dropParked()
	if m.releaseTimer != nil {
		m.releaseTimer.Stop()
		m.releaseTimer = nil
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// cells are 0-based; the core ignores coordinates at or below zero
	p := core.Point{X: float64(msg.X + 1), Y: float64(msg.Y + 1)}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
		if m.hit(msg.X, msg.Y) {
			m.slider.OnWheel(1)
		}
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
		if m.hit(msg.X, msg.Y) {
			m.slider.OnWheel(-1)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.hit(msg.X, msg.Y) {
			m.slider.OnPointerDown(p)
		}
	case tea.MouseActionMotion:
		if m.captured {
			m.slider.OnPointerMove(p)
		}
	case tea.MouseActionRelease:
		if m.captured {
			m.slider.OnPointerUp(p)
		}
	}
}

// hit reports whether the 0-based cell (x, y) lies on the track or its
// tick and label rows.
func (m *Model) hit(x, y int) bool {
	left, top := m.cfg.OriginX, m.cfg.OriginY+headerRows
	width, height := m.length, 3
	if m.slider.Axis() == core.Vertical {
		width, height = 3, m.length
	}

	return x >= left && x < left+width && y >= top && y < top+height
}

func (m *Model) resize(width, height int) {
	avail := width - m.cfg.OriginX
	if m.slider.Axis() == core.Vertical {
		avail = height - m.cfg.OriginY - headerRows - footerRows
	}

	m.length = max(minLength, min(m.cfg.Length, avail))
	m.slider.Redraw()
}

func (m *Model) fire(timer uint64) {
	f, ok := m.timers[timer]
	if !ok {
		return
	}

	if m.held != nil && !m.held.repeating && !m.isRelease(timer) {
		m.parked = append(m.parked, timer)
		return
	}

	delete(m.timers, timer)
	f()
}

func (m *Model) isRelease(timer uint64) bool {
	tt, ok := m.releaseTimer.(teaTimer)
	return ok && tt.timer == timer
}

// fireParked runs parked ticks the core has not stopped in the meantime.
func (m *Model) fireParked() {
	parked := m.parked
	m.parked = nil

	for _, timer := range parked {
		m.fire(timer)
	}
}

// dropParked forgets parked ticks. The timers stay registered until the
// core stops them.
func (m *Model) dropParked() {
	m.parked = nil
}

func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil

	return tea.Batch(cmds...)
}
