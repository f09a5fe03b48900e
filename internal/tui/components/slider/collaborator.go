package slider

import (
	"time"

	core "github.com/alkime/slidebar/pkg/slider"
	tea "github.com/charmbracelet/bubbletea"
)

// collaborator is the component as seen by the core.
type collaborator struct {
	m *Model
}

// Bounds maps the track into the core's 1-based cell space. The extent is
// one short of the length so the first cell is the minimum and the last
// cell the maximum.
func (c collaborator) Bounds() core.Bounds {
	left := float64(c.m.cfg.OriginX + 1)
	top := float64(c.m.cfg.OriginY + headerRows + 1)
	extent := float64(c.m.length - 1)

	if c.m.slider != nil && c.m.slider.Axis() == core.Vertical {
		return core.Bounds{Left: left, Top: top, Width: 1, Height: extent}
	}

	return core.Bounds{Left: left, Top: top, Width: extent, Height: 1}
}

func (c collaborator) RequestRedraw(parts core.Part) {
	if parts.Has(core.PartLabels) {
		c.m.stale = true
	}
}

func (c collaborator) Capture() { c.m.captured = true }
func (c collaborator) Release() { c.m.captured = false }

// AfterFunc queues a tea.Tick that comes back to Update as a TickMsg.
func (c collaborator) AfterFunc(d time.Duration, f func()) core.Timer {
	m := c.m
	m.nextTimer++
	id, timer := m.id, m.nextTimer

	m.timers[timer] = f
	m.pending = append(m.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{ID: id, timer: timer}
	}))

	return teaTimer{m: m, timer: timer}
}

type teaTimer struct {
	m     *Model
	timer uint64
}

func (t teaTimer) Stop() bool {
	if _, ok := t.m.timers[t.timer]; !ok {
		return false
	}

	delete(t.m.timers, t.timer)

	return true
}
