package slider

import (
	"math"
	"strings"

	"github.com/alkime/slidebar/internal/tui/style"
	core "github.com/alkime/slidebar/pkg/slider"
	"github.com/alkime/slidebar/pkg/uictl"
	"github.com/charmbracelet/lipgloss"
)

const (
	knobRune   = "●"
	fillRune   = "━"
	trackRune  = "─"
	vFillRune  = "┃"
	vTrackRune = "│"
	tickRune   = '|'
	vTickRune  = "╴"
)

// View renders the header, the track with its ticks and labels, and the
// key help.
func (m *Model) View() string {
	if m.stale {
		m.labels = m.slider.Labels()
		m.stale = false
	}

	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	if m.slider.Axis() == core.Vertical {
		sb.WriteString(m.renderVertical())
	} else {
		sb.WriteString(m.renderHorizontal())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(axisHelp{keys: m.keys, axis: m.slider.Axis()}))

	return sb.String()
}

func (m *Model) renderHeader() string {
	var sb strings.Builder

	if m.cfg.Title != "" {
		if m.slider.Focused() {
			sb.WriteString(style.Focused.Render(m.cfg.Title))
		} else {
			sb.WriteString(style.Title.Render(m.cfg.Title))
		}
		sb.WriteString(" ")
	}

	sb.WriteString(style.Value.Render(m.slider.FormatLabel(m.slider.CurrentValue())))

	return sb.String()
}

func (m *Model) renderHorizontal() string {
	knob := m.cell(m.slider.KnobFraction())

	var sb strings.Builder
	if knob > 0 {
		sb.WriteString(style.Fill.Render(strings.Repeat(fillRune, knob)))
	}
	sb.WriteString(m.knobStyle().Render(knobRune))
	if rest := m.length - 1 - knob; rest > 0 {
		sb.WriteString(style.Track.Render(strings.Repeat(trackRune, rest)))
	}

	if ticks := m.slider.Ticks(); len(ticks) > 0 {
		row := []rune(strings.Repeat(" ", m.length))
		for _, f := range ticks {
			row[m.cell(f)] = tickRune
		}
		sb.WriteString("\n")
		sb.WriteString(style.Tick.Render(string(row)))
	}

	if len(m.labels) > 0 {
		sb.WriteString("\n")
		sb.WriteString(style.Label.Render(layoutLabels(m.labels, m.length, m.cell)))
	}

	return sb.String()
}

func (m *Model) renderVertical() string {
	knob := m.cell(m.slider.KnobFraction())

	ticks := make(map[int]bool)
	for _, f := range m.slider.Ticks() {
		ticks[m.cell(f)] = true
	}

	labels := make(map[int]string)
	for _, l := range m.labels {
		row := m.cell(l.Fraction)
		if _, taken := labels[row]; !taken {
			labels[row] = l.Text
		}
	}

	rows := make([]string, m.length)
	for r := range rows {
		var sb strings.Builder

		switch {
		case r < knob:
			sb.WriteString(style.Fill.Render(vFillRune))
		case r == knob:
			sb.WriteString(m.knobStyle().Render(knobRune))
		default:
			sb.WriteString(style.Track.Render(vTrackRune))
		}

		text, labelled := labels[r]

		switch {
		case ticks[r]:
			sb.WriteString(style.Tick.Render(vTickRune))
		case labelled:
			sb.WriteString(" ")
		}

		if labelled {
			sb.WriteString(" ")
			sb.WriteString(style.Label.Render(text))
		}

		rows[r] = sb.String()
	}

	return strings.Join(rows, "\n")
}

func (m *Model) knobStyle() lipgloss.Style {
	if m.slider.Highlighted() {
		return style.KnobSliding
	}

	return style.Knob
}

// cell maps a track fraction to a 0-based cell index, going through the
// same axis mapping and bounds the core uses for pointer input.
func (m *Model) cell(fraction float64) int {
	axis, b := m.slider.Axis(), collaborator{m: m}.Bounds()
	offset := axis.Position(fraction, b) - axis.Origin(b)

	return uictl.Clamp(int(math.Round(offset)), 0, m.length-1)
}

// layoutLabels centers each label under the cell its fraction maps to,
// dropping labels that would overlap the one before.
func layoutLabels(labels []core.Label, length int, cell func(float64) int) string {
	row := []rune(strings.Repeat(" ", length))
	free := 0

	for _, l := range labels {
		text := []rune(l.Text)
		if len(text) > length {
			continue
		}

		center := cell(l.Fraction)
		start := uictl.Clamp(center-len(text)/2, 0, length-len(text))
		if start < free {
			continue
		}

		copy(row[start:], text)
		free = start + len(text) + 1
	}

	return strings.TrimRight(string(row), " ")
}
