package slider

// Part is a bitmask of the visual pieces a redraw request covers.
type Part uint8

const (
	PartKnob Part = 1 << iota
	PartLabels
	PartTicks
	PartHighlight

	PartAll = PartKnob | PartLabels | PartTicks | PartHighlight
)

// Has reports whether p includes all of q.
func (p Part) Has(q Part) bool {
	return p&q == q
}

// Redrawer is notified whenever a change moves the knob, relabels the track
// or changes the highlight.
type Redrawer interface {
	RequestRedraw(parts Part)
}

// RedrawFunc adapts a function to the Redrawer interface.
type RedrawFunc func(parts Part)

// RequestRedraw calls f.
func (f RedrawFunc) RequestRedraw(parts Part) { f(parts) }

// Capturer routes all pointer input to the slider while a pointer drag is
// active, even when the pointer leaves the track.
type Capturer interface {
	Capture()
	Release()
}

type nopCollaborator struct{}

func (nopCollaborator) RequestRedraw(Part) {}
func (nopCollaborator) Bounds() Bounds     { return Bounds{} }
func (nopCollaborator) Capture()           {}
func (nopCollaborator) Release()           {}
