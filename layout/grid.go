package layout

import "github.com/cellkit/cellkit/core"

// Grid places widgets in cells sized by dividing the container along both
// axes by the widget count, walking the diagonal in assignment order. Half
// the spacing is shaved off each interior cell edge; the first and last
// cells use the edge padding on their outer sides instead.
type Grid struct {
	origin   core.Point
	size     core.Size
	padding  Padding
	assigned []assignment
	dirty    bool
}

// NewGrid creates a grid manager for a container at origin with the given
// size and padding
func NewGrid(origin core.Point, size core.Size, padding Padding) *Grid {
	return &Grid{origin: origin, size: size, padding: padding}
}

// DoLayout repositions the assigned widgets. Nothing moves until at least
// two widgets are assigned; the early return leaves the dirty flag as it
// was, so the pending pass runs once membership catches up.
func (g *Grid) DoLayout(a WidgetAccess) {
	n := len(g.assigned)
	if n <= 1 {
		return
	}

	cellW := g.size.W / n
	cellH := g.size.H / n
	subHigh := (g.padding.Spacing + 1) / 2
	subLow := g.padding.Spacing / 2

	for i, asg := range g.assigned {
		var x, y, w, h int
		switch {
		case i == 0:
			x = i*cellW + g.padding.Left
			y = i*cellH + g.padding.Top
			w = cellW - subHigh - g.padding.Left
			h = cellH - subHigh - g.padding.Top
		case i == n-1:
			x = i*cellW + subLow
			y = i*cellH + subLow
			w = cellW - subLow - g.padding.Right
			h = cellH - subLow - g.padding.Bottom
		default:
			x = i*cellW + subLow
			y = i*cellH + subLow
			w = cellW - subLow - subHigh
			h = cellH - subLow - subHigh
		}

		c := a.WidgetByID(asg.id).Config()
		c.SetOrigin(core.Point{X: g.origin.X + x, Y: g.origin.Y + y})
		c.SetSize(core.Size{W: w, H: h})
	}
	g.dirty = false
}

// NeedsLayout reports whether a recompute is pending
func (g *Grid) NeedsLayout() bool {
	return g.dirty
}

// SetPadding replaces the padding and marks the layout dirty
func (g *Grid) SetPadding(p Padding) {
	g.padding = p
	g.dirty = true
}

// GetPadding returns the current padding
func (g *Grid) GetPadding() Padding {
	return g.padding
}

// InsertWidget adds a widget at an explicit position
func (g *Grid) InsertWidget(id int, pos Position) {
	g.assigned = append(g.assigned, assignment{id: id, pos: pos})
	g.dirty = true
}

// AppendWidget adds a widget at the next inferred position
func (g *Grid) AppendWidget(id int) {
	g.InsertWidget(id, nextPosition(g.assigned))
}
