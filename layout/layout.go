// Package layout defines the layout-manager protocol: a manager owns the
// assignment of widget IDs to positions inside a container and recomputes
// widget geometry on demand. Managers track their own dirty state; the
// engine pays the geometry cost only when NeedsLayout reports true.
package layout

import "github.com/cellkit/cellkit/widget"

// Padding holds four independent edge insets plus the spacing used for
// inter-widget gaps
type Padding struct {
	Top     int
	Left    int
	Right   int
	Bottom  int
	Spacing int
}

// Position is a logical row/column slot inside a layout's grid
type Position struct {
	X int
	Y int
}

// WidgetAccess lets a manager read and write geometry for the widgets it
// governs. The engine's widget cache implements it.
type WidgetAccess interface {
	WidgetByID(id int) widget.Widget
}

// Manager is the polymorphic layout strategy
type Manager interface {
	// DoLayout recomputes and applies geometry for all governed widgets
	DoLayout(a WidgetAccess)

	// NeedsLayout reports whether a recompute is pending
	NeedsLayout() bool

	// SetPadding replaces the padding and marks the layout dirty
	SetPadding(p Padding)

	// GetPadding returns the current padding
	GetPadding() Padding

	// InsertWidget places a widget at an explicit position and marks
	// the layout dirty
	InsertWidget(id int, pos Position)

	// AppendWidget places a widget at the next free position, inferred
	// from the last inserted position
	AppendWidget(id int)
}

// assignment pairs a widget ID with its logical slot
type assignment struct {
	id  int
	pos Position
}

// nextPosition infers the slot an appended widget takes: the row after
// the last inserted one, column zero
func nextPosition(assigned []assignment) Position {
	if len(assigned) == 0 {
		return Position{}
	}
	return Position{X: 0, Y: assigned[len(assigned)-1].pos.Y + 1}
}
