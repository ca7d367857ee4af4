// Package surface abstracts the drawing target the widget toolkit paints
// on. The toolkit core only sees the Surface interface; concrete targets
// are a live terminal (Screen) and an offscreen cell grid (Buffer) used
// for tests and cached widget patches.
package surface

import "github.com/cellkit/cellkit/core"

// Surface is a clippable cell-based drawing target
//
// All drawing operations honor the current clip rectangle. Present flushes
// accumulated drawing to the output device; on offscreen targets it only
// counts flushes so callers can assert batching behavior.
type Surface interface {
	// Size returns the drawable dimensions in cells
	Size() core.Size

	// SetClip constrains subsequent drawing to r (intersected with bounds)
	SetClip(r core.Rect)

	// Clip returns the active clip rectangle
	Clip() core.Rect

	// FillRect fills r with background color c
	FillRect(r core.Rect, c RGB)

	// StrokeRect outlines r with box-drawing characters in color c
	StrokeRect(r core.Rect, c RGB)

	// Line draws a line between two points in color c
	Line(from, to core.Point, c RGB)

	// Point plots a single cell marker in color c
	Point(p core.Point, c RGB)

	// Text renders a string starting at p in foreground color fg
	Text(p core.Point, s string, fg RGB)

	// Dim blends the cells of r toward black, used to gray out
	// disabled widgets without repainting them
	Dim(r core.Rect)

	// Blit copies a prerendered patch with its top-left corner at p
	Blit(p core.Point, patch *Buffer)

	// Present flushes drawing to the device
	Present()
}

// Box drawing characters for stroked rectangles and lines
const (
	runeTL = '┌'
	runeTR = '┐'
	runeBL = '└'
	runeBR = '┘'
	runeH  = '─'
	runeV  = '│'
	runePt = '·'
)
