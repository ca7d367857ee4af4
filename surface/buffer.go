package surface

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/parameter"
)

// Cell is a single character cell with colors
type Cell struct {
	Rune   rune
	Fg, Bg RGB
}

// Buffer is an offscreen cell grid implementing Surface. It backs the
// toolkit tests and doubles as the patch type for cached widget drawing
type Buffer struct {
	width    int
	height   int
	cells    []Cell
	clip     core.Rect
	presents int
}

// NewBuffer creates a buffer with the given dimensions, cleared to spaces
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		clip:   core.NewRect(0, 0, width, height),
	}
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
	return b
}

// Size returns the buffer dimensions
func (b *Buffer) Size() core.Size {
	return core.Size{W: b.width, H: b.height}
}

// SetClip constrains drawing to r intersected with the buffer bounds
func (b *Buffer) SetClip(r core.Rect) {
	b.clip = r.Intersect(core.NewRect(0, 0, b.width, b.height))
}

// Clip returns the active clip rectangle
func (b *Buffer) Clip() core.Rect {
	return b.clip
}

// Cell returns the cell at x, y and whether the position is in bounds
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// set writes a cell if the position is inside the clip region
func (b *Buffer) set(x, y int, c Cell) {
	if !b.clip.Contains(core.Point{X: x, Y: y}) {
		return
	}
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

// FillRect fills r with background color c
func (b *Buffer) FillRect(r core.Rect, c RGB) {
	for y := r.Origin.Y; y < r.Origin.Y+r.Size.H; y++ {
		for x := r.Origin.X; x < r.Origin.X+r.Size.W; x++ {
			b.set(x, y, Cell{Rune: ' ', Bg: c})
		}
	}
}

// StrokeRect outlines r with single-line box characters
func (b *Buffer) StrokeRect(r core.Rect, c RGB) {
	strokeRect(b, r, c)
}

// Line draws a line between two points
func (b *Buffer) Line(from, to core.Point, c RGB) {
	drawLine(b, from, to, c)
}

// Point plots a single cell marker
func (b *Buffer) Point(p core.Point, c RGB) {
	b.set(p.X, p.Y, Cell{Rune: runePt, Fg: c})
}

// Text renders a string starting at p, truncated at the clip edge
func (b *Buffer) Text(p core.Point, s string, fg RGB) {
	x := p.X
	for _, ch := range s {
		cur, ok := b.Cell(x, p.Y)
		bg := RGBBlack
		if ok {
			bg = cur.Bg
		}
		b.set(x, p.Y, Cell{Rune: ch, Fg: fg, Bg: bg})
		x++
	}
}

// Dim blends the cells of r toward black
func (b *Buffer) Dim(r core.Rect) {
	for y := r.Origin.Y; y < r.Origin.Y+r.Size.H; y++ {
		for x := r.Origin.X; x < r.Origin.X+r.Size.W; x++ {
			cur, ok := b.Cell(x, y)
			if !ok {
				continue
			}
			cur.Fg = cur.Fg.Dimmed(parameter.DimFraction)
			cur.Bg = cur.Bg.Dimmed(parameter.DimFraction)
			b.set(x, y, cur)
		}
	}
}

// Blit copies a prerendered patch with its top-left corner at p
func (b *Buffer) Blit(p core.Point, patch *Buffer) {
	for y := 0; y < patch.height; y++ {
		for x := 0; x < patch.width; x++ {
			cell, _ := patch.Cell(x, y)
			b.set(p.X+x, p.Y+y, cell)
		}
	}
}

// Present counts a flush; offscreen buffers have no device to flush to
func (b *Buffer) Present() {
	b.presents++
}

// Presents returns how many times Present has been called
func (b *Buffer) Presents() int {
	return b.presents
}

// cellSetter is the minimal write surface shared by Buffer and Screen
type cellSetter interface {
	set(x, y int, c Cell)
}

// strokeRect outlines r on any cell target
func strokeRect(t cellSetter, r core.Rect, c RGB) {
	if r.Size.W < 1 || r.Size.H < 1 {
		return
	}
	x0, y0 := r.Origin.X, r.Origin.Y
	x1, y1 := x0+r.Size.W-1, y0+r.Size.H-1

	t.set(x0, y0, Cell{Rune: runeTL, Fg: c})
	t.set(x1, y0, Cell{Rune: runeTR, Fg: c})
	t.set(x0, y1, Cell{Rune: runeBL, Fg: c})
	t.set(x1, y1, Cell{Rune: runeBR, Fg: c})

	for x := x0 + 1; x < x1; x++ {
		t.set(x, y0, Cell{Rune: runeH, Fg: c})
		t.set(x, y1, Cell{Rune: runeH, Fg: c})
	}
	for y := y0 + 1; y < y1; y++ {
		t.set(x0, y, Cell{Rune: runeV, Fg: c})
		t.set(x1, y, Cell{Rune: runeV, Fg: c})
	}
}

// drawLine steps between two points on any cell target. Axis-aligned
// lines use box-drawing runes, anything else falls back to point markers
func drawLine(t cellSetter, from, to core.Point, c RGB) {
	switch {
	case from.Y == to.Y:
		x0, x1 := from.X, to.X
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			t.set(x, from.Y, Cell{Rune: runeH, Fg: c})
		}
	case from.X == to.X:
		y0, y1 := from.Y, to.Y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			t.set(from.X, y, Cell{Rune: runeV, Fg: c})
		}
	default:
		// Bresenham with point markers
		dx := abs(to.X - from.X)
		dy := -abs(to.Y - from.Y)
		sx, sy := 1, 1
		if from.X > to.X {
			sx = -1
		}
		if from.Y > to.Y {
			sy = -1
		}
		err := dx + dy
		x, y := from.X, from.Y
		for {
			t.set(x, y, Cell{Rune: runePt, Fg: c})
			if x == to.X && y == to.Y {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x += sx
			}
			if e2 <= dx {
				err += dx
				y += sy
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
