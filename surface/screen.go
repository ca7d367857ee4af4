package surface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/parameter"
)

// Screen is the live terminal Surface over a tcell screen. It owns the
// clip state; tcell itself has no clipping so every write is gated here
type Screen struct {
	scr  tcell.Screen
	clip core.Rect
}

// NewScreen initializes the terminal and returns a ready Screen
func NewScreen() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		return nil, err
	}
	scr.EnableMouse()
	scr.HideCursor()
	scr.Clear()
	return NewScreenFrom(scr), nil
}

// NewScreenFrom wraps an already initialized tcell screen. Tests use this
// with tcell's simulation screen
func NewScreenFrom(scr tcell.Screen) *Screen {
	w, h := scr.Size()
	return &Screen{
		scr:  scr,
		clip: core.NewRect(0, 0, w, h),
	}
}

// PollEvent blocks for the next terminal event
func (s *Screen) PollEvent() tcell.Event {
	return s.scr.PollEvent()
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.scr.Fini()
}

// Size returns the terminal dimensions
func (s *Screen) Size() core.Size {
	w, h := s.scr.Size()
	return core.Size{W: w, H: h}
}

// SetClip constrains drawing to r intersected with the terminal bounds
func (s *Screen) SetClip(r core.Rect) {
	w, h := s.scr.Size()
	s.clip = r.Intersect(core.NewRect(0, 0, w, h))
}

// Clip returns the active clip rectangle
func (s *Screen) Clip() core.Rect {
	return s.clip
}

func (s *Screen) set(x, y int, c Cell) {
	if !s.clip.Contains(core.Point{X: x, Y: y}) {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(c.Fg)).
		Background(toTcell(c.Bg))
	s.scr.SetContent(x, y, c.Rune, nil, style)
}

// FillRect fills r with background color c
func (s *Screen) FillRect(r core.Rect, c RGB) {
	for y := r.Origin.Y; y < r.Origin.Y+r.Size.H; y++ {
		for x := r.Origin.X; x < r.Origin.X+r.Size.W; x++ {
			s.set(x, y, Cell{Rune: ' ', Bg: c})
		}
	}
}

// StrokeRect outlines r with single-line box characters
func (s *Screen) StrokeRect(r core.Rect, c RGB) {
	strokeRect(s, r, c)
}

// Line draws a line between two points
func (s *Screen) Line(from, to core.Point, c RGB) {
	drawLine(s, from, to, c)
}

// Point plots a single cell marker
func (s *Screen) Point(p core.Point, c RGB) {
	s.set(p.X, p.Y, Cell{Rune: runePt, Fg: c})
}

// Text renders a string starting at p
func (s *Screen) Text(p core.Point, str string, fg RGB) {
	x := p.X
	for _, ch := range str {
		_, _, bg := s.content(x, p.Y)
		s.set(x, p.Y, Cell{Rune: ch, Fg: fg, Bg: bg})
		x++
	}
}

// Dim blends the cells of r toward black in place
func (s *Screen) Dim(r core.Rect) {
	for y := r.Origin.Y; y < r.Origin.Y+r.Size.H; y++ {
		for x := r.Origin.X; x < r.Origin.X+r.Size.W; x++ {
			ch, fg, bg := s.content(x, y)
			s.set(x, y, Cell{
				Rune: ch,
				Fg:   fg.Dimmed(parameter.DimFraction),
				Bg:   bg.Dimmed(parameter.DimFraction),
			})
		}
	}
}

// Blit copies a prerendered patch with its top-left corner at p
func (s *Screen) Blit(p core.Point, patch *Buffer) {
	size := patch.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			cell, _ := patch.Cell(x, y)
			s.set(p.X+x, p.Y+y, cell)
		}
	}
}

// Present flushes drawing to the terminal
func (s *Screen) Present() {
	s.scr.Show()
}

// content reads back a cell for in-place blending
func (s *Screen) content(x, y int) (rune, RGB, RGB) {
	ch, _, style, _ := s.scr.GetContent(x, y)
	fgc, bgc, _ := style.Decompose()
	return ch, fromTcell(fgc), fromTcell(bgc)
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fromTcell(c tcell.Color) RGB {
	if !c.Valid() {
		return RGBBlack
	}
	r, g, b := c.TrueColor().RGB()
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
