package widget

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

// Grid paints a repeating grid pattern, either full lines or dots at the
// line intersections. The pattern is rendered once into an offscreen patch
// and blitted on subsequent draws until the widget is invalidated.
type Grid struct {
	*Base

	spacing int
	dots    bool
	patch   *surface.Buffer
}

// NewGrid creates a grid with the given cell spacing. When dots is true
// only the intersections are marked.
func NewGrid(spacing int, dots bool) *Grid {
	if spacing < 1 {
		spacing = 1
	}
	return &Grid{
		Base:    NewBase(),
		spacing: spacing,
		dots:    dots,
	}
}

// SetSpacing changes the grid pitch, drops the cached patch, and
// invalidates the widget
func (g *Grid) SetSpacing(spacing int) {
	if spacing < 1 {
		spacing = 1
	}
	g.spacing = spacing
	g.patch = nil
	g.Config().SetInvalidated(true)
}

// SetDots switches between line and dot rendering
func (g *Grid) SetDots(dots bool) {
	g.dots = dots
	g.patch = nil
	g.Config().SetInvalidated(true)
}

// render rebuilds the cached patch in widget-local coordinates
func (g *Grid) render() {
	c := g.Config()
	size := c.Size()
	g.patch = surface.NewBuffer(size.W, size.H)
	g.patch.FillRect(core.NewRect(0, 0, size.W, size.H), c.BaseColor())

	if g.dots {
		for y := g.spacing; y < size.H; y += g.spacing {
			for x := g.spacing; x < size.W; x += g.spacing {
				g.patch.Point(core.Point{X: x, Y: y}, c.SecondaryColor())
			}
		}
	} else {
		for x := g.spacing; x < size.W; x += g.spacing {
			g.patch.Line(
				core.Point{X: x, Y: 0},
				core.Point{X: x, Y: size.H - 1},
				c.SecondaryColor(),
			)
		}
		for y := g.spacing; y < size.H; y += g.spacing {
			g.patch.Line(
				core.Point{X: 0, Y: y},
				core.Point{X: size.W - 1, Y: y},
				c.SecondaryColor(),
			)
		}
	}

	if c.BorderWidth() > 0 {
		g.patch.StrokeRect(core.NewRect(0, 0, size.W, size.H), c.BorderColor())
	}
}

// Draw blits the cached pattern, rebuilding it first when stale
func (g *Grid) Draw(s surface.Surface) {
	c := g.Config()
	if g.patch == nil || c.Invalidated() || g.patch.Size() != c.Size() {
		g.render()
	}
	s.Blit(c.Origin(), g.patch)
	c.SetInvalidated(false)
}
