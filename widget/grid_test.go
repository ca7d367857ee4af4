package widget

import (
	"testing"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

func TestGridLines(t *testing.T) {
	g := NewGrid(4, false)
	g.Config().SetOrigin(core.Point{X: 2, Y: 1})
	g.Config().SetSize(core.Size{W: 12, H: 9})
	g.Config().SetSecondaryColor(surface.RGB{G: 255})

	buf := surface.NewBuffer(20, 12)
	g.Draw(buf)

	// Vertical line at local x=4 lands at screen x=6
	cell, _ := buf.Cell(6, 2)
	if cell.Rune != '│' {
		t.Errorf("Expected vertical grid line at (6, 2), got %q", cell.Rune)
	}
	// Horizontal line at local y=4 lands at screen y=5
	cell, _ = buf.Cell(3, 5)
	if cell.Rune != '─' {
		t.Errorf("Expected horizontal grid line at (3, 5), got %q", cell.Rune)
	}
	if g.Config().Invalidated() {
		t.Error("Expected draw to clear the invalidated flag")
	}
}

func TestGridDots(t *testing.T) {
	g := NewGrid(3, true)
	g.Config().SetSize(core.Size{W: 10, H: 10})
	g.Config().SetSecondaryColor(surface.RGB{G: 255})

	buf := surface.NewBuffer(10, 10)
	g.Draw(buf)

	cell, _ := buf.Cell(3, 3)
	if cell.Rune != '·' {
		t.Errorf("Expected dot at intersection (3, 3), got %q", cell.Rune)
	}
	cell, _ = buf.Cell(4, 3)
	if cell.Rune == '·' {
		t.Error("Expected no dot off the intersection")
	}
}
