package engine

import (
	"testing"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/layout"
	"github.com/cellkit/cellkit/surface"
	"github.com/cellkit/cellkit/widget"
)

func newTestEngine(size core.Size) (*Engine, *surface.Buffer) {
	e := New()
	root := widget.NewBase()
	root.Config().SetSize(size)
	e.RegisterWidget(root, "root")
	return e, surface.NewBuffer(size.W, size.H)
}

func TestHoverEnterExitPairing(t *testing.T) {
	e, buf := newTestEngine(core.Size{W: 100, H: 40})

	a := newProbe()
	a.Config().SetOrigin(core.Point{X: 0, Y: 0})
	a.Config().SetSize(core.Size{W: 10, H: 10})
	aID := e.RegisterWidget(a, "a")

	b := newProbe()
	b.Config().SetOrigin(core.Point{X: 40, Y: 0})
	b.Config().SetSize(core.Size{W: 10, H: 10})
	bID := e.RegisterWidget(b, "b")

	e.Feed(Input{Kind: KindMove, X: 5, Y: 5})
	e.Frame(buf)
	if e.Hovered() != aID {
		t.Fatalf("Expected hover on %d, got %d", aID, e.Hovered())
	}
	if a.entered != 1 {
		t.Errorf("Expected one enter on a, got %d", a.entered)
	}

	e.Feed(Input{Kind: KindMove, X: 45, Y: 5})
	e.Frame(buf)
	if e.Hovered() != bID {
		t.Fatalf("Expected hover on %d, got %d", bID, e.Hovered())
	}
	if a.exited != 1 {
		t.Errorf("Expected one exit on a, got %d", a.exited)
	}
	if b.entered != 1 {
		t.Errorf("Expected one enter on b, got %d", b.entered)
	}

	// Moving within b must not re-fire enter/exit
	e.Feed(Input{Kind: KindMove, X: 46, Y: 6})
	e.Frame(buf)
	if b.entered != 1 || a.exited != 1 {
		t.Error("Expected no extra enter/exit while hover is unchanged")
	}
}

func TestMoveDispatchIsWidgetRelative(t *testing.T) {
	e, buf := newTestEngine(core.Size{W: 100, H: 40})

	p := newProbe()
	p.Config().SetOrigin(core.Point{X: 5, Y: 3})
	p.Config().SetSize(core.Size{W: 20, H: 10})
	e.RegisterWidget(p, "probe")

	e.Feed(Input{Kind: KindMove, X: 7, Y: 4})
	e.Frame(buf)

	if p.lastMove != (core.Point{X: 2, Y: 1}) {
		t.Errorf("Expected relative coordinates (2, 1), got %v", p.lastMove)
	}
}

func TestButtonsAndScrollGoToHoveredWidget(t *testing.T) {
	e, buf := newTestEngine(core.Size{W: 100, H: 40})

	p := newProbe()
	p.Config().SetOrigin(core.Point{X: 10, Y: 10})
	p.Config().SetSize(core.Size{W: 10, H: 10})
	e.RegisterWidget(p, "probe")

	e.Feed(Input{Kind: KindMove, X: 15, Y: 15})
	e.Feed(Input{Kind: KindButton, Button: 1, Clicks: 1, Pressed: true})
	e.Feed(Input{Kind: KindScroll, DY: -1})
	e.Frame(buf)

	if p.clicked != 1 {
		t.Errorf("Expected one click, got %d", p.clicked)
	}
	if p.scrolled != 1 {
		t.Errorf("Expected one scroll, got %d", p.scrolled)
	}
}

func TestQuitEventStopsFrame(t *testing.T) {
	e, buf := newTestEngine(core.Size{W: 10, H: 10})
	e.Feed(Input{Kind: KindQuit})
	if !e.Frame(buf) {
		t.Error("Expected Frame to report quit")
	}
}

func TestValueChangeObserver(t *testing.T) {
	e, buf := newTestEngine(core.Size{W: 100, H: 40})

	sl := widget.NewSlider(0, 100, 0)
	sl.Config().SetOrigin(core.Point{X: 0, Y: 0})
	sl.Config().SetSize(core.Size{W: 40, H: 3})
	slID := e.RegisterWidget(sl, "slider")

	var got []int
	e.OnValueChanged(slID, func(id, value int) {
		if id != slID {
			t.Errorf("Expected observer keyed to %d, got %d", slID, id)
		}
		got = append(got, value)
	})

	// Drag to the midpoint of the slider
	e.Feed(Input{Kind: KindMove, X: 10, Y: 1})
	e.Feed(Input{Kind: KindButton, Button: 1, Clicks: 1, Pressed: true})
	e.Feed(Input{Kind: KindMove, X: 20, Y: 1})
	e.Frame(buf)

	if sl.Current() != 50 {
		t.Errorf("Expected slider at 50, got %d", sl.Current())
	}
	if len(got) == 0 || got[len(got)-1] != 50 {
		t.Errorf("Expected observer to see 50, got %v", got)
	}
}

func TestDirtyLayoutRunsOncePerChange(t *testing.T) {
	e, buf := newTestEngine(core.Size{W: 400, H: 40})

	left := widget.NewBase()
	leftID := e.RegisterWidget(left, "left")
	right := widget.NewBase()
	rightID := e.RegisterWidget(right, "right")

	h := layout.NewHorizontal(core.Point{X: 20, Y: 0}, core.Size{W: 360, H: 40})
	layoutID := e.RegisterLayout(h)
	e.AppendWidgetToLayout(layoutID, leftID)
	e.AppendWidgetToLayout(layoutID, rightID)

	e.Frame(buf)

	if left.Config().Origin().X != 20 || right.Config().Origin().X != 200 {
		t.Errorf("Expected layout applied at x=20 and x=200, got %d and %d",
			left.Config().Origin().X, right.Config().Origin().X)
	}
	if h.NeedsLayout() {
		t.Error("Expected layout clean after the frame")
	}
}
