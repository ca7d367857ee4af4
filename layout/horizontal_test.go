package layout

import (
	"testing"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/widget"
)

type stubAccess struct {
	widgets []widget.Widget
}

func (s stubAccess) WidgetByID(id int) widget.Widget {
	return s.widgets[id]
}

func newStub(n int) stubAccess {
	s := stubAccess{}
	for i := 0; i < n; i++ {
		s.widgets = append(s.widgets, widget.NewBase())
	}
	return s
}

func TestHorizontalTwoWidgets(t *testing.T) {
	a := newStub(2)
	h := NewHorizontal(core.Point{X: 20, Y: 0}, core.Size{W: 360, H: 40})
	h.AppendWidget(0)
	h.AppendWidget(1)

	h.DoLayout(a)

	c0 := a.widgets[0].Config()
	if c0.Origin().X != 20 || c0.Size().W != 180 {
		t.Errorf("Expected widget 0 at x=20 width 180, got x=%d width %d",
			c0.Origin().X, c0.Size().W)
	}
	c1 := a.widgets[1].Config()
	if c1.Origin().X != 200 || c1.Size().W != 180 {
		t.Errorf("Expected widget 1 at x=200 width 180, got x=%d width %d",
			c1.Origin().X, c1.Size().W)
	}
}

func TestHorizontalAccumulatorGrowth(t *testing.T) {
	// The x offset accumulates widthPer*index without resetting, so the
	// third widget lands at origin + widthPer*(1+2)
	a := newStub(3)
	h := NewHorizontal(core.Point{X: 0, Y: 0}, core.Size{W: 90, H: 10})
	for i := 0; i < 3; i++ {
		h.AppendWidget(i)
	}

	h.DoLayout(a)

	wantX := []int{0, 30, 90}
	for i, want := range wantX {
		got := a.widgets[i].Config().Origin().X
		if got != want {
			t.Errorf("Expected widget %d at x=%d, got %d", i, want, got)
		}
	}
}

func TestHorizontalBottomPadding(t *testing.T) {
	a := newStub(2)
	h := NewHorizontal(core.Point{X: 0, Y: 5}, core.Size{W: 100, H: 40})
	h.SetPadding(Padding{Bottom: 4})
	h.AppendWidget(0)
	h.AppendWidget(1)

	h.DoLayout(a)

	c := a.widgets[0].Config()
	if c.Size().H != 36 {
		t.Errorf("Expected height 36 after bottom padding, got %d", c.Size().H)
	}
	if c.Origin().Y != 5 {
		t.Errorf("Expected widgets to keep container y=5, got %d", c.Origin().Y)
	}
}

func TestHorizontalDirtyTracking(t *testing.T) {
	a := newStub(1)
	h := NewHorizontal(core.Point{}, core.Size{W: 100, H: 10})

	if h.NeedsLayout() {
		t.Error("Expected fresh manager to be clean")
	}
	h.AppendWidget(0)
	if !h.NeedsLayout() {
		t.Error("Expected membership change to mark dirty")
	}
	h.DoLayout(a)
	if h.NeedsLayout() {
		t.Error("Expected layout pass to mark clean")
	}
	h.SetPadding(Padding{Bottom: 1})
	if !h.NeedsLayout() {
		t.Error("Expected padding change to mark dirty")
	}
}

func TestHorizontalLayoutInvalidatesWidgets(t *testing.T) {
	a := newStub(2)
	for _, w := range a.widgets {
		w.Config().SetInvalidated(false)
	}
	h := NewHorizontal(core.Point{}, core.Size{W: 100, H: 10})
	h.AppendWidget(0)
	h.AppendWidget(1)

	h.DoLayout(a)

	for i, w := range a.widgets {
		if !w.Config().Invalidated() {
			t.Errorf("Expected widget %d invalidated after layout", i)
		}
	}
}
