package surface

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/cellkit/cellkit/core"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(w, h)
	return NewScreenFrom(sim), sim
}

func TestScreenFillRect(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 10)
	defer sim.Fini()

	red := RGB{R: 255}
	scr.SetClip(core.NewRect(0, 0, 20, 10))
	scr.FillRect(core.NewRect(2, 2, 4, 3), red)
	scr.Present()

	_, _, style, _ := sim.GetContent(3, 3)
	_, bg, _ := style.Decompose()
	if got := fromTcell(bg); !got.Equal(red) {
		t.Errorf("Expected bg %v, got %v", red, got)
	}
}

func TestScreenClip(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 10)
	defer sim.Fini()

	red := RGB{R: 255}
	scr.SetClip(core.NewRect(0, 0, 5, 5))
	scr.FillRect(core.NewRect(0, 0, 20, 10), red)

	_, _, style, _ := sim.GetContent(10, 8)
	_, bg, _ := style.Decompose()
	if fromTcell(bg).Equal(red) {
		t.Error("Expected cell outside clip to stay untouched")
	}
}

func TestScreenText(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 10)
	defer sim.Fini()

	scr.Text(core.Point{X: 2, Y: 1}, "hi", RGB{R: 255, G: 255, B: 255})

	ch, _, _, _ := sim.GetContent(2, 1)
	if ch != 'h' {
		t.Errorf("Expected 'h', got %q", ch)
	}
	ch, _, _, _ = sim.GetContent(3, 1)
	if ch != 'i' {
		t.Errorf("Expected 'i', got %q", ch)
	}
}

func TestScreenDim(t *testing.T) {
	scr, sim := newSimScreen(t, 20, 10)
	defer sim.Fini()

	scr.FillRect(core.NewRect(0, 0, 4, 4), RGB{R: 200, G: 200, B: 200})
	scr.Dim(core.NewRect(0, 0, 4, 4))

	_, _, style, _ := sim.GetContent(1, 1)
	_, bg, _ := style.Decompose()
	got := fromTcell(bg)
	if got.R >= 200 {
		t.Errorf("Expected dimmed bg below 200, got %d", got.R)
	}
	if got.Equal(RGBBlack) {
		t.Error("Expected dim to blend, not blacken")
	}
}
