// Package engine ties the toolkit together: it owns the widget and layout
// registries, pumps device events through a lock-free queue into dispatch
// calls, runs dirty layouts, and drives the hierarchical draw loop once
// per frame.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/layout"
	"github.com/cellkit/cellkit/parameter"
	"github.com/cellkit/cellkit/surface"
	"github.com/cellkit/cellkit/widget"
)

// EventSource delivers raw terminal events. surface.Screen implements it;
// tests substitute a simulation screen.
type EventSource interface {
	PollEvent() tcell.Event
}

// Engine is the per-frame orchestrator. It is constructed once at startup
// and owns both registries; there is no ambient global state.
type Engine struct {
	Widgets *WidgetCache
	Layouts *LayoutCache

	queue     *Queue
	observers map[int][]func(id, value int)
	hovered   int
}

// New constructs an engine with empty registries
func New() *Engine {
	e := &Engine{
		Widgets:   NewWidgetCache(),
		Layouts:   NewLayoutCache(),
		queue:     NewQueue(),
		observers: make(map[int][]func(id, value int)),
		hovered:   parameter.RootID,
	}
	e.Widgets.SetLayoutLookup(e.Layouts)
	e.Widgets.SetObserver(e.NotifyValueChanged)
	return e
}

// RegisterWidget adds a top-level widget and returns its ID. The first
// registration becomes the root container.
func (e *Engine) RegisterWidget(w widget.Widget, name string) int {
	return e.Widgets.Add(w, name)
}

// RegisterWidgetTo adds a widget under the given parent
func (e *Engine) RegisterWidgetTo(w widget.Widget, name string, parent int) int {
	return e.Widgets.AddToParent(w, name, parent)
}

// RegisterLayout adds a layout manager and returns its ID
func (e *Engine) RegisterLayout(m layout.Manager) int {
	return e.Layouts.Add(m)
}

// AssignWidgetToLayout places a widget at an explicit position inside a
// layout; the layout goes dirty and repositions on the next frame
func (e *Engine) AssignWidgetToLayout(layoutID, widgetID int, pos layout.Position) {
	e.Layouts.GetByID(layoutID).InsertWidget(widgetID, pos)
}

// AppendWidgetToLayout places a widget at the layout's next free position
func (e *Engine) AppendWidgetToLayout(layoutID, widgetID int) {
	e.Layouts.GetByID(layoutID).AppendWidget(widgetID)
}

// OnValueChanged registers an observer for value changes reported by the
// widget with the given ID
func (e *Engine) OnValueChanged(widgetID int, fn func(id, value int)) {
	e.observers[widgetID] = append(e.observers[widgetID], fn)
}

// NotifyValueChanged fans a value change out to the observers registered
// for the reporting widget
func (e *Engine) NotifyValueChanged(id, value int) {
	for _, fn := range e.observers[id] {
		fn(id, value)
	}
}

// Feed queues a translated input event. The pump goroutine is the normal
// producer; tests feed events directly.
func (e *Engine) Feed(ev Input) {
	e.queue.Push(ev)
}

// Hovered returns the ID of the widget currently under the pointer
func (e *Engine) Hovered() int {
	return e.hovered
}

// Run blocks in the frame loop until a quit event arrives. Raw events are
// pumped from src on a separate goroutine; the loop itself is
// single-threaded.
func (e *Engine) Run(s surface.Surface, src EventSource) {
	go e.pump(src)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for range ticker.C {
		if e.Frame(s) {
			return
		}
	}
}

// Frame consumes pending input, dispatches it, ticks widgets, runs dirty
// layouts, and draws. Returns true when a quit event was seen.
func (e *Engine) Frame(s surface.Surface) bool {
	quit := false
	for _, ev := range e.queue.Consume() {
		switch ev.Kind {
		case KindMove:
			e.pointerMoved(core.Point{X: ev.X, Y: ev.Y})
		case KindButton:
			e.Widgets.DispatchButton(e.hovered, ev.Button, ev.Clicks, ev.Pressed)
		case KindScroll:
			e.Widgets.DispatchMouseScrolled(e.hovered, core.Point{X: ev.DX, Y: ev.DY})
		case KindResize:
			e.Widgets.InvalidateAll()
		case KindQuit:
			quit = true
		}
	}

	e.Widgets.Tick()
	e.Layouts.DoLayouts(e.Widgets)
	e.Widgets.DrawLoop(s)
	return quit
}

// pointerMoved hit-tests the screen point, emits exit/enter callbacks on
// hover change, and dispatches the move with widget-relative coordinates
func (e *Engine) pointerMoved(p core.Point) {
	id := e.Widgets.FindWidgetAt(p)
	if id != e.hovered {
		e.Widgets.DispatchMouseExited(e.hovered)
		e.Widgets.DispatchMouseEntered(id)
		e.hovered = id
	}
	origin := e.Widgets.WidgetByID(id).Config().Origin()
	e.Widgets.DispatchMouseMoved(id, core.Point{X: p.X - origin.X, Y: p.Y - origin.Y})
}

// pump translates raw terminal events into queue entries until the source
// closes or a quit key arrives
func (e *Engine) pump(src EventSource) {
	var lastButtons tcell.ButtonMask

	for {
		ev := src.PollEvent()
		if ev == nil {
			e.queue.Push(Input{Kind: KindQuit})
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC ||
				(tev.Key() == tcell.KeyRune && tev.Rune() == 'q') {
				e.queue.Push(Input{Kind: KindQuit})
				return
			}

		case *tcell.EventResize:
			e.queue.Push(Input{Kind: KindResize})

		case *tcell.EventMouse:
			x, y := tev.Position()
			e.queue.Push(Input{Kind: KindMove, X: x, Y: y})

			buttons := tev.Buttons()
			switch {
			case buttons&tcell.WheelUp != 0:
				e.queue.Push(Input{Kind: KindScroll, DY: 1})
			case buttons&tcell.WheelDown != 0:
				e.queue.Push(Input{Kind: KindScroll, DY: -1})
			case buttons&tcell.WheelLeft != 0:
				e.queue.Push(Input{Kind: KindScroll, DX: -1})
			case buttons&tcell.WheelRight != 0:
				e.queue.Push(Input{Kind: KindScroll, DX: 1})
			}

			masks := []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3}
			for i, mask := range masks {
				now := buttons&mask != 0
				was := lastButtons&mask != 0
				if now != was {
					e.queue.Push(Input{
						Kind:    KindButton,
						X:       x,
						Y:       y,
						Button:  uint8(i + 1),
						Clicks:  1,
						Pressed: now,
					})
				}
			}
			lastButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
		}
	}
}
