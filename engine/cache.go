package engine

import (
	"log"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/parameter"
	"github.com/cellkit/cellkit/surface"
	"github.com/cellkit/cellkit/widget"
)

// Trace enables redraw logging through the standard logger. Debugging aid,
// off by default.
var Trace bool

// record holds one registered widget and its registry bookkeeping. origin
// is the widget's position captured at registration time; layouts may move
// the live config afterward.
type record struct {
	widget widget.Widget
	name   string
	origin core.Point
	id     int
	parent int
}

// WidgetCache owns every registered widget, assigns dense IDs, tracks
// parent links, and answers spatial and name queries. IDs start at 0, the
// root container, and are never reused; there is no removal operation.
type WidgetCache struct {
	records []record
	layouts widget.LayoutLookup
	notify  func(id, value int)
}

// NewWidgetCache returns an empty registry
func NewWidgetCache() *WidgetCache {
	return &WidgetCache{}
}

// SetLayoutLookup wires the read-only layout view handed to callbacks
func (wc *WidgetCache) SetLayoutLookup(l widget.LayoutLookup) {
	wc.layouts = l
}

// SetObserver wires the value-change sink handed to callbacks
func (wc *WidgetCache) SetObserver(notify func(id, value int)) {
	wc.notify = notify
}

func (wc *WidgetCache) view(id int) widget.View {
	return widget.NewView(id, wc, wc.layouts, wc.notify)
}

// Add registers a top-level widget and returns its ID. The first Add gets
// ID 0 and becomes the root container.
func (wc *WidgetCache) Add(w widget.Widget, name string) int {
	return wc.AddToParent(w, name, parameter.RootID)
}

// AddToParent registers a widget under the given parent. The ID is the
// registry length at insertion time, so IDs are dense and strictly
// increasing.
func (wc *WidgetCache) AddToParent(w widget.Widget, name string, parent int) int {
	id := len(wc.records)
	wc.records = append(wc.records, record{
		widget: w,
		name:   name,
		origin: w.Config().Origin(),
		id:     id,
		parent: parent,
	})
	return id
}

// Len returns the number of registered widgets
func (wc *WidgetCache) Len() int {
	return len(wc.records)
}

// WidgetByID returns the widget registered under id. Unknown IDs are a
// caller bug; the indexed access panics.
func (wc *WidgetCache) WidgetByID(id int) widget.Widget {
	return wc.records[id].widget
}

// GetByID is an alias for WidgetByID
func (wc *WidgetCache) GetByID(id int) widget.Widget {
	return wc.WidgetByID(id)
}

// IDByName returns the ID registered under name, falling back to the root
// ID when no widget carries that name
func (wc *WidgetCache) IDByName(name string) int {
	for i := range wc.records {
		if wc.records[i].name == name {
			return wc.records[i].id
		}
	}
	return parameter.RootID
}

// GetByName returns the widget registered under name, or the root widget
// when the name is unknown
func (wc *WidgetCache) GetByName(name string) widget.Widget {
	return wc.records[wc.IDByName(name)].widget
}

// RegisteredOrigin returns the origin captured when id was registered
func (wc *WidgetCache) RegisteredOrigin(id int) core.Point {
	return wc.records[id].origin
}

// FindWidgetAt hit-tests the point against all visible widgets in
// registration order and returns the last match, the topmost in z-order.
// Misses return the root ID, indistinguishable from hitting the root.
func (wc *WidgetCache) FindWidgetAt(p core.Point) int {
	found := parameter.RootID
	for i := range wc.records {
		r := &wc.records[i]
		c := r.widget.Config()
		if c.Hidden() {
			continue
		}
		if c.Bounds().Contains(p) {
			found = r.id
		}
	}
	return found
}

// dispatchable reports whether id currently receives input
func (wc *WidgetCache) dispatchable(id int) bool {
	c := wc.records[id].widget.Config()
	return !c.Hidden() && c.Enabled()
}

// DispatchMouseEntered delivers a pointer-enter callback
func (wc *WidgetCache) DispatchMouseEntered(id int) {
	if wc.dispatchable(id) {
		wc.records[id].widget.MouseEntered(wc.view(id))
	}
}

// DispatchMouseExited delivers a pointer-exit callback
func (wc *WidgetCache) DispatchMouseExited(id int) {
	if wc.dispatchable(id) {
		wc.records[id].widget.MouseExited(wc.view(id))
	}
}

// DispatchMouseMoved delivers widget-relative pointer coordinates
func (wc *WidgetCache) DispatchMouseMoved(id int, p core.Point) {
	if wc.dispatchable(id) {
		wc.records[id].widget.MouseMoved(wc.view(id), p)
	}
}

// DispatchMouseScrolled delivers wheel deltas
func (wc *WidgetCache) DispatchMouseScrolled(id int, delta core.Point) {
	if wc.dispatchable(id) {
		wc.records[id].widget.MouseScrolled(wc.view(id), delta)
	}
}

// DispatchButton delivers a button press or release
func (wc *WidgetCache) DispatchButton(id int, button, clicks uint8, pressed bool) {
	if wc.dispatchable(id) {
		wc.records[id].widget.ButtonClicked(wc.view(id), button, clicks, pressed)
	}
}

// InvalidateAll marks every widget dirty, forcing a full repaint on the
// next draw loop. Used after terminal resizes.
func (wc *WidgetCache) InvalidateAll() {
	for i := range wc.records {
		wc.records[i].widget.Config().SetInvalidated(true)
	}
}

// Tick runs every non-hidden widget's periodic hook, once per frame,
// before layout and drawing
func (wc *WidgetCache) Tick() {
	for i := range wc.records {
		r := &wc.records[i]
		if !r.widget.Config().Hidden() {
			r.widget.Tick(wc.view(r.id))
		}
	}
}

// DrawLoop redraws the hierarchy when any widget is invalidated. The walk
// starts at the root and descends parent to child in registration order;
// each widget paints only if it is itself invalidated, but the recursion
// always continues so deeper dirty descendants are reached. All redraws in
// one pass share a single Present.
func (wc *WidgetCache) DrawLoop(s surface.Surface) {
	anyDirty := false
	for i := range wc.records {
		if wc.records[i].widget.Config().Invalidated() {
			anyDirty = true
			break
		}
	}
	if !anyDirty {
		return
	}

	size := s.Size()
	top := core.NewRect(0, 0, size.W, size.H)
	redrew := wc.draw(parameter.RootID, s, top)

	// The walk paints children only, never the root container itself, so
	// its dirty bit has to be cleared here or the walk re-runs every frame
	wc.records[parameter.RootID].widget.Config().SetInvalidated(false)

	if redrew {
		if Trace {
			log.Printf("engine: present after redraw of %d widgets", len(wc.records))
		}
		s.Present()
	}
}

// draw paints the direct children of id and recurses into each. Returns
// whether any child actually redrew.
func (wc *WidgetCache) draw(id int, s surface.Surface, top core.Rect) bool {
	redrew := false
	for i := range wc.records {
		r := &wc.records[i]
		if r.parent != id || r.id == id {
			continue
		}
		c := r.widget.Config()

		if !c.Hidden() && c.Invalidated() {
			if c.Autoclip() {
				s.SetClip(c.Bounds())
			}
			r.widget.Draw(s)
			if !c.Enabled() {
				s.Dim(c.Bounds())
			}
			s.SetClip(top)
			redrew = true
			if Trace {
				log.Printf("engine: redrew widget %d (%s)", r.id, r.name)
			}
		}

		if wc.draw(r.id, s, top) {
			redrew = true
		}
	}
	return redrew
}
