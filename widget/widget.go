// Package widget defines the capability contract every visual element
// implements, the shared mutable Config behind it, and the concrete
// widgets the toolkit ships. Widgets never reach into the engine caches
// directly; callbacks receive a View with read-only lookups instead.
package widget

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

// Widget is the polymorphic contract for every visual element
type Widget interface {
	// Config returns the widget's mutable state store
	Config() *Config

	// Draw paints the widget onto the surface. The caller has already
	// constrained the clip region to the widget's bounds
	Draw(s surface.Surface)

	// Tick runs once per frame before layout and drawing
	Tick(v View)

	// MouseEntered fires when the pointer moves into the widget's bounds
	MouseEntered(v View)

	// MouseExited fires when the pointer leaves the widget's bounds
	MouseExited(v View)

	// MouseMoved fires with widget-relative pointer coordinates
	MouseMoved(v View, p core.Point)

	// MouseScrolled fires with wheel deltas while the widget is hovered
	MouseScrolled(v View, delta core.Point)

	// ButtonClicked fires on press and release while the widget is hovered
	ButtonClicked(v View, button uint8, clicks uint8, pressed bool)
}

// WidgetLookup is read-only access to the widget registry, so a callback
// can inspect siblings without being able to dispatch into them
type WidgetLookup interface {
	// WidgetByID returns the widget registered under id. Panics on
	// unknown IDs, matching the registry's own access rules
	WidgetByID(id int) Widget

	// IDByName returns the ID registered under name, or the root ID
	// when no widget carries that name
	IDByName(name string) int
}

// LayoutLookup is read-only access to the layout registry
type LayoutLookup interface {
	// NeedsLayout reports whether layout id has a pending pass
	NeedsLayout(id int) bool
}

// View is the window a widget callback gets into the rest of the toolkit.
// It carries the callback target's own ID so a widget can report value
// changes without holding a reference back into the engine.
type View struct {
	ID      int
	Widgets WidgetLookup
	Layouts LayoutLookup

	notify func(id, value int)
}

// NewView builds the view the engine hands to a widget callback
func NewView(id int, widgets WidgetLookup, layouts LayoutLookup, notify func(id, value int)) View {
	return View{
		ID:      id,
		Widgets: widgets,
		Layouts: layouts,
		notify:  notify,
	}
}

// NotifyValueChanged reports the widget's new value to any observer
// registered for its ID
func (v View) NotifyValueChanged(value int) {
	if v.notify != nil {
		v.notify(v.ID, value)
	}
}
