package widget

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

// Base is the embeddable default widget: a flat rectangle in the base
// color with an optional border, and no-op callbacks. Concrete widgets
// embed Base and override only what they need.
type Base struct {
	config *Config
}

// NewBase returns a base widget with a fresh default config
func NewBase() *Base {
	return &Base{config: NewConfig()}
}

// Config returns the widget's mutable state store
func (b *Base) Config() *Config {
	return b.config
}

// Draw paints a flat rectangle in the base color, strokes the border when
// BorderWidth is positive, and clears the invalidated flag
func (b *Base) Draw(s surface.Surface) {
	c := b.config
	s.FillRect(c.Bounds(), c.BaseColor())
	if c.BorderWidth() > 0 {
		s.StrokeRect(c.Bounds(), c.BorderColor())
	}
	c.SetInvalidated(false)
}

// Tick is a no-op by default
func (b *Base) Tick(v View) {}

// MouseEntered is a no-op by default
func (b *Base) MouseEntered(v View) {}

// MouseExited is a no-op by default
func (b *Base) MouseExited(v View) {}

// MouseMoved is a no-op by default
func (b *Base) MouseMoved(v View, p core.Point) {}

// MouseScrolled is a no-op by default
func (b *Base) MouseScrolled(v View, delta core.Point) {}

// ButtonClicked is a no-op by default
func (b *Base) ButtonClicked(v View, button uint8, clicks uint8, pressed bool) {}
