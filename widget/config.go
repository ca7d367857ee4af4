package widget

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

// Config is the per-widget mutable state store. Every setter that changes
// visible appearance sets the invalidated flag; the default Draw clears it.
// The dirty bit is the only mechanism driving redraw.
type Config struct {
	origin         core.Point
	size           core.Size
	baseColor      surface.RGB
	borderColor    surface.RGB
	secondaryColor surface.RGB
	borderWidth    int
	hidden         bool
	enabled        bool
	invalidated    bool
	autoclip       bool
}

// NewConfig returns a config with default appearance: white base over a
// black border, enabled, visible, and invalidated so the first frame paints
func NewConfig() *Config {
	return &Config{
		baseColor:      surface.RGB{R: 255, G: 255, B: 255},
		borderColor:    surface.RGBBlack,
		secondaryColor: surface.RGBBlack,
		enabled:        true,
		invalidated:    true,
		autoclip:       true,
	}
}

// Origin returns the widget's top-left corner in screen coordinates
func (c *Config) Origin() core.Point { return c.origin }

// SetOrigin moves the widget and invalidates it
func (c *Config) SetOrigin(p core.Point) {
	c.origin = p
	c.invalidated = true
}

// Size returns the widget's dimensions
func (c *Config) Size() core.Size { return c.size }

// SetSize resizes the widget and invalidates it
func (c *Config) SetSize(s core.Size) {
	c.size = s
	c.invalidated = true
}

// Bounds returns the widget's bounding rectangle in screen coordinates
func (c *Config) Bounds() core.Rect {
	return core.Rect{Origin: c.origin, Size: c.size}
}

// ToX converts a widget-relative x offset to a screen coordinate
func (c *Config) ToX(x int) int { return c.origin.X + x }

// ToY converts a widget-relative y offset to a screen coordinate
func (c *Config) ToY(y int) int { return c.origin.Y + y }

// BaseColor returns the fill color
func (c *Config) BaseColor() surface.RGB { return c.baseColor }

// SetBaseColor changes the fill color and invalidates
func (c *Config) SetBaseColor(col surface.RGB) {
	c.baseColor = col
	c.invalidated = true
}

// BorderColor returns the border color
func (c *Config) BorderColor() surface.RGB { return c.borderColor }

// SetBorderColor changes the border color and invalidates
func (c *Config) SetBorderColor(col surface.RGB) {
	c.borderColor = col
	c.invalidated = true
}

// SecondaryColor returns the accent color widgets use for fills and handles
func (c *Config) SecondaryColor() surface.RGB { return c.secondaryColor }

// SetSecondaryColor changes the accent color and invalidates
func (c *Config) SetSecondaryColor(col surface.RGB) {
	c.secondaryColor = col
	c.invalidated = true
}

// BorderWidth returns the border width in cells; 0 disables the border
func (c *Config) BorderWidth() int { return c.borderWidth }

// SetBorderWidth changes the border width and invalidates
func (c *Config) SetBorderWidth(w int) {
	c.borderWidth = w
	c.invalidated = true
}

// Hidden reports whether the widget is excluded from drawing and hit tests
func (c *Config) Hidden() bool { return c.hidden }

// SetHidden toggles visibility and invalidates
func (c *Config) SetHidden(h bool) {
	c.hidden = h
	c.invalidated = true
}

// Enabled reports whether the widget receives input callbacks
func (c *Config) Enabled() bool { return c.enabled }

// SetEnabled toggles input delivery and invalidates, since disabled
// widgets draw with a dim overlay
func (c *Config) SetEnabled(e bool) {
	c.enabled = e
	c.invalidated = true
}

// Invalidated reports whether the widget needs a redraw
func (c *Config) Invalidated() bool { return c.invalidated }

// SetInvalidated sets or clears the dirty bit directly
func (c *Config) SetInvalidated(inv bool) { c.invalidated = inv }

// Autoclip reports whether drawing is clipped to the widget's bounds
func (c *Config) Autoclip() bool { return c.autoclip }

// SetAutoclip toggles bounds clipping during draw
func (c *Config) SetAutoclip(a bool) { c.autoclip = a }
