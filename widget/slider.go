package widget

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/parameter"
	"github.com/cellkit/cellkit/surface"
)

// Slider is a horizontal value slider with a draggable handle. Dragging or
// scrolling moves the current value within [min, max], clamped silently at
// the bounds. Value changes are reported through View.NotifyValueChanged.
type Slider struct {
	*Base

	min, max int
	current  int

	// active is true while a drag is in progress; originated tracks
	// whether the press started inside the widget
	active     bool
	originated bool
	lastX      int
}

// NewSlider creates a slider over [min, max] starting at value
func NewSlider(min, max, value int) *Slider {
	s := &Slider{
		Base: NewBase(),
		min:  min,
		max:  max,
	}
	s.current = s.clamp(value)
	return s
}

// Current returns the slider's value
func (sl *Slider) Current() int { return sl.current }

// SetCurrent clamps value into range and invalidates the slider
func (sl *Slider) SetCurrent(value int) {
	sl.current = sl.clamp(value)
	sl.Config().SetInvalidated(true)
}

func (sl *Slider) clamp(value int) int {
	if value < sl.min {
		return sl.min
	}
	if value > sl.max {
		return sl.max
	}
	return value
}

// valueAt maps a widget-relative x offset to a value in [min, max]
func (sl *Slider) valueAt(x int) int {
	w := sl.Config().Size().W
	if w <= 0 {
		return sl.min
	}
	return sl.clamp(sl.min + x*(sl.max-sl.min)/w)
}

func (sl *Slider) moveTo(v View, value int) {
	if value == sl.current {
		return
	}
	sl.current = value
	sl.Config().SetInvalidated(true)
	v.NotifyValueChanged(sl.current)
}

// MouseMoved tracks the pointer and drags the handle while active
func (sl *Slider) MouseMoved(v View, p core.Point) {
	sl.lastX = p.X
	if sl.active {
		sl.moveTo(v, sl.valueAt(p.X))
	}
}

// MouseExited ends any in-progress drag
func (sl *Slider) MouseExited(v View) {
	sl.active = false
	sl.originated = false
}

// MouseScrolled nudges the value by the vertical wheel delta
func (sl *Slider) MouseScrolled(v View, delta core.Point) {
	sl.moveTo(v, sl.clamp(sl.current+delta.Y))
}

// ButtonClicked starts and ends drags; a press jumps the handle to the
// pointer's last known position
func (sl *Slider) ButtonClicked(v View, button uint8, clicks uint8, pressed bool) {
	if button != 1 {
		return
	}
	if pressed {
		sl.active = true
		sl.originated = true
		sl.moveTo(v, sl.valueAt(sl.lastX))
		return
	}
	sl.active = false
	sl.originated = false
}

// Draw paints the base, the track line, and the handle
func (sl *Slider) Draw(s surface.Surface) {
	c := sl.Config()
	s.FillRect(c.Bounds(), c.BaseColor())

	w := c.Size().W
	midY := c.ToY(c.Size().H / 2)
	inset := parameter.SliderTrackInset
	s.Line(
		core.Point{X: c.ToX(inset), Y: midY},
		core.Point{X: c.ToX(w - 1 - inset), Y: midY},
		c.BorderColor(),
	)

	// Handle centered on the value's position along the track
	span := sl.max - sl.min
	handleX := 0
	if span > 0 && w > 0 {
		handleX = (sl.current - sl.min) * w / span
	}
	half := parameter.SliderHandleCells / 2
	handle := core.NewRect(
		c.ToX(handleX-half), c.Origin().Y,
		parameter.SliderHandleCells, c.Size().H,
	)
	s.FillRect(handle.Intersect(c.Bounds()), c.SecondaryColor())

	if c.BorderWidth() > 0 {
		s.StrokeRect(c.Bounds(), c.BorderColor())
	}
	c.SetInvalidated(false)
}
