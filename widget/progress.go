package widget

import (
	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/parameter"
	"github.com/cellkit/cellkit/surface"
)

// Progress is a horizontal progress bar. The filled portion is painted in
// the secondary color over the base color. Values clamp silently to
// [0, parameter.ProgressMax].
type Progress struct {
	*Base

	progress int
}

// NewProgress creates a progress bar at the given starting value
func NewProgress(value int) *Progress {
	p := &Progress{Base: NewBase()}
	p.SetProgress(value)
	return p
}

// Progress returns the current value
func (p *Progress) Progress() int { return p.progress }

// SetProgress clamps value into range and invalidates the bar
func (p *Progress) SetProgress(value int) {
	if value < 0 {
		value = 0
	}
	if value > parameter.ProgressMax {
		value = parameter.ProgressMax
	}
	p.progress = value
	p.Config().SetInvalidated(true)
}

// Draw paints the base, the filled fraction, and the border
func (p *Progress) Draw(s surface.Surface) {
	c := p.Config()
	s.FillRect(c.Bounds(), c.BaseColor())

	fillW := c.Size().W * p.progress / parameter.ProgressMax
	if fillW > 0 {
		fill := core.Rect{
			Origin: c.Origin(),
			Size:   core.Size{W: fillW, H: c.Size().H},
		}
		s.FillRect(fill, c.SecondaryColor())
	}

	if c.BorderWidth() > 0 {
		s.StrokeRect(c.Bounds(), c.BorderColor())
	}
	c.SetInvalidated(false)
}
