package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

// Justify controls horizontal text placement inside a Label
type Justify uint8

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Label renders a single line of text, vertically centered, justified
// within the widget bounds. Display width is measured in terminal cells
// so wide runes justify correctly.
type Label struct {
	*Base

	text    string
	justify Justify
	textFg  surface.RGB
}

// NewLabel creates a label with the given text, left justified
func NewLabel(text string) *Label {
	return &Label{
		Base:   NewBase(),
		text:   text,
		textFg: surface.RGBBlack,
	}
}

// Text returns the label's current text
func (l *Label) Text() string { return l.text }

// SetText replaces the text and invalidates the label
func (l *Label) SetText(text string) {
	l.text = text
	l.Config().SetInvalidated(true)
}

// SetJustify changes text placement and invalidates the label
func (l *Label) SetJustify(j Justify) {
	l.justify = j
	l.Config().SetInvalidated(true)
}

// SetTextColor changes the text foreground and invalidates the label
func (l *Label) SetTextColor(col surface.RGB) {
	l.textFg = col
	l.Config().SetInvalidated(true)
}

// Draw fills the base rectangle and renders the text line
func (l *Label) Draw(s surface.Surface) {
	c := l.Config()
	s.FillRect(c.Bounds(), c.BaseColor())

	w := runewidth.StringWidth(l.text)
	var x int
	switch l.justify {
	case JustifyRight:
		x = c.Size().W - w
	case JustifyCenter:
		x = (c.Size().W - w) / 2
	}
	if x < 0 {
		x = 0
	}
	y := c.Size().H / 2

	s.Text(core.Point{X: c.ToX(x), Y: c.ToY(y)}, l.text, l.textFg)

	if c.BorderWidth() > 0 {
		s.StrokeRect(c.Bounds(), c.BorderColor())
	}
	c.SetInvalidated(false)
}
