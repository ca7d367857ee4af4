package widget

import (
	"testing"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/surface"
)

func TestSettersInvalidate(t *testing.T) {
	setters := map[string]func(*Config){
		"SetOrigin":         func(c *Config) { c.SetOrigin(core.Point{X: 1, Y: 2}) },
		"SetSize":           func(c *Config) { c.SetSize(core.Size{W: 3, H: 4}) },
		"SetBaseColor":      func(c *Config) { c.SetBaseColor(surface.RGB{R: 9}) },
		"SetBorderColor":    func(c *Config) { c.SetBorderColor(surface.RGB{G: 9}) },
		"SetSecondaryColor": func(c *Config) { c.SetSecondaryColor(surface.RGB{B: 9}) },
		"SetBorderWidth":    func(c *Config) { c.SetBorderWidth(1) },
		"SetHidden":         func(c *Config) { c.SetHidden(true) },
		"SetEnabled":        func(c *Config) { c.SetEnabled(false) },
	}

	for name, set := range setters {
		c := NewConfig()
		c.SetInvalidated(false)
		set(c)
		if !c.Invalidated() {
			t.Errorf("%s did not invalidate the config", name)
		}
	}
}

func TestDefaultDrawClearsInvalidated(t *testing.T) {
	b := NewBase()
	b.Config().SetOrigin(core.Point{X: 1, Y: 1})
	b.Config().SetSize(core.Size{W: 4, H: 3})

	if !b.Config().Invalidated() {
		t.Fatal("Expected new widget to start invalidated")
	}

	buf := surface.NewBuffer(10, 10)
	b.Draw(buf)

	if b.Config().Invalidated() {
		t.Error("Expected draw to clear the invalidated flag")
	}
}

func TestDefaultDrawPaintsBaseAndBorder(t *testing.T) {
	b := NewBase()
	b.Config().SetOrigin(core.Point{X: 0, Y: 0})
	b.Config().SetSize(core.Size{W: 5, H: 4})
	b.Config().SetBaseColor(surface.RGB{B: 200})
	b.Config().SetBorderColor(surface.RGB{R: 255})
	b.Config().SetBorderWidth(1)

	buf := surface.NewBuffer(10, 10)
	b.Draw(buf)

	inner, _ := buf.Cell(2, 2)
	if !inner.Bg.Equal(surface.RGB{B: 200}) {
		t.Errorf("Expected base fill, got bg %v", inner.Bg)
	}
	corner, _ := buf.Cell(0, 0)
	if corner.Rune != '┌' {
		t.Errorf("Expected border corner, got %q", corner.Rune)
	}
}

func TestRelativeConversion(t *testing.T) {
	c := NewConfig()
	c.SetOrigin(core.Point{X: 10, Y: 20})
	c.SetSize(core.Size{W: 5, H: 5})

	if c.ToX(3) != 13 {
		t.Errorf("Expected ToX(3) = 13, got %d", c.ToX(3))
	}
	if c.ToY(4) != 24 {
		t.Errorf("Expected ToY(4) = 24, got %d", c.ToY(4))
	}
	if !c.Bounds().Contains(core.Point{X: 12, Y: 22}) {
		t.Error("Expected bounds to contain interior point")
	}
}
