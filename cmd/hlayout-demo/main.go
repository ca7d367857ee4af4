// hlayout-demo shows two bordered widgets sharing a container under the
// horizontal layout manager. Geometry and colors come from a TOML config
// created on first run.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/engine"
	"github.com/cellkit/cellkit/layout"
	"github.com/cellkit/cellkit/surface"
	"github.com/cellkit/cellkit/widget"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	scr, err := surface.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()

	e := engine.New()

	// Root is a pure container; its children are the visible widgets
	root := widget.NewBase()
	root.Config().SetSize(scr.Size())
	e.RegisterWidget(root, "root")

	background := widget.NewBase()
	background.Config().SetSize(scr.Size())
	background.Config().SetBaseColor(surface.RGB{R: 20, G: 20, B: 28})
	e.RegisterWidget(background, "background")

	border := rgbFrom(cfg.Widgets.BorderColor, surface.RGB{R: 255, G: 255, B: 255})

	left := widget.NewBase()
	left.Config().SetBaseColor(rgbFrom(cfg.Widgets.LeftColor, surface.RGB{B: 200}))
	left.Config().SetBorderColor(border)
	left.Config().SetBorderWidth(1)
	leftID := e.RegisterWidget(left, "left")

	right := widget.NewBase()
	right.Config().SetBaseColor(rgbFrom(cfg.Widgets.RightColor, surface.RGB{R: 200}))
	right.Config().SetBorderColor(border)
	right.Config().SetBorderWidth(1)
	rightID := e.RegisterWidget(right, "right")

	hl := layout.NewHorizontal(
		core.Point{X: cfg.Container.X, Y: cfg.Container.Y},
		core.Size{W: cfg.Container.W, H: cfg.Container.H},
	)
	hl.SetPadding(layout.Padding{
		Bottom:  cfg.Container.Bottom,
		Spacing: cfg.Container.Spacing,
	})
	layoutID := e.RegisterLayout(hl)

	e.AppendWidgetToLayout(layoutID, leftID)
	e.AppendWidgetToLayout(layoutID, rightID)

	e.Run(scr, scr)
}
