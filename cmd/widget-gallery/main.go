// widget-gallery exercises the shipped widgets: a grid backdrop, a slider
// driving a progress bar and a readout label, with an audible click when
// the slider value changes.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cellkit/cellkit/core"
	"github.com/cellkit/cellkit/engine"
	"github.com/cellkit/cellkit/surface"
	"github.com/cellkit/cellkit/widget"
)

func main() {
	scr, err := surface.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()

	if err := initAudio(); err != nil {
		// Non-fatal, the gallery works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer closeAudio()

	e := engine.New()

	size := scr.Size()

	// Root is a pure container; the grid backdrop paints the background
	root := widget.NewBase()
	root.Config().SetSize(size)
	e.RegisterWidget(root, "root")

	backdrop := widget.NewGrid(4, true)
	backdrop.Config().SetOrigin(core.Point{X: 2, Y: 1})
	backdrop.Config().SetSize(core.Size{W: size.W - 4, H: size.H - 2})
	backdrop.Config().SetBaseColor(surface.RGB{R: 25, G: 25, B: 35})
	backdrop.Config().SetSecondaryColor(surface.RGB{R: 60, G: 60, B: 80})
	backdrop.Config().SetEnabled(false)
	e.RegisterWidget(backdrop, "backdrop")

	slider := widget.NewSlider(0, 100, 50)
	slider.Config().SetOrigin(core.Point{X: 10, Y: 4})
	slider.Config().SetSize(core.Size{W: 40, H: 3})
	slider.Config().SetBaseColor(surface.RGB{R: 50, G: 50, B: 60})
	slider.Config().SetSecondaryColor(surface.RGB{R: 60, G: 80, B: 120})
	slider.Config().SetBorderColor(surface.RGB{R: 130, G: 130, B: 150})
	sliderID := e.RegisterWidget(slider, "slider")

	bar := widget.NewProgress(50)
	bar.Config().SetOrigin(core.Point{X: 10, Y: 9})
	bar.Config().SetSize(core.Size{W: 40, H: 3})
	bar.Config().SetBaseColor(surface.RGB{R: 50, G: 50, B: 60})
	bar.Config().SetSecondaryColor(surface.RGB{R: 0, G: 140, B: 80})
	bar.Config().SetBorderColor(surface.RGB{R: 130, G: 130, B: 150})
	bar.Config().SetBorderWidth(1)
	e.RegisterWidget(bar, "progress")

	readout := widget.NewLabel("50")
	readout.SetJustify(widget.JustifyCenter)
	readout.SetTextColor(surface.RGB{R: 255, G: 255, B: 255})
	readout.Config().SetOrigin(core.Point{X: 10, Y: 14})
	readout.Config().SetSize(core.Size{W: 40, H: 1})
	readout.Config().SetBaseColor(surface.RGB{R: 20, G: 20, B: 28})
	e.RegisterWidget(readout, "readout")

	// The slider drives the progress bar and the readout
	e.OnValueChanged(sliderID, func(id, value int) {
		bar.SetProgress(value)
		readout.SetText(fmt.Sprintf("%d", value))
		playClickSound()
	})

	e.Run(scr, scr)
}
