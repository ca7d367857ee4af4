package parameter

// Disabled Widget Overlay
const (
	// DimFraction is how far disabled widget colors are blended toward black
	DimFraction = 0.5
)

// Slider Geometry
const (
	// SliderHandleCells is the width of the draggable handle in cells
	SliderHandleCells = 3

	// SliderTrackInset keeps the track line off the widget edges
	SliderTrackInset = 1
)

// Progress Domain
const (
	// ProgressMax is the upper bound of the progress value range
	ProgressMax = 100
)
