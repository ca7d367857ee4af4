package engine

// Kind discriminates translated input events
type Kind uint8

const (
	// KindMove is a pointer move in screen coordinates
	KindMove Kind = iota

	// KindButton is a button press or release
	KindButton

	// KindScroll is a wheel movement
	KindScroll

	// KindResize reports a terminal size change
	KindResize

	// KindQuit asks the frame loop to exit
	KindQuit
)

// Input is a translated device event. Move events carry screen X/Y;
// scroll events carry wheel deltas; button events carry button identity,
// click count, and press state.
type Input struct {
	Kind    Kind
	X, Y    int
	DX, DY  int
	Button  uint8
	Clicks  uint8
	Pressed bool
}
