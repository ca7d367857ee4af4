package parameter

import "time"

// Widget Registry
const (
	// RootID is the identity of the first registered widget. It doubles as
	// the parent value meaning "top-level" and as the fallback result for
	// failed name lookups and hit tests
	RootID = 0
)

// Frame Loop Timing
const (
	// FrameInterval is the target frame period (~30 FPS)
	FrameInterval = 33 * time.Millisecond
)

// Input Event Queue
const (
	// InputQueueSize must be a power of two for mask-based indexing
	InputQueueSize = 256

	// InputBufferMask wraps ring indices without modulo
	InputBufferMask = InputQueueSize - 1
)
