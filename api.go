package mandel

import (
	"image"
)

// Frame is what a presentation layer gets once per loop iteration.
type Frame struct {
	Image *image.RGBA
	// Fresh is set when Image was recomputed since the previous Present.
	// A presenter may skip re-uploading pixels when it is false.
	Fresh     bool
	Selection image.Rectangle
	Region    Region
	MaxIter   int
}

// Presenter displays frames. The selection outline is drawn on every call,
// Fresh or not.
type Presenter interface {
	Present(f Frame) error
}

// EventSource yields the input events that arrived since the last poll.
// The returned slice is finite and ordered; an empty slice means no input.
type EventSource interface {
	PollEvents() []Event
}
