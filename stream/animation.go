package stream

// An Animation renders the Frame for a point on the playback timeline.
// elapsed is in seconds since the animation started.
type Animation interface {
	CalculateFrame(elapsed float64) *Frame
}
