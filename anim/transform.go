package anim

// TransformTracks bundles one keyframe track per transform property so a
// whole element can be sampled in one call. Nil tracks sample to the
// zero value for their property (scale and opacity default to 1).
type TransformTracks struct {
	X        *Track
	Y        *Track
	ScaleX   *Track
	ScaleY   *Track
	Rotation *Track
	Opacity  *Track
}

// Sample evaluates every property track at the same point in time and
// returns the combined snapshot.
func (tt *TransformTracks) Sample(time float64) TransformValues {
	return TransformValues{
		X:        sampleOr(tt.X, time, 0),
		Y:        sampleOr(tt.Y, time, 0),
		ScaleX:   sampleOr(tt.ScaleX, time, 1),
		ScaleY:   sampleOr(tt.ScaleY, time, 1),
		Rotation: sampleOr(tt.Rotation, time, 0),
		Opacity:  sampleOr(tt.Opacity, time, 1),
	}
}

func sampleOr(tr *Track, time, fallback float64) float64 {
	if tr == nil || tr.Len() == 0 {
		return fallback
	}
	return tr.Sample(time)
}
