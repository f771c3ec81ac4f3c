package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates two hex colours channel-wise in RGB space and
// re-encodes the result as lowercase "#rrggbb". Channels are rounded to
// the nearest integer (half rounds up, so #000000 -> #ffffff at t=0.5 is
// #808080). A malformed colour string is treated as black.
func LerpColor(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		ca = colorful.Color{}
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		cb = colorful.Color{}
	}

	mixed := colorful.Color{
		R: Lerp(ca.R, cb.R, t),
		G: Lerp(ca.G, cb.G, t),
		B: Lerp(ca.B, cb.B, t),
	}
	return mixed.Clamped().Hex()
}

// TransformValues is a snapshot of the animatable properties of one
// on-screen element.
type TransformValues struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Opacity  float64
}

// LerpTransform interpolates every transform field with a single eased
// progress value. Sharing one eased t across all six fields keeps them
// arriving together instead of skewing per field.
func LerpTransform(from, to TransformValues, t float64, e Easing) TransformValues {
	eased := Evaluate(e, t)
	return TransformValues{
		X:        Lerp(from.X, to.X, eased),
		Y:        Lerp(from.Y, to.Y, eased),
		ScaleX:   Lerp(from.ScaleX, to.ScaleX, eased),
		ScaleY:   Lerp(from.ScaleY, to.ScaleY, eased),
		Rotation: Lerp(from.Rotation, to.Rotation, eased),
		Opacity:  Lerp(from.Opacity, to.Opacity, eased),
	}
}
