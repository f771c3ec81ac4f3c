package anim

// A CubicBezier is an easing curve defined by two control points, with
// implicit endpoints (0,0) and (1,1).
//
// Accuracy contract: the x -> parameter solve runs Newton-Raphson for at
// most 8 iterations and stops early once the x residual is below 1e-3, so
// eased values are exact to roughly that tolerance.
type CubicBezier struct {
	P1X, P1Y, P2X, P2Y float64
}

const (
	bezierIterations = 8
	bezierTolerance  = 1e-3
)

// Bezier creates a CubicBezier easing from its two control points.
func Bezier(p1x, p1y, p2x, p2y float64) CubicBezier {
	return CubicBezier{P1X: p1x, P1Y: p1y, P2X: p2x, P2Y: p2y}
}

// Ease solves for the curve parameter whose x coordinate matches t, then
// returns the y coordinate at that parameter.
func (b CubicBezier) Ease(t float64) float64 {
	cx := 3 * b.P1X
	bx := 3*(b.P2X-b.P1X) - cx
	ax := 1 - cx - bx

	cy := 3 * b.P1Y
	by := 3*(b.P2Y-b.P1Y) - cy
	ay := 1 - cy - by

	sampleX := func(u float64) float64 {
		return ((ax*u+bx)*u + cx) * u
	}
	sampleDX := func(u float64) float64 {
		return (3*ax*u+2*bx)*u + cx
	}

	u := t
	for i := 0; i < bezierIterations; i++ {
		residual := sampleX(u) - t
		if residual < bezierTolerance && residual > -bezierTolerance {
			break
		}
		d := sampleDX(u)
		if d == 0 {
			break
		}
		u -= residual / d
	}

	return ((ay*u+by)*u + cy) * u
}
