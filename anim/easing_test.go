package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []Curve {
	names := make([]Curve, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	return names
}

func TestCurveEndpoints(t *testing.T) {
	for _, c := range catalog() {
		c := c
		t.Run(string(c), func(t *testing.T) {
			assert.InDelta(t, 0, Evaluate(c, 0), 1e-9)
			assert.InDelta(t, 1, Evaluate(c, 1), 1e-9)
		})
	}
}

func TestMonotonicCurves(t *testing.T) {
	monotonic := []Curve{
		Linear,
		EaseInQuad, EaseOutQuad, EaseInOutQuad,
		EaseInCubic, EaseOutCubic, EaseInOutCubic,
		EaseInQuart, EaseOutQuart, EaseInOutQuart,
		EaseInQuint, EaseOutQuint, EaseInOutQuint,
		EaseInSine, EaseOutSine, EaseInOutSine,
		EaseInExpo, EaseOutExpo, EaseInOutExpo,
		EaseInCirc, EaseOutCirc, EaseInOutCirc,
	}

	const steps = 200
	for _, c := range monotonic {
		c := c
		t.Run(string(c), func(t *testing.T) {
			prev := Evaluate(c, 0)
			for i := 1; i <= steps; i++ {
				v := Evaluate(c, float64(i)/steps)
				assert.GreaterOrEqual(t, v+1e-12, prev, "regressed at step %d", i)
				prev = v
			}
		})
	}
}

func TestEvaluateClampsProgress(t *testing.T) {
	assert.Equal(t, 0.0, Evaluate(Linear, -3))
	assert.Equal(t, 1.0, Evaluate(Linear, 42))
}

func TestUnknownCurveFallsBack(t *testing.T) {
	unknown := Curve("easeOutWobble")
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t, Evaluate(DefaultCurve, tt), Evaluate(unknown, tt))
	}
}

func TestNilEasingFallsBack(t *testing.T) {
	assert.Equal(t, Evaluate(DefaultCurve, 0.3), Evaluate(nil, 0.3))
}

func TestSpringsOvershoot(t *testing.T) {
	// Springs settle on 1 but are allowed to pass it on the way.
	for _, c := range []Curve{SpringGentle, SpringBouncy, SpringStiff} {
		c := c
		t.Run(string(c), func(t *testing.T) {
			peak := 0.0
			for i := 0; i <= 200; i++ {
				v := Evaluate(c, float64(i)/200)
				if v > peak {
					peak = v
				}
			}
			assert.Greater(t, peak, 1.0)
		})
	}
}

func TestSamples(t *testing.T) {
	lut := Samples(Linear, 5)
	require.Len(t, lut, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, lut, 1e-12)

	// Degenerate sizes still produce a usable table.
	assert.Len(t, Samples(Linear, 0), 2)
}
