// Package anim implements a keyframe-driven motion engine: easing curves,
// value and colour interpolation, keyframe tracks, an enter/hold/exit
// phase machine, stagger planning and a frame-rate-aware scheduler.
package anim

import (
	"math"

	"github.com/fogleman/ease"
)

// An Easing maps normalised progress in [0,1] to eased progress.
type Easing interface {
	Ease(t float64) float64
}

// Curve names an easing curve from the built-in catalog.
type Curve string

const (
	Linear Curve = "linear"

	EaseInQuad    Curve = "easeInQuad"
	EaseOutQuad   Curve = "easeOutQuad"
	EaseInOutQuad Curve = "easeInOutQuad"

	EaseInCubic    Curve = "easeInCubic"
	EaseOutCubic   Curve = "easeOutCubic"
	EaseInOutCubic Curve = "easeInOutCubic"

	EaseInQuart    Curve = "easeInQuart"
	EaseOutQuart   Curve = "easeOutQuart"
	EaseInOutQuart Curve = "easeInOutQuart"

	EaseInQuint    Curve = "easeInQuint"
	EaseOutQuint   Curve = "easeOutQuint"
	EaseInOutQuint Curve = "easeInOutQuint"

	EaseInSine    Curve = "easeInSine"
	EaseOutSine   Curve = "easeOutSine"
	EaseInOutSine Curve = "easeInOutSine"

	EaseInExpo    Curve = "easeInExpo"
	EaseOutExpo   Curve = "easeOutExpo"
	EaseInOutExpo Curve = "easeInOutExpo"

	EaseInCirc    Curve = "easeInCirc"
	EaseOutCirc   Curve = "easeOutCirc"
	EaseInOutCirc Curve = "easeInOutCirc"

	EaseInBack    Curve = "easeInBack"
	EaseOutBack   Curve = "easeOutBack"
	EaseInOutBack Curve = "easeInOutBack"

	EaseInElastic    Curve = "easeInElastic"
	EaseOutElastic   Curve = "easeOutElastic"
	EaseInOutElastic Curve = "easeInOutElastic"

	EaseInBounce    Curve = "easeInBounce"
	EaseOutBounce   Curve = "easeOutBounce"
	EaseInOutBounce Curve = "easeInOutBounce"

	SpringGentle Curve = "springGentle"
	SpringBouncy Curve = "springBouncy"
	SpringStiff  Curve = "springStiff"
)

// DefaultCurve is used whenever a curve name is unknown or an easing is
// unset. A wrong curve beats a broken render loop.
const DefaultCurve = EaseOutCubic

// curves is read-only after package init.
var curves = map[Curve]func(float64) float64{
	Linear: ease.Linear,

	EaseInQuad:    ease.InQuad,
	EaseOutQuad:   ease.OutQuad,
	EaseInOutQuad: ease.InOutQuad,

	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,

	EaseInQuart:    ease.InQuart,
	EaseOutQuart:   ease.OutQuart,
	EaseInOutQuart: ease.InOutQuart,

	EaseInQuint:    ease.InQuint,
	EaseOutQuint:   ease.OutQuint,
	EaseInOutQuint: ease.InOutQuint,

	EaseInSine:    ease.InSine,
	EaseOutSine:   ease.OutSine,
	EaseInOutSine: ease.InOutSine,

	EaseInExpo:    ease.InExpo,
	EaseOutExpo:   ease.OutExpo,
	EaseInOutExpo: ease.InOutExpo,

	EaseInCirc:    ease.InCirc,
	EaseOutCirc:   ease.OutCirc,
	EaseInOutCirc: ease.InOutCirc,

	EaseInBack:    ease.InBack,
	EaseOutBack:   ease.OutBack,
	EaseInOutBack: ease.InOutBack,

	EaseInElastic:    pinned(ease.InElastic),
	EaseOutElastic:   pinned(ease.OutElastic),
	EaseInOutElastic: pinned(ease.InOutElastic),

	EaseInBounce:    ease.InBounce,
	EaseOutBounce:   ease.OutBounce,
	EaseInOutBounce: ease.InOutBounce,

	SpringGentle: spring(4, 1.5),
	SpringBouncy: spring(5, 3.5),
	SpringStiff:  spring(9, 2.5),
}

// pinned forces exact endpoints on curves whose formula leaves a residual
// at t=0 or t=1 (the elastic family).
func pinned(fn func(float64) float64) func(float64) float64 {
	return func(t float64) float64 {
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		return fn(t)
	}
}

// spring builds a damped-sinusoid approximation 1 - 2^(-k*t)*cos(f*pi*t).
// f is always a half-integer so that the t=1 endpoint lands on 1.
func spring(k, f float64) func(float64) float64 {
	return func(t float64) float64 {
		return 1 - math.Pow(2, -k*t)*math.Cos(f*math.Pi*t)
	}
}

// Ease evaluates the named curve. Unknown names use DefaultCurve.
func (c Curve) Ease(t float64) float64 {
	fn, ok := curves[c]
	if !ok {
		fn = curves[DefaultCurve]
	}
	return fn(t)
}

// Evaluate applies an easing to a progress value. Out-of-range t is
// clamped to [0,1] rather than rejected, and a nil easing falls back to
// DefaultCurve, so a render loop can never be crashed by a bad curve.
func Evaluate(e Easing, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if e == nil {
		e = DefaultCurve
	}
	return e.Ease(t)
}

// Samples evaluates a curve at n evenly spaced points from 0 to 1
// inclusive, for use as a look-up table.
func Samples(e Easing, n int) []float64 {
	if n < 2 {
		n = 2
	}
	lut := make([]float64, n)
	for i := 0; i < n; i++ {
		lut[i] = Evaluate(e, float64(i)/float64(n-1))
	}
	return lut
}
