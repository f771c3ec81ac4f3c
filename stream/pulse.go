package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vidmix/motion/anim"
)

// A Pulse sweeps a staggered brightness wave along the strip. Every pixel
// plays the same keyframe track offset by its stagger delay, and the phase
// machine gates the whole effect in and out.
type Pulse struct {
	numPixels  int
	backColour colorful.Color
	foreColour colorful.Color
	track      *anim.Track
	stagger    anim.StaggerConfig
	durations  anim.Durations
	period     float64
}

// NewPulse creates an instance of a Pulse animation.
func NewPulse(numPixels int, backColour, foreColour colorful.Color,
	durations anim.Durations, direction anim.Direction) *Pulse {

	p := new(Pulse)
	p.numPixels = numPixels
	p.backColour = backColour
	p.foreColour = foreColour
	p.durations = durations

	// One brightness pulse: rise fast, decay slow.
	p.track = anim.NewTrack(anim.Linear)
	p.track.Add(anim.Keyframe{Time: 0, Value: 0, Easing: anim.EaseOutQuad})
	p.track.Add(anim.Keyframe{Time: 0.4, Value: 1, Easing: anim.EaseInOutCubic})
	p.track.Add(anim.Keyframe{Time: 1.2, Value: 0})
	p.period = 1.2

	p.stagger = anim.StaggerConfig{
		TotalElements:   numPixels,
		StaggerDuration: 1.5,
		Direction:       direction,
	}

	return p
}

// restSeconds of darkness between two runs of the lifecycle.
const restSeconds = 1

// envelope fades the whole effect with the lifecycle phase. The lifecycle
// repeats after a short rest so the enter and exit ramps stay visible.
func (p *Pulse) envelope(elapsed float64) float64 {
	if total := p.durations.Total(); total > 0 {
		elapsed = math.Mod(elapsed, total+restSeconds)
	}
	state := anim.AdvanceState(anim.NewState(0), elapsed, p.durations)
	switch state.Phase {
	case anim.PhaseEnter:
		return anim.Evaluate(anim.EaseOutCubic, state.Progress)
	case anim.PhaseHold:
		return 1
	case anim.PhaseExit:
		return 1 - anim.Evaluate(anim.EaseInCubic, state.Progress)
	}
	return 0
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(elapsed float64) *Frame {
	f := NewFrame(p.numPixels)
	gain := p.envelope(elapsed)

	for i := 0; i < p.numPixels; i++ {
		local := elapsed - p.stagger.Delay(i)
		brightness := 0.0
		if local > 0 {
			brightness = p.track.Sample(math.Mod(local, p.period))
		}
		// Hue is undefined at black, so skip the HCL blend at zero gain.
		if b := brightness * gain; b > 0 {
			f.pixels[i] = p.backColour.BlendHcl(p.foreColour, b)
		} else {
			f.pixels[i] = p.backColour
		}
	}

	return f
}
