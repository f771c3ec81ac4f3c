package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vidmix/motion/anim"
)

// A Sweep runs a coloured head back and forth along the strip. The head
// position is a keyframe track with per-segment easing, and the trail
// behind it fades through an eased look-up table.
type Sweep struct {
	numPixels  int
	backColour colorful.Color
	headColour colorful.Color
	position   *anim.Track
	period     float64
	trail      []float64
}

// NewSweep creates an instance of a Sweep animation.
func NewSweep(numPixels int, backColour, headColour colorful.Color, trailLength int) *Sweep {
	s := new(Sweep)
	s.numPixels = numPixels
	s.backColour = backColour
	s.headColour = headColour

	// Normalised head position over one out-and-back cycle. The spring
	// segment makes the right-hand turnaround wobble.
	s.position = anim.NewTrack(anim.EaseInOutQuad)
	s.position.Add(anim.Keyframe{Time: 0, Value: 0, Easing: anim.SpringGentle})
	s.position.Add(anim.Keyframe{Time: 2.5, Value: 1})
	s.position.Add(anim.Keyframe{Time: 3, Value: 1, Easing: anim.EaseInOutCubic})
	s.position.Add(anim.Keyframe{Time: 5.5, Value: 0})
	s.period = 6

	if trailLength < 2 {
		trailLength = 2
	}
	s.trail = anim.Samples(anim.EaseInOutQuad, trailLength)

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Sweep) CalculateFrame(elapsed float64) *Frame {
	f := NewFrame(s.numPixels)
	for i := 0; i < s.numPixels; i++ {
		f.pixels[i] = s.backColour
	}

	pos := s.position.Sample(math.Mod(elapsed, s.period))
	head := int(math.Round(pos * float64(s.numPixels-1)))

	for j := 0; j < len(s.trail); j++ {
		i := head - j
		if i < 0 || i >= s.numPixels {
			continue
		}
		gain := s.trail[len(s.trail)-1-j]
		if gain > 0 {
			f.pixels[i] = s.backColour.BlendHcl(s.headColour, gain)
		}
	}

	return f
}
