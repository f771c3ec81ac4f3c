package stream

import (
	"github.com/vidmix/motion/anim"
)

// Controller runs the current animation and cross-fades to the next one
// with an eased transition.
type Controller struct {
	animation   Animation
	next        Animation
	transition  float64
	fadeSecs    float64
	easing      anim.Easing
	lastElapsed float64
}

// NewController creates an instance of a Controller.
func NewController(animation Animation, fadeSecs float64) *Controller {
	c := new(Controller)
	c.animation = animation
	c.fadeSecs = fadeSecs
	c.easing = anim.EaseInOutQuad
	return c
}

// CrossfadeTo queues the next animation. A fade already in progress keeps
// its current blend and retargets the incoming side.
func (c *Controller) CrossfadeTo(next Animation) {
	c.next = next
}

// CalculateFrame renders the current frame, blending while a fade runs.
func (c *Controller) CalculateFrame(elapsed float64) *Frame {
	delta := elapsed - c.lastElapsed
	if delta < 0 {
		delta = 0
	}
	c.lastElapsed = elapsed

	if c.next == nil {
		return c.animation.CalculateFrame(elapsed)
	}

	f1 := c.animation.CalculateFrame(elapsed)
	f2 := c.next.CalculateFrame(elapsed)

	if c.fadeSecs > 0 {
		c.transition += delta / c.fadeSecs
	} else {
		c.transition = 1
	}
	f := f1.Blend(f2, anim.Evaluate(c.easing, c.transition))

	if c.transition >= 1 {
		c.animation = c.next
		c.next = nil
		c.transition = 0
	}

	return f
}
