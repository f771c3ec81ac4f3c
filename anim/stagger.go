package anim

// Direction orders the delay ramp of a staggered group.
type Direction int

const (
	Forward Direction = iota
	Reverse
	Center
)

// StaggerConfig describes how a group animation is spread over time.
// StaggerDuration is the gap between the first and last element to start.
type StaggerConfig struct {
	TotalElements   int
	StaggerDuration float64
	Direction       Direction
}

// Delay computes the start offset for one element of the group. A group
// of one has nothing to stagger against, so every direction yields 0.
func (c StaggerConfig) Delay(index int) float64 {
	if c.TotalElements <= 1 {
		return 0
	}

	step := c.StaggerDuration / float64(c.TotalElements-1)
	switch c.Direction {
	case Reverse:
		return float64(c.TotalElements-1-index) * step
	case Center:
		mid := float64(c.TotalElements-1) / 2
		d := float64(index) - mid
		if d < 0 {
			d = -d
		}
		return d * step
	default:
		return float64(index) * step
	}
}

// Delays computes the full per-element delay plan.
func (c StaggerConfig) Delays() []float64 {
	n := c.TotalElements
	if n < 1 {
		n = 1
	}
	delays := make([]float64, n)
	for i := range delays {
		delays[i] = c.Delay(i)
	}
	return delays
}
