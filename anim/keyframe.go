package anim

import (
	"sort"
)

// A Keyframe anchors a value at a point in time. Easing shapes the segment
// from this keyframe to the next one; nil means the track default.
type Keyframe struct {
	Time   float64
	Value  float64
	Easing Easing
}

// A Track is a collection of keyframes kept sorted by time, sampled to
// produce one property value for any point on the timeline.
type Track struct {
	keyframes []Keyframe
	def       Easing
}

// NewTrack creates an empty Track with a default easing for segments whose
// keyframe does not set one. A nil default means DefaultCurve.
func NewTrack(def Easing) *Track {
	tr := new(Track)
	tr.def = def
	return tr
}

// Add inserts a keyframe at its sorted position. A keyframe with the same
// time as an existing one replaces it, so the latest insert wins.
func (tr *Track) Add(kf Keyframe) {
	i := sort.Search(len(tr.keyframes), func(i int) bool {
		return tr.keyframes[i].Time >= kf.Time
	})
	if i < len(tr.keyframes) && tr.keyframes[i].Time == kf.Time {
		tr.keyframes[i] = kf
		return
	}
	tr.keyframes = append(tr.keyframes, Keyframe{})
	copy(tr.keyframes[i+1:], tr.keyframes[i:])
	tr.keyframes[i] = kf
}

// Len reports the number of keyframes on the track.
func (tr *Track) Len() int {
	return len(tr.keyframes)
}

// Sample evaluates the track at a point in time. Sampling outside the
// keyframe range clamps to the boundary value; an empty track samples to 0.
func (tr *Track) Sample(time float64) float64 {
	switch len(tr.keyframes) {
	case 0:
		return 0
	case 1:
		return tr.keyframes[0].Value
	}

	first := tr.keyframes[0]
	last := tr.keyframes[len(tr.keyframes)-1]
	if time <= first.Time {
		return first.Value
	}
	if time >= last.Time {
		return last.Value
	}

	// First keyframe strictly after time; prev is its left neighbour.
	i := sort.Search(len(tr.keyframes), func(i int) bool {
		return tr.keyframes[i].Time > time
	})
	prev := tr.keyframes[i-1]
	next := tr.keyframes[i]

	span := next.Time - prev.Time
	p := 0.0
	if span > 0 {
		p = (time - prev.Time) / span
	}

	easing := prev.Easing
	if easing == nil {
		easing = tr.def
	}

	return Lerp(prev.Value, next.Value, Evaluate(easing, p))
}
