package anim

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFPS is the target tick rate used when Start is given a rate <= 0.
const DefaultFPS = 60

// throttleFactor sets how close to the target interval a frame must land
// to be accepted. Below it the frame is skipped and the next delta keeps
// measuring from the last accepted tick, so skipping never compounds drift.
const throttleFactor = 0.9

// defaultRefresh is the internal frame-signal period. It oversamples any
// realistic target rate so the throttle governs pacing, the way a display
// refresh outpaces a capped animation.
const defaultRefresh = 4 * time.Millisecond

// TickFunc receives the time since Start and since the last accepted tick,
// both in seconds. Returning false stops the loop.
type TickFunc func(elapsed, delta float64) bool

// A Scheduler drives a TickFunc from a frame-presentation signal, skipping
// frames that arrive faster than the target rate. Evaluation is
// cooperative: ticks for one Scheduler are strictly sequential, and the
// loop never interrupts a callback mid-execution.
type Scheduler struct {
	frames  <-chan time.Time
	refresh time.Duration

	running atomic.Bool
	mu      sync.Mutex
	stop    chan struct{}
}

// NewScheduler creates a Scheduler ticking off an internal timer.
func NewScheduler() *Scheduler {
	s := new(Scheduler)
	s.refresh = defaultRefresh
	return s
}

// NewFrameScheduler creates a Scheduler driven by an external frame
// signal. Each value on frames is the presentation timestamp of one frame.
func NewFrameScheduler(frames <-chan time.Time) *Scheduler {
	s := new(Scheduler)
	s.frames = frames
	return s
}

// Start begins ticking toward targetFPS. Calling Start while the loop is
// already running is a no-op.
func (s *Scheduler) Start(fn TickFunc, targetFPS float64) {
	if fn == nil {
		return
	}
	if targetFPS <= 0 {
		targetFPS = DefaultFPS
	}

	s.mu.Lock()
	if !s.running.CompareAndSwap(false, true) {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	go s.loop(fn, targetFPS, stop)
}

// Stop cancels the pending frame request. It is idempotent and safe to
// call from inside the callback; no tick is delivered after it returns on
// the loop goroutine.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// Running reports whether the loop is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) loop(fn TickFunc, targetFPS float64, stop chan struct{}) {
	frames := s.frames
	if frames == nil {
		ticker := time.NewTicker(s.refresh)
		defer ticker.Stop()
		frames = ticker.C
	}

	minDelta := throttleFactor * (1 / targetFPS)

	var started bool
	var startTime, lastTick time.Time
	for {
		select {
		case <-stop:
			return
		case now, ok := <-frames:
			if !ok {
				s.Stop()
				return
			}
			// A frame and a stop can race; stop wins so a restarted
			// scheduler never shares the signal with a stale loop.
			select {
			case <-stop:
				return
			default:
			}

			if !started {
				// The first frame only anchors the clock.
				started = true
				startTime = now
				lastTick = now
				continue
			}

			delta := now.Sub(lastTick).Seconds()
			if delta < minDelta {
				continue
			}

			lastTick = now
			if !fn(now.Sub(startTime).Seconds(), delta) {
				s.Stop()
				return
			}
			// The callback may have called Stop.
			select {
			case <-stop:
				return
			default:
			}
		}
	}
}
