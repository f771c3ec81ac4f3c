package stream

import (
	"log"
	"sync"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vidmix/motion/anim"
)

// Streamer streams RGB data frames to an ledrx device, paced by the
// animation scheduler and cycling through animations with a cross-fade.
type Streamer struct {
	client     mqtt.Client
	config     Config
	scheduler  *anim.Scheduler
	controller *Controller
	animations []Animation
	current    int
	nextCycle  float64
	quit       chan struct{}
	quitOnce   sync.Once
}

// NewStreamer creates an instance of a Streamer. It fails only on an
// invalid phase duration set in the config.
func NewStreamer(config Config, client mqtt.Client) (*Streamer, error) {
	s := new(Streamer)
	s.client = client
	s.config = config
	s.applyDefaults()

	durations, err := anim.NewDurations(
		s.config.Animation.EnterSeconds,
		s.config.Animation.HoldSeconds,
		s.config.Animation.ExitSeconds)
	if err != nil {
		return nil, err
	}

	backColour, _ := colorful.Hex("#000005")
	foreColour, _ := colorful.Hex("#808080")
	headColour, _ := colorful.Hex("#a03010")

	numPixels := s.config.Animation.NumPixels
	s.animations = []Animation{
		NewPulse(numPixels, backColour, foreColour, durations, anim.Center),
		NewSweep(numPixels, backColour, headColour, 24),
	}
	s.controller = NewController(s.animations[0], s.config.Animation.FadeSeconds)
	s.scheduler = anim.NewScheduler()
	s.nextCycle = s.config.Animation.CycleSeconds
	s.quit = make(chan struct{})

	return s, nil
}

func (s *Streamer) applyDefaults() {
	a := &s.config.Animation
	if a.FrameRate <= 0 {
		a.FrameRate = 30
	}
	if a.NumPixels <= 0 {
		a.NumPixels = 500
	}
	if a.CycleSeconds <= 0 {
		a.CycleSeconds = 60
	}
	if a.FadeSeconds <= 0 {
		a.FadeSeconds = 5
	}
	if a.EnterSeconds == 0 && a.HoldSeconds == 0 && a.ExitSeconds == 0 {
		a.EnterSeconds = 2
		a.HoldSeconds = 20
		a.ExitSeconds = 3
	}
}

func (s *Streamer) tick(elapsed, delta float64) bool {
	if elapsed >= s.nextCycle {
		s.cycleAnimation()
		s.nextCycle += s.config.Animation.CycleSeconds
	}

	f := s.controller.CalculateFrame(elapsed)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
	return true
}

func (s *Streamer) cycleAnimation() {
	s.current = (s.current + 1) % len(s.animations)
	log.Printf("cycling to %T", s.animations[s.current])
	s.controller.CrossfadeTo(s.animations[s.current])
}

// Run starts the frame loop and blocks until Stop is called.
func (s *Streamer) Run() {
	s.scheduler.Start(s.tick, s.config.Animation.FrameRate)
	<-s.quit
}

// Stop halts the frame loop. Idempotent.
func (s *Streamer) Stop() {
	s.scheduler.Stop()
	s.quitOnce.Do(func() { close(s.quit) })
}
