package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDurationsRejectsNegatives(t *testing.T) {
	_, err := NewDurations(-1, 0, 0)
	assert.Error(t, err)
	_, err = NewDurations(0, -0.5, 0)
	assert.Error(t, err)
	_, err = NewDurations(0, 0, -2)
	assert.Error(t, err)

	d, err := NewDurations(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d.Total())
}

func TestAdvanceStateLifecycle(t *testing.T) {
	d, err := NewDurations(2, 3, 1)
	require.NoError(t, err)

	cases := []struct {
		name     string
		now      float64
		phase    Phase
		progress float64
	}{
		{"before start", -1, PhaseIdle, 0},
		{"enter begins", 0, PhaseEnter, 0},
		{"mid enter", 1, PhaseEnter, 0.5},
		{"hold begins", 2, PhaseHold, 0},
		{"mid hold", 3.5, PhaseHold, 0.5},
		{"exit begins", 5, PhaseExit, 0},
		{"complete", 6, PhaseComplete, 1},
		{"complete is terminal", 100, PhaseComplete, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := AdvanceState(NewState(0), tc.now, d)
			assert.Equal(t, tc.phase, s.Phase)
			assert.InDelta(t, tc.progress, s.Progress, 1e-12)
			assert.Equal(t, tc.now, s.CurrentTime)
		})
	}
}

func TestAdvanceStateRespectsStartTime(t *testing.T) {
	d, _ := NewDurations(1, 1, 1)
	s := NewState(10)

	s = AdvanceState(s, 5, d)
	assert.Equal(t, PhaseIdle, s.Phase)

	s = AdvanceState(s, 10.5, d)
	assert.Equal(t, PhaseEnter, s.Phase)
	assert.InDelta(t, 0.5, s.Progress, 1e-12)
}

func TestAdvanceStateZeroDurations(t *testing.T) {
	// All-zero durations jump straight to complete.
	d, _ := NewDurations(0, 0, 0)
	s := AdvanceState(NewState(0), 0, d)
	assert.Equal(t, PhaseComplete, s.Phase)
	assert.Equal(t, 1.0, s.Progress)

	// A zero-length middle phase is crossed within one advance.
	d, _ = NewDurations(1, 0, 1)
	s = AdvanceState(NewState(0), 1, d)
	assert.Equal(t, PhaseExit, s.Phase)
	assert.InDelta(t, 0, s.Progress, 1e-12)
}

func TestAdvanceStateIsPure(t *testing.T) {
	d, _ := NewDurations(2, 3, 1)
	base := NewState(0)

	a := AdvanceState(base, 4, d)
	b := AdvanceState(base, 4, d)
	assert.Equal(t, a, b)
	assert.Equal(t, PhaseIdle, base.Phase, "input state must not be mutated")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "enter", PhaseEnter.String())
	assert.Equal(t, "hold", PhaseHold.String())
	assert.Equal(t, "exit", PhaseExit.String())
	assert.Equal(t, "complete", PhaseComplete.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
