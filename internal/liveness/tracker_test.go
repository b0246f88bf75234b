package liveness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_StartsUp(t *testing.T) {
	tracker := NewTracker(3, 1)

	require.Equal(t, Up, tracker.Verdict())
	require.Zero(t, tracker.ConsecutiveFailures())
}

func TestTracker_GoesDownOnThresholdConsecutiveFailures(t *testing.T) {
	tracker := NewTracker(3, 1)

	_, changed := tracker.Observe(false)
	require.False(t, changed)
	require.Equal(t, 1, tracker.ConsecutiveFailures())

	_, changed = tracker.Observe(false)
	require.False(t, changed)
	require.Equal(t, Up, tracker.Verdict())

	tr, changed := tracker.Observe(false)
	require.True(t, changed)
	require.Equal(t, Transition{To: Down}, tr)
	require.Equal(t, Down, tracker.Verdict())
}

func TestTracker_StaysDownWithoutDuplicateTransitions(t *testing.T) {
	tracker := newDownTracker(t, 3)

	_, changed := tracker.Observe(false)
	require.False(t, changed)
	require.Equal(t, Down, tracker.Verdict())
}

func TestTracker_RecoversOnFirstSuccess(t *testing.T) {
	tracker := newDownTracker(t, 3)

	tr, changed := tracker.Observe(true)
	require.True(t, changed)
	require.Equal(t, Transition{To: Up}, tr)
	require.Equal(t, Up, tracker.Verdict())
	require.Zero(t, tracker.ConsecutiveFailures())
}

func TestTracker_SuccessResetsFailureCount(t *testing.T) {
	// fail, fail, success, fail, fail, fail: the success at probe 3 resets
	// the counter, so the only transition is Down at probe 6.
	tracker := NewTracker(3, 1)

	outcomes := []bool{false, false, true, false, false, false}

	var transitions []Transition
	for _, success := range outcomes {
		if tr, changed := tracker.Observe(success); changed {
			transitions = append(transitions, tr)
		}
	}

	require.Equal(t, []Transition{{To: Down}}, transitions)
	require.Equal(t, Down, tracker.Verdict())
}

func TestTracker_ConfigurableUpThreshold(t *testing.T) {
	tracker := NewTracker(3, 2)

	for i := 0; i < 3; i++ {
		tracker.Observe(false)
	}
	require.Equal(t, Down, tracker.Verdict())

	_, changed := tracker.Observe(true)
	require.False(t, changed)
	require.Equal(t, Down, tracker.Verdict())

	// A failure in between resets the recovery count.
	_, changed = tracker.Observe(false)
	require.False(t, changed)

	_, changed = tracker.Observe(true)
	require.False(t, changed)

	tr, changed := tracker.Observe(true)
	require.True(t, changed)
	require.Equal(t, Transition{To: Up}, tr)
}

func TestTracker_DownThresholdOne(t *testing.T) {
	tracker := NewTracker(1, 1)

	tr, changed := tracker.Observe(false)
	require.True(t, changed)
	require.Equal(t, Transition{To: Down}, tr)
}

func newDownTracker(t *testing.T, downThreshold int) *Tracker {
	t.Helper()

	tracker := NewTracker(downThreshold, 1)
	for i := 0; i < downThreshold; i++ {
		tracker.Observe(false)
	}

	require.Equal(t, Down, tracker.Verdict())

	return tracker
}
