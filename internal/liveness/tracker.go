package liveness

// Verdict is the debounced reachability belief for the target.
type Verdict int

const (
	Up Verdict = iota
	Down
)

func (v Verdict) String() string {
	if v == Down {
		return "down"
	}

	return "up"
}

// Transition is an edge of the verdict: emitted only when the verdict
// actually changes, never on steady-state probes.
type Transition struct {
	To Verdict
}

// Tracker debounces raw probe outcomes into verdict transitions. Going Down
// requires downThreshold consecutive failures; coming back Up requires
// upThreshold consecutive successes (1 by default, so the first success
// recovers immediately). The initial verdict is Up: a target is assumed
// reachable until proven otherwise, and a restart resets belief.
type Tracker struct {
	verdict              Verdict
	consecutiveFailures  int
	consecutiveSuccesses int
	downThreshold        int
	upThreshold          int
}

func NewTracker(downThreshold, upThreshold int) *Tracker {
	return &Tracker{
		verdict:       Up,
		downThreshold: downThreshold,
		upThreshold:   upThreshold,
	}
}

// Observe consumes one probe outcome. It returns at most one transition per
// call, and only when the verdict changed. No side effects beyond the
// tracker's own state.
func (t *Tracker) Observe(success bool) (Transition, bool) {
	if success {
		t.consecutiveFailures = 0

		if t.verdict == Down {
			t.consecutiveSuccesses++
			if t.consecutiveSuccesses >= t.upThreshold {
				t.verdict = Up
				t.consecutiveSuccesses = 0

				return Transition{To: Up}, true
			}
		}

		return Transition{}, false
	}

	t.consecutiveSuccesses = 0
	t.consecutiveFailures++

	if t.verdict == Up && t.consecutiveFailures >= t.downThreshold {
		t.verdict = Down

		return Transition{To: Down}, true
	}

	return Transition{}, false
}

func (t *Tracker) Verdict() Verdict {
	return t.verdict
}

func (t *Tracker) ConsecutiveFailures() int {
	return t.consecutiveFailures
}
