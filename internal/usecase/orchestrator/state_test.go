package orchestrator

import "testing"

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		from, to State
		want     bool
	}{
		{StateReceived, StateUnderstood, true},
		{StateUnderstood, StateDiscovering, true},
		{StateUnderstood, StateCompleted, true},
		{StateDiscovering, StateScoring, true},
		{StateDiscovering, StateErrored, true},
		{StateScoring, StateEnriching, true},
		{StateEnriching, StateCompleted, true},
		{StateReceived, StateScoring, false},
		{StateCompleted, StateUnderstood, false},
		{StateErrored, StateDiscovering, false},
		{StateScoring, StateReceived, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStateTerminal(t *testing.T) {
	for _, s := range []State{StateReceived, StateUnderstood, StateDiscovering, StateScoring, StateEnriching} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true, want false", s)
		}
	}
	for _, s := range []State{StateCompleted, StateErrored} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
	}
}
