package orchestrator

// State is a phase of one recommendation request.
type State string

const (
	StateReceived    State = "received"
	StateUnderstood  State = "understood"
	StateDiscovering State = "discovering"
	StateScoring     State = "scoring"
	StateEnriching   State = "enriching"
	StateCompleted   State = "completed"
	StateErrored     State = "errored"
)

// transitions lists the legal next states for each state. Completed and
// Errored are terminal.
var transitions = map[State][]State{
	StateReceived:    {StateUnderstood, StateErrored},
	StateUnderstood:  {StateDiscovering, StateCompleted, StateErrored},
	StateDiscovering: {StateScoring, StateCompleted, StateErrored},
	StateScoring:     {StateEnriching, StateCompleted, StateErrored},
	StateEnriching:   {StateCompleted, StateErrored},
}

// CanTransition reports whether moving from s to next is legal.
func (s State) CanTransition(next State) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the state ends the request.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateErrored
}
