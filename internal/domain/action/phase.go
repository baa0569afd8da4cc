package action

import "fmt"

// Phase names a lifecycle phase
type Phase string

const (
	PhaseConfigure    Phase = "configure"
	PhasePrepare      Phase = "prepare"
	PhaseCanUse       Phase = "canUse"
	PhasePreActivate  Phase = "preActivate"
	PhaseRoll         Phase = "roll"
	PhasePostActivate Phase = "postActivate"
	PhaseConfirm      Phase = "confirm"
)

// Phases lists every hook phase in lifecycle order
var Phases = []Phase{
	PhaseConfigure,
	PhasePrepare,
	PhaseCanUse,
	PhasePreActivate,
	PhaseRoll,
	PhasePostActivate,
	PhaseConfirm,
}

// ParsePhase validates a phase name
func ParsePhase(name string) (Phase, error) {
	for _, p := range Phases {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q", name)
}

// State is where an action sits in its lifecycle
type State int

const (
	StateUnprepared State = iota
	StatePrepared
	StateEligible
	StateRejected
	StateTargeted
	StateActivated
	StateOutcomesBuilt
	StateConfirmed
	StateReversed
)

var stateNames = [...]string{
	"unprepared",
	"prepared",
	"eligible",
	"rejected",
	"targeted",
	"activated",
	"outcomes_built",
	"confirmed",
	"reversed",
}

func (s State) String() string {
	if s < StateUnprepared || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is allowed
func (s State) Terminal() bool {
	return s == StateRejected || s == StateConfirmed || s == StateReversed
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown action state %q", text)
}
