package action

import "context"

// Hooks is the closed set of lifecycle callbacks a tag, inline script or
// external module may contribute. Nil fields are skipped.
type Hooks struct {
	// Configure runs once when the action is initialized for an actor
	Configure func(ctx context.Context, a *Action) error

	// Prepare recomputes cost, range and bonuses. It must be idempotent.
	Prepare func(ctx context.Context, a *Action) error

	// CanUse blocks use by returning an error. It must not mutate state.
	CanUse func(ctx context.Context, a *Action) error

	// PreActivate may mutate a.Targets and usage before rolls
	PreActivate func(ctx context.Context, a *Action) error

	// Roll appends checks to the outcome for one target
	Roll func(ctx context.Context, a *Action, t *Target, o *Outcome) error

	// PostActivate reacts to a finished outcome, including the self-outcome
	PostActivate func(ctx context.Context, a *Action, o *Outcome) error

	// Confirm runs when the outcome map is applied or reversed
	Confirm func(ctx context.Context, a *Action, reverse bool) error
}

// Has reports whether a callback exists for the phase
func (h Hooks) Has(phase Phase) bool {
	switch phase {
	case PhaseConfigure:
		return h.Configure != nil
	case PhasePrepare:
		return h.Prepare != nil
	case PhaseCanUse:
		return h.CanUse != nil
	case PhasePreActivate:
		return h.PreActivate != nil
	case PhaseRoll:
		return h.Roll != nil
	case PhasePostActivate:
		return h.PostActivate != nil
	case PhaseConfirm:
		return h.Confirm != nil
	}
	return false
}

// Empty reports whether no callback is set
func (h Hooks) Empty() bool {
	for _, p := range Phases {
		if h.Has(p) {
			return false
		}
	}
	return true
}

// InlineHook is a per-action hook, either a Go callback or a compiled script
type InlineHook struct {
	Name  string
	Hooks Hooks
}

// externalHook is registered on the engine by an outside module
type externalHook struct {
	source string
	hooks  Hooks
}
