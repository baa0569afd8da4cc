// Package actor is the in-memory combatant used by the engine. Applying an
// outcome records exactly what changed so reversing it restores the actor.
package actor

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
	"github.com/KirkDiggler/crucible-engine/internal/effects"
)

// StatusUnconscious is reported while the health pool is empty
const StatusUnconscious = "unconscious"

// Pool is a bounded resource
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Actor is a combatant with pools, statuses, equipment and effects
type Actor struct {
	id          string
	name        string
	disposition action.Disposition

	pools       map[string]*Pool
	abilities   map[string]int
	skills      map[string]int
	defenses    map[string]int
	resistances map[string]int
	statuses    map[string]bool
	loadout     *equipment.Loadout
	flags       map[string]any
	summons     []action.Summon
	actions     []string

	effects *effects.Manager
	applied map[string]*appliedRecord

	mu sync.RWMutex
}

// New builds an actor from a sheet. Pools start full.
func New(sheet Sheet) (*Actor, error) {
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	disposition, _ := ParseDisposition(sheet.Disposition)

	a := &Actor{
		id:          sheet.ID,
		name:        sheet.Name,
		disposition: disposition,
		pools:       make(map[string]*Pool, len(sheet.Pools)),
		abilities:   copyInts(sheet.Abilities),
		skills:      copyInts(sheet.Skills),
		defenses:    copyInts(sheet.Defenses),
		resistances: copyInts(sheet.Resistances),
		statuses:    make(map[string]bool),
		loadout:     sheet.Loadout.Clone(),
		flags:       make(map[string]any),
		actions:     slices.Clone(sheet.Actions),
		effects:     effects.NewManager(),
		applied:     make(map[string]*appliedRecord),
	}
	for name, maximum := range sheet.Pools {
		a.pools[name] = &Pool{Current: maximum, Max: maximum}
	}
	for _, status := range sheet.Statuses {
		a.statuses[status] = true
	}
	if a.loadout == nil {
		a.loadout = &equipment.Loadout{}
	}
	if a.loadout.Ammunition == nil {
		a.loadout.Ammunition = make(map[string]int)
	}
	return a, nil
}

func (a *Actor) ID() string {
	return a.id
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) Disposition() action.Disposition {
	return a.disposition
}

// Actions lists the action IDs the actor knows
func (a *Actor) Actions() []string {
	return slices.Clone(a.actions)
}

// Pool returns the current and maximum of a pool; unknown pools are 0, 0
func (a *Actor) Pool(name string) (current, maximum int) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if p, ok := a.pools[name]; ok {
		return p.Current, p.Max
	}
	return 0, 0
}

// SetPool overwrites a pool's current value within its bounds
func (a *Actor) SetPool(name string, current int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if p, ok := a.pools[name]; ok {
		p.Current = min(max(current, 0), p.Max)
	}
}

// HasStatus checks base statuses, effect-granted statuses and the derived
// unconscious status
func (a *Actor) HasStatus(status string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.statuses[status] || a.effects.HasStatus(status) {
		return true
	}
	if status == StatusUnconscious {
		if p, ok := a.pools[action.ResourceHealth]; ok && p.Max > 0 && p.Current <= 0 {
			return true
		}
	}
	return false
}

// Statuses returns every active status, sorted
func (a *Actor) Statuses() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	set := make(map[string]bool)
	for s, on := range a.statuses {
		if on {
			set[s] = true
		}
	}
	for _, e := range a.effects.GetActiveEffects() {
		for _, s := range e.Statuses {
			set[s] = true
		}
	}
	return slices.Sorted(maps.Keys(set))
}

func (a *Actor) AbilityBonus(ability string) int {
	return a.abilities[ability]
}

// Abilities returns a copy of the ability bonuses
func (a *Actor) Abilities() map[string]int {
	return maps.Clone(a.abilities)
}

func (a *Actor) SkillBonus(skill string) int {
	return a.skills[skill]
}

// Defense returns the DC for checks against the actor; unset kinds default to 10
func (a *Actor) Defense(kind string) int {
	if d, ok := a.defenses[kind]; ok {
		return d
	}
	return 10
}

func (a *Actor) Resistance(damageType string) int {
	return a.resistances[damageType]
}

// Weapons returns a copy of the current loadout
func (a *Actor) Weapons() *equipment.Loadout {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.loadout.Clone()
}

// Equip puts a copy of w in slot and returns what was held there
func (a *Actor) Equip(slot equipment.Slot, w *equipment.Weapon) *equipment.Weapon {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.loadout.Set(slot, w.Clone())
}

// UpdateFlags merges flags into the actor
func (a *Actor) UpdateFlags(flags map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	maps.Copy(a.flags, flags)
}

// Flag returns a single flag value
func (a *Actor) Flag(key string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	v, ok := a.flags[key]
	return v, ok
}

// Summons returns the creatures this actor has summoned
func (a *Actor) Summons() []action.Summon {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.summons)
}

// Effects returns the active status effects
func (a *Actor) Effects() []*effects.StatusEffect {
	return a.effects.GetActiveEffects()
}

// EndRound ticks round-based effects and returns the IDs that expired
func (a *Actor) EndRound() []string {
	return a.effects.ProcessRoundEnd()
}

// EndTurn ticks turn-based effects and returns the IDs that expired
func (a *Actor) EndTurn() []string {
	return a.effects.ProcessTurnEnd()
}

// Applied reports whether a use has been applied and not reversed
func (a *Actor) Applied(useID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.applied[useID]
	return ok
}

// ApplyActionOutcome applies an outcome once per use. Reverse undoes exactly
// what was applied; both directions are idempotent.
func (a *Actor) ApplyActionOutcome(_ context.Context, act *action.Action, o *action.Outcome, opts action.ApplyOptions) error {
	if act == nil || o == nil {
		return fmt.Errorf("action and outcome are required")
	}
	if o.TargetID != a.id {
		return fmt.Errorf("outcome for %s applied to %s", o.TargetID, a.id)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if opts.Reverse {
		return a.reverse(act.UseID)
	}
	return a.apply(act.UseID, o)
}

// String renders a one-line summary for logs and the CLI
func (a *Actor) String() string {
	a.mu.RLock()
	names := slices.Sorted(maps.Keys(a.pools))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		p := a.pools[name]
		parts = append(parts, fmt.Sprintf("%s %d/%d", name, p.Current, p.Max))
	}
	a.mu.RUnlock()

	out := fmt.Sprintf("%s [%s]", a.name, strings.Join(parts, ", "))
	if statuses := a.Statuses(); len(statuses) > 0 {
		out += " {" + strings.Join(statuses, ", ") + "}"
	}
	return out
}

func copyInts(in map[string]int) map[string]int {
	if in == nil {
		return make(map[string]int)
	}
	return maps.Clone(in)
}
