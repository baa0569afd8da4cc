package actor

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
	"github.com/KirkDiggler/crucible-engine/internal/effects"
)

const (
	updateEquipmentPrefix  = "equipment."
	updateDroppedSuffix    = ".dropped"
	updateAmmunitionPrefix = "ammunition."
)

// appliedRecord holds the exact changes one use made so they can be undone
type appliedRecord struct {
	resources  map[string]int
	statuses   map[string]statusChange
	dropped    []equipment.Slot
	ammunition map[string]int
	flags      map[string]flagChange
	added      []string
	replaced   []*effects.StatusEffect
	summons    int
}

type statusChange struct {
	previous bool
	existed  bool
}

type flagChange struct {
	previous any
	existed  bool
}

func newAppliedRecord() *appliedRecord {
	return &appliedRecord{
		resources:  make(map[string]int),
		statuses:   make(map[string]statusChange),
		ammunition: make(map[string]int),
		flags:      make(map[string]flagChange),
	}
}

// apply must be called with the lock held
func (a *Actor) apply(useID string, o *action.Outcome) error {
	if _, ok := a.applied[useID]; ok {
		log.Printf("[actor] %s already applied use %s, skipping", a.id, useID)
		return nil
	}
	rec := newAppliedRecord()

	for resource, delta := range o.Resources {
		p, ok := a.pools[resource]
		if !ok {
			continue
		}
		next := min(max(p.Current+delta, 0), p.Max)
		if next != p.Current {
			rec.resources[resource] = next - p.Current
			p.Current = next
		}
	}

	for status, on := range o.Statuses {
		previous, existed := a.statuses[status]
		if previous == on && existed {
			continue
		}
		rec.statuses[status] = statusChange{previous: previous, existed: existed}
		a.statuses[status] = on
	}

	for key, value := range o.ActorUpdates {
		if err := a.applyUpdate(rec, key, value); err != nil {
			a.undo(rec)
			return err
		}
	}

	if len(o.Effects) > 0 {
		before := a.effects.GetActiveEffects()
		for _, e := range o.Effects {
			if err := a.effects.AddEffect(e); err != nil {
				a.undo(rec)
				return fmt.Errorf("failed to add effect %s: %w", e.ID, err)
			}
			if _, ok := a.effects.GetEffect(e.ID); ok {
				rec.added = append(rec.added, e.ID)
			}
		}
		for _, prior := range before {
			if _, still := a.effects.GetEffect(prior.ID); !still {
				rec.replaced = append(rec.replaced, prior)
			}
		}
	}

	a.summons = append(a.summons, o.Summons...)
	rec.summons = len(o.Summons)

	a.applied[useID] = rec
	return nil
}

// reverse must be called with the lock held
func (a *Actor) reverse(useID string) error {
	rec, ok := a.applied[useID]
	if !ok {
		log.Printf("[actor] %s has no applied use %s to reverse", a.id, useID)
		return nil
	}
	a.undo(rec)
	delete(a.applied, useID)
	return nil
}

func (a *Actor) undo(rec *appliedRecord) {
	for resource, delta := range rec.resources {
		if p, ok := a.pools[resource]; ok {
			p.Current = min(max(p.Current-delta, 0), p.Max)
		}
	}
	for status, change := range rec.statuses {
		if change.existed {
			a.statuses[status] = change.previous
		} else {
			delete(a.statuses, status)
		}
	}
	for _, slot := range rec.dropped {
		if w := a.loadout.Get(slot); w != nil {
			w.Dropped = false
		}
	}
	for kind, delta := range rec.ammunition {
		a.loadout.Ammunition[kind] -= delta
	}
	for key, change := range rec.flags {
		if change.existed {
			a.flags[key] = change.previous
		} else {
			delete(a.flags, key)
		}
	}
	for _, id := range rec.added {
		a.effects.RemoveEffect(id)
	}
	for _, e := range rec.replaced {
		if err := a.effects.AddEffect(e); err != nil {
			log.Printf("[actor] %s failed to restore effect %s: %v", a.id, e.ID, err)
		}
	}
	if rec.summons > 0 {
		a.summons = a.summons[:max(len(a.summons)-rec.summons, 0)]
	}
}

func (a *Actor) applyUpdate(rec *appliedRecord, key string, value any) error {
	switch {
	case strings.HasPrefix(key, updateEquipmentPrefix) && strings.HasSuffix(key, updateDroppedSuffix):
		slot := equipment.Slot(strings.TrimSuffix(strings.TrimPrefix(key, updateEquipmentPrefix), updateDroppedSuffix))
		drop, ok := value.(bool)
		if !ok {
			return fmt.Errorf("update %s expects a bool, got %T", key, value)
		}
		if !drop {
			return nil
		}
		w := a.loadout.Get(slot)
		if w == nil || w.Dropped {
			return nil
		}
		rec.dropped = append(rec.dropped, slot)
		w.Dropped = true
	case strings.HasPrefix(key, updateAmmunitionPrefix):
		kind := strings.TrimPrefix(key, updateAmmunitionPrefix)
		delta, err := toInt(value)
		if err != nil {
			return fmt.Errorf("update %s: %w", key, err)
		}
		current := a.loadout.Ammunition[kind]
		next := max(current+delta, 0)
		rec.ammunition[kind] += next - current
		a.loadout.Ammunition[kind] = next
	default:
		if _, seen := rec.flags[key]; !seen {
			previous, existed := a.flags[key]
			rec.flags[key] = flagChange{previous: previous, existed: existed}
		}
		a.flags[key] = value
	}
	return nil
}

// toInt accepts the numeric forms produced by Go code and by JSON decoding
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected a whole number, got %v", n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}
