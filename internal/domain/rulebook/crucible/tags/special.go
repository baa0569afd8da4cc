package tags

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

func specialTags() []*action.Tag {
	return []*action.Tag{
		{
			Name:     "thrown",
			Label:    "Thrown",
			Category: action.CategorySpecial,
			Priority: PrioritySpecial,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					if w := a.Weapon(); w.HasProperty(equipment.PropertyThrown) {
						a.Range.Maximum = max(a.Range.Maximum, w.Range)
					}
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					if !a.Weapon().HasProperty(equipment.PropertyThrown) {
						return fmt.Errorf("%s requires a thrown weapon", a.Name)
					}
					return nil
				},
				// The weapon leaves the hand when the throw is confirmed
				PreActivate: func(_ context.Context, a *action.Action) error {
					slot := heldSlot(a)
					a.Usage.ActorUpdates[fmt.Sprintf("equipment.%s.dropped", slot)] = true
					return nil
				},
			},
		},
		{
			Name:     "ammunition",
			Label:    "Ammunition",
			Category: action.CategorySpecial,
			Priority: PrioritySpecial,
			Hooks: action.Hooks{
				CanUse: func(_ context.Context, a *action.Action) error {
					kind, need := ammunitionNeeded(a)
					if kind == "" {
						return nil
					}
					if have := a.Actor.Weapons().Ammunition[kind]; have < need {
						return fmt.Errorf("%s needs %d %s but has %d", a.Actor.Name(), need, kind, have)
					}
					return nil
				},
				PreActivate: func(_ context.Context, a *action.Action) error {
					if kind, need := ammunitionNeeded(a); kind != "" {
						a.Usage.ActorUpdates["ammunition."+kind] = -need
					}
					return nil
				},
			},
		},
		{
			Name:     "disarm",
			Label:    "Disarm",
			Category: action.CategorySpecial,
			Priority: PrioritySpecial,
			Hooks: action.Hooks{
				PostActivate: func(_ context.Context, a *action.Action, o *action.Outcome) error {
					if o.Self || len(o.Rolls) == 0 || !o.Succeeded() {
						return nil
					}
					o.ActorUpdates[fmt.Sprintf("equipment.%s.dropped", equipment.SlotMainhand)] = true
					return nil
				},
			},
		},
		{
			Name:     "summon",
			Label:    "Summon",
			Category: action.CategorySpecial,
			Priority: PrioritySpecial,
			Hooks: action.Hooks{
				CanUse: func(_ context.Context, a *action.Action) error {
					if a.Summon == "" {
						return fmt.Errorf("%s does not name a creature to summon", a.Name)
					}
					return nil
				},
				PreActivate: func(_ context.Context, a *action.Action) error {
					a.Usage.Summons = append(a.Usage.Summons, action.Summon{
						ID:       a.NewID(),
						Name:     title(a.Summon),
						Template: a.Summon,
					})
					return nil
				},
			},
		},
		{
			Name:      "cleave",
			Label:     "Cleave",
			Category:  action.CategorySpecial,
			Priority:  PrioritySpecial,
			Propagate: []string{"melee"},
			Hooks: action.Hooks{
				// Every enemy in reach, once
				Configure: func(_ context.Context, a *action.Action) error {
					a.Target.Type = action.TargetArea
					a.Target.Number = 0
					a.Target.Scope = action.ScopeEnemies
					a.Target.Multiple = 1
					return nil
				},
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.AddBane("cleave", 1)
					return nil
				},
			},
		},
	}
}

// heldSlot is the slot the action's weapon is held in
func heldSlot(a *action.Action) equipment.Slot {
	if len(a.Usage.Strikes) > 0 {
		return a.Usage.Strikes[0].Slot
	}
	loadout := a.Actor.Weapons()
	w := a.Weapon()
	for _, slot := range []equipment.Slot{equipment.SlotMainhand, equipment.SlotOffhand, equipment.SlotNatural} {
		if held := loadout.Get(slot); held != nil && w != nil && held.ID == w.ID {
			return slot
		}
	}
	return equipment.SlotMainhand
}

// ammunitionNeeded returns the ammunition kind and one round per strike
func ammunitionNeeded(a *action.Action) (string, int) {
	w := a.Weapon()
	if len(a.Usage.Strikes) > 0 {
		w = a.Usage.Strikes[0].Weapon
	}
	if w == nil || w.Ammunition == "" {
		return "", 0
	}
	return w.Ammunition, max(len(a.Usage.Strikes), 1)
}
