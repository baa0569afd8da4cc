package tags

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

// Turn flags kept in Usage.Flags
const (
	FlagReactions = "reactions"
	FlagMoves     = "moves"
)

func requirementTags() []*action.Tag {
	return []*action.Tag{
		{
			Name:     "melee",
			Label:    "Melee",
			Category: action.CategoryRequirement,
			Priority: PriorityRequirement,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Cost.Weapon = true
					if a.Range.Maximum == 0 {
						a.Range.Maximum = 1
					}
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					if w := a.Weapon(); !w.IsMelee() && !w.HasProperty(equipment.PropertyNatural) {
						return fmt.Errorf("%s requires a melee weapon", a.Name)
					}
					return nil
				},
			},
		},
		{
			Name:      "ranged",
			Label:     "Ranged",
			Category:  action.CategoryRequirement,
			Priority:  PriorityRequirement,
			Propagate: []string{"ammunition"},
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Cost.Weapon = true
					if w := a.Weapon(); w != nil && w.Range > a.Range.Maximum {
						a.Range.Maximum = w.Range
					}
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					if w := a.Weapon(); !w.IsRanged() && !w.HasProperty(equipment.PropertyThrown) {
						return fmt.Errorf("%s requires a ranged or thrown weapon", a.Name)
					}
					return nil
				},
			},
		},
		slotTag("mainhand", "Main Hand", equipment.SlotMainhand, nil),
		slotTag("offhand", "Off Hand", equipment.SlotOffhand, func(a *action.Action) {
			a.Usage.AddBane("offhand", 1)
		}),
		{
			Name:      "twohand",
			Label:     "Two-Handed",
			Category:  action.CategoryRequirement,
			Priority:  PriorityRequirement,
			Propagate: []string{"mainhand"},
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.Bonuses.DamageBonus += 2
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					loadout := a.Actor.Weapons()
					if !loadout.Mainhand.IsTwoHanded() {
						return fmt.Errorf("%s requires a two-handed weapon", a.Name)
					}
					if loadout.Offhand.Usable() {
						return fmt.Errorf("%s needs a free off hand", a.Name)
					}
					return nil
				},
			},
		},
		{
			Name:     "reaction",
			Label:    "Reaction",
			Category: action.CategoryRequirement,
			Priority: PriorityRequirement,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Cost.Action = 0
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					if a.Usage.Flags[FlagReactions] > 0 {
						return fmt.Errorf("%s has already reacted this turn", a.Actor.Name())
					}
					return nil
				},
				PreActivate: func(_ context.Context, a *action.Action) error {
					countTurnFlag(a, FlagReactions)
					return nil
				},
				Confirm: func(_ context.Context, a *action.Action, reverse bool) error {
					if reverse {
						refundTurnFlag(a, FlagReactions)
					}
					return nil
				},
			},
		},
		{
			Name:     "movement",
			Label:    "Movement",
			Category: action.CategoryRequirement,
			Priority: PriorityRequirement,
			Hooks: action.Hooks{
				// Each move after the first in a turn costs one more action
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Cost.Action += a.Usage.Flags[FlagMoves]
					return nil
				},
				PreActivate: func(_ context.Context, a *action.Action) error {
					countTurnFlag(a, FlagMoves)
					a.Usage.ActorFlags["moved"] = true
					return nil
				},
				Confirm: func(_ context.Context, a *action.Action, reverse bool) error {
					if reverse {
						refundTurnFlag(a, FlagMoves)
					}
					return nil
				},
			},
		},
	}
}

func slotTag(name, label string, slot equipment.Slot, extra func(*action.Action)) *action.Tag {
	return &action.Tag{
		Name:     name,
		Label:    label,
		Category: action.CategoryRequirement,
		Priority: PriorityRequirement,
		Hooks: action.Hooks{
			Prepare: func(_ context.Context, a *action.Action) error {
				a.Cost.Weapon = true
				if w := a.Actor.Weapons().Get(slot); w.Usable() {
					a.Usage.QueueStrike(slot, w)
				}
				if extra != nil {
					extra(a)
				}
				return nil
			},
			CanUse: func(_ context.Context, a *action.Action) error {
				if !a.Actor.Weapons().Get(slot).Usable() {
					return fmt.Errorf("%s requires a usable %s weapon", a.Name, slot)
				}
				return nil
			},
		},
	}
}

// countTurnFlag bumps a turn counter and remembers which use did it
func countTurnFlag(a *action.Action, flag string) {
	a.Usage.Flags[flag]++
	a.Usage.Flags[flag+":"+a.UseID] = 1
}

// refundTurnFlag gives back the count a use added, if it was added this turn
func refundTurnFlag(a *action.Action, flag string) {
	key := flag + ":" + a.UseID
	if a.Usage.Flags[key] == 0 {
		return
	}
	delete(a.Usage.Flags, key)
	a.Usage.Flags[flag] = max(a.Usage.Flags[flag]-1, 0)
}
