package tags

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/damage"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

func attackTags() []*action.Tag {
	return []*action.Tag{
		{
			Name:     "attack",
			Label:    "Attack",
			Category: action.CategoryAttack,
			Priority: PriorityAttack,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.HasDice = true
					if !a.Cost.Weapon {
						return nil
					}
					w := a.Weapon()
					if w == nil {
						return nil
					}
					a.Usage.Bonuses.Base += w.Damage
					a.Usage.Bonuses.Enchantment += w.Enchantment
					if a.Usage.DamageType == "" {
						a.Usage.DamageType = w.DamageType
					}
					return nil
				},
				// Queued strikes are rolled by the strike tag instead
				Roll: func(_ context.Context, a *action.Action, t *action.Target, o *action.Outcome) error {
					if len(a.Usage.Strikes) > 0 || a.Usage.Restoration {
						return nil
					}
					if action.Relate(a.Actor, t.Actor) == action.RelationSelf {
						return nil
					}
					check, err := rollAttack(a, t, a.Usage.Bonuses.Base, a.Usage.DamageType)
					if err != nil {
						return err
					}
					o.Rolls = append(o.Rolls, check)
					return nil
				},
			},
		},
		{
			Name:      "strike",
			Label:     "Strike",
			Category:  action.CategoryAttack,
			Priority:  action.PriorityLast,
			Propagate: []string{"attack"},
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					if len(a.Usage.Strikes) > 0 {
						return nil
					}
					loadout := a.Actor.Weapons()
					for _, slot := range []equipment.Slot{equipment.SlotMainhand, equipment.SlotNatural, equipment.SlotOffhand} {
						if w := loadout.Get(slot); w.Usable() {
							a.Usage.QueueStrike(slot, w)
							break
						}
					}
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					if len(a.Usage.Strikes) == 0 {
						return fmt.Errorf("%s has no weapon to strike with", a.Actor.Name())
					}
					return nil
				},
				Roll: func(_ context.Context, a *action.Action, t *action.Target, o *action.Outcome) error {
					if action.Relate(a.Actor, t.Actor) == action.RelationSelf {
						return nil
					}
					for _, s := range a.Usage.Strikes {
						check, err := rollStrike(a, t, s.Weapon, strikeDamageType(a, s.Weapon))
						if err != nil {
							return err
						}
						o.Rolls = append(o.Rolls, check)
					}
					return nil
				},
			},
		},
	}
}

// rollAttack rolls against the target's defense, or the usage DC when set,
// and attaches damage on a hit
func rollAttack(a *action.Action, t *action.Target, base int, damageType string) (*dice.Check, error) {
	dc := a.Usage.DC
	if dc == 0 {
		dc = t.Actor.Defense(a.Usage.DefenseType)
	}
	check := a.NewCheck(dice.CheckAttack, dc)
	if err := a.Evaluate(check, t.Actor); err != nil {
		return nil, err
	}
	if check.IsSuccess() {
		params := damage.NewParams(check.Overflow())
		params.Multiplier = a.Usage.Bonuses.Multiplier
		params.Base = base
		params.Bonus = a.Usage.Bonuses.DamageBonus
		params.Resistance = t.Actor.Resistance(damageType)
		check.Damage = damage.NewPayload(params, damageType, a.Usage.Resource)
	}
	return check, nil
}

// strikeDamageType is the struck weapon's own type unless a damage tag or
// script replaced the type the attack tag copied from the held weapon
func strikeDamageType(a *action.Action, w *equipment.Weapon) string {
	override := a.Usage.DamageType
	if override == "" {
		return w.DamageType
	}
	if held := a.Weapon(); held != nil && held.DamageType == override {
		return w.DamageType
	}
	return override
}

// rollStrike rolls one queued weapon with its own enchantment and damage
func rollStrike(a *action.Action, t *action.Target, w *equipment.Weapon, damageType string) (*dice.Check, error) {
	saved := a.Usage.Bonuses.Enchantment
	a.Usage.Bonuses.Enchantment = w.Enchantment
	defer func() { a.Usage.Bonuses.Enchantment = saved }()

	return rollAttack(a, t, w.Damage, damageType)
}
