package tags

import (
	"context"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/damage"
)

// Damage types with a tag of their own
var damageTypes = []string{"fire", "cold", "electricity", "piercing", "slashing", "bludgeoning"}

func damageTags() []*action.Tag {
	out := []*action.Tag{
		{
			Name:     "healing",
			Label:    "Healing",
			Category: action.CategoryDamage,
			Priority: PriorityDamage,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.Restoration = true
					a.Usage.HasDice = true
					a.Usage.DamageType = "healing"
					return nil
				},
				Roll: func(_ context.Context, a *action.Action, t *action.Target, o *action.Outcome) error {
					if action.Relate(a.Actor, t.Actor) == action.RelationEnemy {
						return nil
					}
					check := a.NewCheck(dice.CheckRestoration, a.Usage.DC)
					if err := a.Evaluate(check, t.Actor); err != nil {
						return err
					}
					params := damage.NewParams(check.Overflow())
					params.Base = a.Usage.Bonuses.Base
					params.Bonus = a.Usage.Bonuses.DamageBonus
					params.Multiplier = a.Usage.Bonuses.Multiplier
					params.Restoration = true
					check.Damage = damage.NewPayload(params, a.Usage.DamageType, a.Usage.Resource)
					o.Rolls = append(o.Rolls, check)
					return nil
				},
			},
		},
	}
	for _, name := range damageTypes {
		out = append(out, damageTypeTag(name))
	}
	return out
}

func damageTypeTag(name string) *action.Tag {
	return &action.Tag{
		Name:     name,
		Label:    title(name),
		Category: action.CategoryDamage,
		Priority: PriorityDamage,
		Hooks: action.Hooks{
			Prepare: func(_ context.Context, a *action.Action) error {
				a.Usage.DamageType = name
				return nil
			},
		},
	}
}
