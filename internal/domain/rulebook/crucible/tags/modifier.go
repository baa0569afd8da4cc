package tags

import (
	"context"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// StatusExposed is queued on the actor by reckless actions
const StatusExposed = "exposed"

func modifierTags() []*action.Tag {
	return []*action.Tag{
		{
			Name:     "deadly",
			Label:    "Deadly",
			Category: action.CategoryModifier,
			Priority: PriorityModifier,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.Bonuses.Multiplier += 0.5
					return nil
				},
			},
		},
		{
			Name:     "empowered",
			Label:    "Empowered",
			Category: action.CategoryModifier,
			Priority: PriorityModifier,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Cost.Focus++
					a.Usage.Bonuses.DamageBonus += 3
					return nil
				},
			},
		},
		{
			Name:     "precise",
			Label:    "Precise",
			Category: action.CategoryModifier,
			Priority: PriorityModifier,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.AddBoon("precise", 1)
					return nil
				},
			},
		},
		{
			Name:     "reckless",
			Label:    "Reckless",
			Category: action.CategoryModifier,
			Priority: PriorityModifier,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.AddBoon("reckless", 2)
					return nil
				},
				PreActivate: func(_ context.Context, a *action.Action) error {
					a.Usage.ActorStatus[StatusExposed] = true
					return nil
				},
			},
		},
	}
}
