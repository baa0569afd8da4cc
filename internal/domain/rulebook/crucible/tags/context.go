package tags

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// StatusSilenced blocks spells
const StatusSilenced = "silenced"

func contextTags() []*action.Tag {
	return []*action.Tag{
		{
			Name:     "spell",
			Label:    "Spell",
			Category: action.CategoryContext,
			Priority: PriorityContext,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.DefenseType = action.DefenseMagical
					setContext(a, "kind", "spell")
					return nil
				},
				CanUse: func(_ context.Context, a *action.Action) error {
					if a.Actor.HasStatus(StatusSilenced) {
						return fmt.Errorf("%s cannot cast while %s", a.Actor.Name(), StatusSilenced)
					}
					return nil
				},
			},
		},
		{
			Name:     "skill",
			Label:    "Skill",
			Category: action.CategoryContext,
			Priority: PriorityContext,
			Hooks: action.Hooks{
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.Bonuses.Skill += a.Actor.SkillBonus(a.ID)
					setContext(a, "kind", "skill")
					return nil
				},
			},
		},
	}
}

func setContext(a *action.Action, key, value string) {
	if a.Usage.Context.Tags == nil {
		a.Usage.Context.Tags = make(map[string]string)
	}
	a.Usage.Context.Tags[key] = value
	if a.Usage.Context.Label == "" {
		a.Usage.Context.Label = a.Name
	}
}
