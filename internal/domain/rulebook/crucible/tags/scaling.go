package tags

import (
	"context"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

var abilities = []string{"strength", "toughness", "dexterity", "intellect", "presence", "wisdom"}

func scalingTags() []*action.Tag {
	out := make([]*action.Tag, 0, len(abilities))
	for _, ability := range abilities {
		out = append(out, &action.Tag{
			Name:     ability,
			Label:    title(ability),
			Category: action.CategoryScaling,
			Priority: PriorityScaling,
			Hooks: action.Hooks{
				// With several scaling tags the best ability wins
				Prepare: func(_ context.Context, a *action.Action) error {
					a.Usage.Bonuses.Ability = max(a.Usage.Bonuses.Ability, a.Actor.AbilityBonus(ability))
					return nil
				},
			},
		})
	}
	return out
}
