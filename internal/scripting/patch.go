package scripting

import (
	"fmt"
	"maps"
	"slices"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// applyUsagePatch merges a script result into the action's usage and cost.
//
// Recognized keys: boons, banes, bonuses, dc, defense_type, damage_type,
// resource, actor_status, actor_flags, actor_updates, cost, context.
func applyUsagePatch(a *action.Action, patch map[string]any) error {
	u := a.Usage
	for _, key := range slices.Sorted(maps.Keys(patch)) {
		value := patch[key]
		var err error
		switch key {
		case "boons":
			err = eachInt(value, func(name string, n int) { u.AddBoon(name, n) })
		case "banes":
			err = eachInt(value, func(name string, n int) { u.AddBane(name, n) })
		case "bonuses":
			err = applyBonuses(&u.Bonuses, value)
		case "dc":
			u.DC, err = asInt(value)
		case "defense_type":
			u.DefenseType, err = asString(value)
		case "damage_type":
			u.DamageType, err = asString(value)
		case "resource":
			u.Resource, err = asString(value)
		case "actor_status":
			err = eachBool(value, func(name string, on bool) { u.ActorStatus[name] = on })
		case "actor_flags":
			err = eachAny(value, func(name string, v any) { u.ActorFlags[name] = v })
		case "actor_updates":
			err = eachAny(value, func(name string, v any) { u.ActorUpdates[name] = v })
		case "cost":
			err = eachInt(value, func(name string, n int) {
				switch name {
				case action.ResourceAction:
					a.Cost.Action += n
				case action.ResourceFocus:
					a.Cost.Focus += n
				case action.ResourceHeroism:
					a.Cost.Heroism += n
				}
			})
		case "context":
			err = eachAny(value, func(name string, v any) {
				if u.Context.Tags == nil {
					u.Context.Tags = make(map[string]string)
				}
				u.Context.Tags[name] = fmt.Sprint(v)
			})
		default:
			err = fmt.Errorf("unknown key")
		}
		if err != nil {
			return fmt.Errorf("patch %s: %w", key, err)
		}
	}
	return nil
}

// applyOutcomePatch merges a script result into one outcome.
//
// Recognized keys: resources, statuses, actor_updates, status_text.
func applyOutcomePatch(o *action.Outcome, patch map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(patch)) {
		value := patch[key]
		var err error
		switch key {
		case "resources":
			err = eachInt(value, func(name string, n int) { o.AddResource(name, n) })
		case "statuses":
			err = eachBool(value, func(name string, on bool) { o.Statuses[name] = on })
		case "actor_updates":
			err = eachAny(value, func(name string, v any) { o.ActorUpdates[name] = v })
		case "status_text":
			o.StatusText, err = asString(value)
		default:
			err = fmt.Errorf("unknown key")
		}
		if err != nil {
			return fmt.Errorf("patch %s: %w", key, err)
		}
	}
	return nil
}

func applyBonuses(b *action.Bonuses, value any) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a map, got %T", value)
	}
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if name == "multiplier" {
			f, err := asFloat(m[name])
			if err != nil {
				return err
			}
			b.Multiplier = f
			continue
		}
		n, err := asInt(m[name])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		switch name {
		case "ability":
			b.Ability += n
		case "skill":
			b.Skill += n
		case "enchantment":
			b.Enchantment += n
		case "base":
			b.Base += n
		case "damage_bonus":
			b.DamageBonus += n
		default:
			return fmt.Errorf("unknown bonus %q", name)
		}
	}
	return nil
}

func eachAny(value any, fn func(string, any)) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a map, got %T", value)
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fn(k, normalize(m[k]))
	}
	return nil
}

func eachInt(value any, fn func(string, int)) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a map, got %T", value)
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		n, err := asInt(m[k])
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		fn(k, n)
	}
	return nil
}

func eachBool(value any, fn func(string, bool)) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a map, got %T", value)
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		b, ok := m[k].(bool)
		if !ok {
			return fmt.Errorf("%s: expected a bool, got %T", k, m[k])
		}
		fn(k, b)
	}
	return nil
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("expected an int, got %T", v)
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

// normalize narrows CEL integers so actor updates see plain ints
func normalize(v any) any {
	if n, ok := v.(int64); ok {
		return int(n)
	}
	return v
}
