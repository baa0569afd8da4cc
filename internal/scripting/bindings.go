package scripting

import (
	"fmt"

	"github.com/google/cel-go/common/types/ref"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

var pools = []string{
	action.ResourceHealth,
	action.ResourceMorale,
	action.ResourceAction,
	action.ResourceFocus,
	action.ResourceHeroism,
}

// bindings snapshots the action, its actor and an optional outcome target
func bindings(a *action.Action, o *action.Outcome) map[string]any {
	target := map[string]any{}
	if o != nil {
		target = actorMap(o.Target)
		target["self"] = o.Self
		target["succeeded"] = o.Succeeded()
		target["rolls"] = int64(len(o.Rolls))
		target["resources"] = intMapToAny(o.Resources)
	}

	return map[string]any{
		"actor":  actorMap(a.Actor),
		"action": actionMap(a),
		"usage":  usageMap(a.Usage),
		"target": target,
	}
}

func actorMap(actor action.Actor) map[string]any {
	if actor == nil {
		return map[string]any{}
	}

	current := make(map[string]any, len(pools))
	maximum := make(map[string]any, len(pools))
	for _, pool := range pools {
		c, m := actor.Pool(pool)
		current[pool] = int64(c)
		maximum[pool] = int64(m)
	}

	m := map[string]any{
		"id":          actor.ID(),
		"name":        actor.Name(),
		"disposition": int64(actor.Disposition()),
		"pools":       current,
		"max":         maximum,
		"statuses":    []string{},
		"abilities":   map[string]any{},
	}
	if s, ok := actor.(interface{ Statuses() []string }); ok {
		m["statuses"] = s.Statuses()
	}
	if s, ok := actor.(interface{ Abilities() map[string]int }); ok {
		m["abilities"] = intMapToAny(s.Abilities())
	}
	return m
}

func actionMap(a *action.Action) map[string]any {
	var names []string
	if a.Tags != nil {
		names = a.Tags.Names()
	}
	return map[string]any{
		"id":      a.ID,
		"name":    a.Name,
		"use_id":  a.UseID,
		"tags":    names,
		"targets": int64(len(a.Targets)),
		"cost": map[string]any{
			"action":  int64(a.Cost.Action),
			"focus":   int64(a.Cost.Focus),
			"heroism": int64(a.Cost.Heroism),
			"hands":   int64(a.Cost.Hands),
		},
	}
}

func usageMap(u *action.Usage) map[string]any {
	if u == nil {
		return map[string]any{}
	}
	return map[string]any{
		"boons":        int64(u.BoonTotal()),
		"banes":        int64(u.BaneTotal()),
		"dc":           int64(u.DC),
		"defense_type": u.DefenseType,
		"damage_type":  u.DamageType,
		"resource":     u.Resource,
		"has_dice":     u.HasDice,
		"restoration":  u.Restoration,
		"strikes":      int64(len(u.Strikes)),
		"flags":        intMapToAny(u.Flags),
	}
}

// intMapToAny converts to int64 values since CEL integers are 64-bit
func intMapToAny(in map[string]int) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = int64(v)
	}
	return out
}

// convertRefVal converts a CEL value to native Go maps and slices
func convertRefVal(val ref.Val) any {
	native := val.Value()
	switch v := native.(type) {
	case map[ref.Val]ref.Val:
		result := make(map[string]any, len(v))
		for mk, mv := range v {
			result[fmt.Sprintf("%v", mk.Value())] = convertRefVal(mv)
		}
		return result
	case []ref.Val:
		result := make([]any, len(v))
		for i, rv := range v {
			result[i] = convertRefVal(rv)
		}
		return result
	default:
		return native
	}
}
