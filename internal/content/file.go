// Package content loads action definitions and actor sheets from YAML.
//
// A content file lists actions and actors:
//
//	actions:
//	  - id: strike
//	    name: Strike
//	    cost: {action: 1}
//	    target: {type: single, number: 1, scope: enemies}
//	    tags: [mainhand, strike, strength]
//	actors:
//	  - id: goblin
//	    name: Goblin
//	    disposition: hostile
//	    pools: {health: 12, action: 3}
package content

import (
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	"github.com/KirkDiggler/crucible-engine/internal/scripting"
)

// File is the top-level structure of a content file
type File struct {
	Actions []ActionSpec  `yaml:"actions"`
	Actors  []actor.Sheet `yaml:"actors"`
}

// ActionSpec is the authored form of an action with its inline scripts
type ActionSpec struct {
	ID          string                  `yaml:"id"`
	Name        string                  `yaml:"name"`
	Img         string                  `yaml:"img,omitempty"`
	Description string                  `yaml:"description,omitempty"`
	Cost        action.Cost             `yaml:"cost"`
	Range       action.Range            `yaml:"range,omitempty"`
	Target      action.TargetSpec       `yaml:"target"`
	Effects     []action.EffectTemplate `yaml:"effects,omitempty"`
	Tags        []string                `yaml:"tags"`
	Summon      string                  `yaml:"summon,omitempty"`
	Scripts     []scripting.Script      `yaml:"scripts,omitempty"`
}

func (s *ActionSpec) validate() error {
	if s.ID == "" {
		return fmt.Errorf("action must have an id")
	}
	if s.Name == "" {
		s.Name = s.ID
	}
	switch s.Target.Type {
	case "", action.TargetNone, action.TargetSelf, action.TargetSingle, action.TargetArea:
	default:
		return fmt.Errorf("action %s has unknown target type %q", s.ID, s.Target.Type)
	}
	if s.Cost.Action < 0 || s.Cost.Focus < 0 || s.Cost.Heroism < 0 {
		return fmt.Errorf("action %s cannot have a negative cost", s.ID)
	}
	return nil
}

func (s *ActionSpec) definition(hooks []action.InlineHook) action.Definition {
	return action.Definition{
		ID:          s.ID,
		Name:        s.Name,
		Img:         s.Img,
		Description: s.Description,
		Cost:        s.Cost,
		Range:       s.Range,
		Target:      s.Target,
		Effects:     s.Effects,
		Tags:        s.Tags,
		Inline:      hooks,
		Summon:      s.Summon,
	}
}
