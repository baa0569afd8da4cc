package action

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
	"github.com/KirkDiggler/crucible-engine/internal/effects"
	"github.com/KirkDiggler/crucible-engine/internal/uuid"
)

// Cost is what an action spends from the actor's pools
type Cost struct {
	Action  int  `json:"action" yaml:"action"`
	Focus   int  `json:"focus" yaml:"focus"`
	Heroism int  `json:"heroism" yaml:"heroism"`
	Weapon  bool `json:"weapon" yaml:"weapon"`

	// Hands is computed during prepare from the queued weapons
	Hands int `json:"hands" yaml:"-"`
}

// Pools returns the pool costs keyed by resource name
func (c Cost) Pools() map[string]int {
	return map[string]int{
		ResourceAction:  c.Action,
		ResourceFocus:   c.Focus,
		ResourceHeroism: c.Heroism,
	}
}

// Range bounds the distance to a target
type Range struct {
	Minimum int `json:"minimum" yaml:"minimum"`
	Maximum int `json:"maximum" yaml:"maximum"`

	// Weapon takes the maximum from the equipped weapon
	Weapon bool `json:"weapon" yaml:"weapon"`
}

// TargetType is how targets are chosen
type TargetType string

const (
	TargetNone   TargetType = "none"
	TargetSelf   TargetType = "self"
	TargetSingle TargetType = "single"
	TargetArea   TargetType = "area"
)

// Scope limits which actors an effect template applies to
type Scope int

const (
	ScopeNone Scope = iota
	ScopeSelf
	ScopeAllies
	ScopeEnemies
	ScopeAll
)

var scopeNames = [...]string{"none", "self", "allies", "enemies", "all"}

func (s Scope) String() string {
	if s < ScopeNone || int(s) >= len(scopeNames) {
		return "unknown"
	}
	return scopeNames[s]
}

// Matches reports whether an effect with this scope applies to the relationship
func (s Scope) Matches(rel Relationship) bool {
	switch s {
	case ScopeAll:
		return true
	case ScopeSelf:
		return rel == RelationSelf
	case ScopeAllies:
		return rel == RelationSelf || rel == RelationAlly
	case ScopeEnemies:
		return rel == RelationEnemy
	}
	return false
}

// MarshalText encodes the scope by name
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a scope name
func (s *Scope) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range scopeNames {
		if n == name {
			*s = Scope(i)
			return nil
		}
	}
	return fmt.Errorf("unknown scope %q", text)
}

// TargetSpec describes what an action may target
type TargetSpec struct {
	Type   TargetType `json:"type" yaml:"type"`
	Number int        `json:"number" yaml:"number"`
	Scope  Scope      `json:"scope" yaml:"scope"`

	// Limit bounds an area template, in distance units
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`

	// Multiple allows the same actor to be targeted this many times
	Multiple int `json:"multiple,omitempty" yaml:"multiple,omitempty"`
}

// EffectTemplate is a status effect granted to matching targets on success
type EffectTemplate struct {
	Name        string           `json:"name" yaml:"name"`
	Icon        string           `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Scope       Scope            `json:"scope" yaml:"scope"`
	Duration    effects.Duration `json:"duration" yaml:"duration"`
	Statuses    []string         `json:"statuses,omitempty" yaml:"statuses,omitempty"`
}

// Definition is the authored form of an action
type Definition struct {
	ID          string
	Name        string
	Img         string
	Description string
	Cost        Cost
	Range       Range
	Target      TargetSpec
	Effects     []EffectTemplate
	Tags        []string
	Inline      []InlineHook

	// Summon names the creature template the summon tag creates
	Summon string
}

// Action is one performable activity bound to an actor. The engine clones a
// cached template for each use; clones share the template's Usage.
type Action struct {
	ID          string
	Name        string
	Img         string
	Description string

	Cost    Cost
	Range   Range
	Target  TargetSpec
	Effects []EffectTemplate
	Tags    *TagSet
	Inline  []InlineHook
	Summon  string

	Actor Actor
	Item  *equipment.Weapon
	Token string

	Usage    *Usage
	UseID    string
	Targets  []*Target
	Outcomes *OutcomeMap

	state State

	// source holds the authored cost and range prepare starts from
	source struct {
		cost Cost
		rng  Range
	}

	roller dice.Roller
	ids    uuid.Generator
}

// NewAction builds an unbound action from a definition
func NewAction(registry *TagRegistry, def Definition) *Action {
	a := &Action{
		ID:          def.ID,
		Name:        def.Name,
		Img:         def.Img,
		Description: def.Description,
		Cost:        def.Cost,
		Range:       def.Range,
		Target:      def.Target,
		Effects:     cloneTemplates(def.Effects),
		Tags:        NewTagSet(registry, def.Tags...),
		Inline:      slices.Clone(def.Inline),
		Summon:      def.Summon,
		Usage:       NewUsage(),
	}
	a.source.cost = def.Cost
	a.source.rng = def.Range
	return a
}

// State returns the lifecycle state
func (a *Action) State() State {
	return a.state
}

// Clone deep-copies the action for a new use. Usage is shared.
func (a *Action) Clone() *Action {
	clone := *a
	clone.Effects = cloneTemplates(a.Effects)
	clone.Tags = a.Tags.Clone()
	clone.Inline = slices.Clone(a.Inline)
	clone.Item = a.Item.Clone()
	clone.Targets = make([]*Target, len(a.Targets))
	for i, t := range a.Targets {
		tc := *t
		clone.Targets[i] = &tc
	}
	clone.Outcomes = a.Outcomes.Clone()
	return &clone
}

// Evaluate rolls a check with the engine's roller and records the target
func (a *Action) Evaluate(c *dice.Check, target Actor) error {
	if target != nil {
		c.Target = target.ID()
	}
	return c.Evaluate(a.roller)
}

// NewID returns a fresh identifier for summons and the like
func (a *Action) NewID() string {
	if a.ids == nil {
		return fmt.Sprintf("%s-%d", a.UseID, len(a.Usage.Summons)+1)
	}
	return a.ids.New()
}

// Weapon returns the originating item or the actor's primary weapon
func (a *Action) Weapon() *equipment.Weapon {
	if a.Item.Usable() {
		return a.Item
	}
	if a.Actor == nil {
		return nil
	}
	return a.Actor.Weapons().Primary()
}

// NewCheck builds a check from the current bonuses, boons and banes
func (a *Action) NewCheck(checkType string, dc int) *dice.Check {
	u := a.Usage
	return dice.NewCheck(dice.CheckParams{
		Type:        checkType,
		Ability:     u.Bonuses.Ability,
		Skill:       u.Bonuses.Skill,
		Enchantment: u.Bonuses.Enchantment,
		Boons:       u.BoonTotal(),
		Banes:       u.BaneTotal(),
		DefenseType: u.DefenseType,
		DC:          dc,
	})
}

// EffectID is the deterministic ID of an effect granted by this use
func (a *Action) EffectID(key string, targetID string) string {
	return fmt.Sprintf("%s.%s.%s", a.UseID, key, targetID)
}

// BuildEffect instantiates a template for a target
func (a *Action) BuildEffect(key string, tmpl EffectTemplate, targetID string) *effects.StatusEffect {
	b := effects.NewBuilder(tmpl.Name).
		WithID(a.EffectID(key, targetID)).
		WithSource(effects.SourceAction, a.ID).
		WithDescription(tmpl.Description).
		WithIcon(tmpl.Icon).
		WithDuration(tmpl.Duration).
		WithStatuses(tmpl.Statuses...)
	if a.Actor != nil {
		b = b.WithOrigin(a.Actor.ID())
	}
	return b.Build()
}

func cloneTemplates(templates []EffectTemplate) []EffectTemplate {
	if templates == nil {
		return nil
	}
	out := make([]EffectTemplate, len(templates))
	for i, t := range templates {
		t.Statuses = slices.Clone(t.Statuses)
		out[i] = t
	}
	return out
}
