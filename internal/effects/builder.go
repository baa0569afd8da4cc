package effects

import (
	"fmt"
	"time"
)

// Builder helps create status effects
type Builder struct {
	effect *StatusEffect
}

// NewBuilder creates a new effect builder
func NewBuilder(name string) *Builder {
	return &Builder{
		effect: &StatusEffect{
			ID:           fmt.Sprintf("%s_%d", name, time.Now().UnixNano()),
			Name:         name,
			Active:       true,
			StackingRule: StackingStack,
			Duration:     Duration{Type: DurationPermanent},
			Statuses:     []string{},
		},
	}
}

// WithID overrides the generated ID
func (b *Builder) WithID(id string) *Builder {
	b.effect.ID = id
	return b
}

// WithSource sets the effect source
func (b *Builder) WithSource(source EffectSource, sourceID string) *Builder {
	b.effect.Source = source
	b.effect.SourceID = sourceID
	return b
}

// WithOrigin records the actor that applied the effect
func (b *Builder) WithOrigin(actorID string) *Builder {
	b.effect.OriginID = actorID
	return b
}

// WithDescription adds a description
func (b *Builder) WithDescription(desc string) *Builder {
	b.effect.Description = desc
	return b
}

// WithIcon sets the display icon
func (b *Builder) WithIcon(icon string) *Builder {
	b.effect.Icon = icon
	return b
}

// WithDuration sets the duration
func (b *Builder) WithDuration(duration Duration) *Builder {
	if duration.Type == "" {
		duration.Type = DurationPermanent
	}
	b.effect.Duration = duration
	return b
}

// WithStatuses adds statuses the effect grants while active
func (b *Builder) WithStatuses(statuses ...string) *Builder {
	b.effect.Statuses = append(b.effect.Statuses, statuses...)
	return b
}

// WithStackingRule sets how this effect stacks
func (b *Builder) WithStackingRule(rule StackingRule) *Builder {
	b.effect.StackingRule = rule
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *StatusEffect {
	b.effect.Remaining = b.effect.Duration.Length()
	return b.effect
}
