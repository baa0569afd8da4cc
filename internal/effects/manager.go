package effects

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Manager manages status effects for an actor
type Manager struct {
	effects map[string]*StatusEffect
	mu      sync.RWMutex
}

// NewManager creates a new effect manager
func NewManager() *Manager {
	return &Manager{
		effects: make(map[string]*StatusEffect),
	}
}

// AddEffect adds a new status effect
func (m *Manager) AddEffect(effect *StatusEffect) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if effect.ID == "" {
		return fmt.Errorf("effect must have an ID")
	}

	// Handle stacking rules with existing effects of the same name
	for id, existing := range m.effects {
		if existing.Name != effect.Name || existing.Source != effect.Source || id == effect.ID {
			continue
		}
		switch effect.StackingRule {
		case StackingReplace:
			delete(m.effects, id)
		case StackingIgnore:
			return nil
		case StackingStack:
			// Allow multiple instances
		}
	}

	stored := effect.Clone()
	stored.Active = true
	if stored.Remaining == 0 {
		stored.Remaining = stored.Duration.Length()
	}
	m.effects[stored.ID] = stored

	return nil
}

// RemoveEffect removes a status effect by ID and reports whether it existed
func (m *Manager) RemoveEffect(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.effects[id]; !exists {
		return false
	}
	delete(m.effects, id)
	return true
}

// RemoveEffectsBySource removes all effects from a specific source
func (m *Manager) RemoveEffectsBySource(source EffectSource, sourceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, effect := range m.effects {
		if effect.Source == source && effect.SourceID == sourceID {
			delete(m.effects, id)
		}
	}
}

// GetEffect returns a copy of the effect with the given ID
func (m *Manager) GetEffect(id string) (*StatusEffect, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	effect, exists := m.effects[id]
	if !exists {
		return nil, false
	}
	return effect.Clone(), true
}

// GetActiveEffects returns all active, non-expired effects ordered by ID
func (m *Manager) GetActiveEffects() []*StatusEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := []*StatusEffect{}
	for _, effect := range m.effects {
		if effect.Active && !effect.IsExpired() {
			active = append(active, effect.Clone())
		}
	}
	slices.SortFunc(active, func(a, b *StatusEffect) int {
		return strings.Compare(a.ID, b.ID)
	})
	return active
}

// HasStatus reports whether any active effect grants the status
func (m *Manager) HasStatus(status string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, effect := range m.effects {
		if effect.Active && !effect.IsExpired() && effect.GrantsStatus(status) {
			return true
		}
	}
	return false
}

// ProcessRoundEnd ticks round-based effects and removes expired ones.
// It returns the IDs of the removed effects.
func (m *Manager) ProcessRoundEnd() []string {
	return m.tick(DurationRounds)
}

// ProcessTurnEnd ticks turn-based effects and removes expired ones
func (m *Manager) ProcessTurnEnd() []string {
	return m.tick(DurationTurns)
}

func (m *Manager) tick(durationType DurationType) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := []string{}
	for id, effect := range m.effects {
		if effect.Duration.Type == durationType {
			effect.Remaining--
		}
		if effect.IsExpired() {
			removed = append(removed, id)
			delete(m.effects, id)
		}
	}
	slices.Sort(removed)
	return removed
}
