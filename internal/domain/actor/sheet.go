package actor

import (
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
)

// Sheet is the authored description of an actor
type Sheet struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Disposition string             `json:"disposition" yaml:"disposition"`
	Pools       map[string]int     `json:"pools" yaml:"pools"`
	Abilities   map[string]int     `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Skills      map[string]int     `json:"skills,omitempty" yaml:"skills,omitempty"`
	Defenses    map[string]int     `json:"defenses,omitempty" yaml:"defenses,omitempty"`
	Resistances map[string]int     `json:"resistances,omitempty" yaml:"resistances,omitempty"`
	Statuses    []string           `json:"statuses,omitempty" yaml:"statuses,omitempty"`
	Loadout     *equipment.Loadout `json:"loadout,omitempty" yaml:"loadout,omitempty"`
	Actions     []string           `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// ParseDisposition converts a sheet disposition name
func ParseDisposition(name string) (action.Disposition, error) {
	switch name {
	case "hostile", "enemy":
		return action.DispositionHostile, nil
	case "", "neutral":
		return action.DispositionNeutral, nil
	case "friendly", "ally", "player":
		return action.DispositionFriendly, nil
	}
	return action.DispositionNeutral, fmt.Errorf("unknown disposition %q", name)
}

// Validate checks the sheet has what an actor needs
func (s *Sheet) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("actor sheet must have an id")
	}
	if s.Name == "" {
		return fmt.Errorf("actor %s must have a name", s.ID)
	}
	for pool, maximum := range s.Pools {
		if maximum < 0 {
			return fmt.Errorf("actor %s pool %s cannot be negative", s.ID, pool)
		}
	}
	_, err := ParseDisposition(s.Disposition)
	return err
}
