package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
	"github.com/KirkDiggler/crucible-engine/internal/domain/rulebook/crucible/tags"
	"github.com/KirkDiggler/crucible-engine/internal/uuid"
)

// CreateTestSheet creates an actor sheet with full default pools
func CreateTestSheet(id, name, disposition string) actor.Sheet {
	return actor.Sheet{
		ID:          id,
		Name:        name,
		Disposition: disposition,
		Pools: map[string]int{
			"health":  20,
			"morale":  5,
			"action":  3,
			"focus":   2,
			"heroism": 1,
		},
	}
}

// CreateTestFighter creates a friendly fighter holding a longsword
func CreateTestFighter(t *testing.T) *actor.Actor {
	t.Helper()
	sheet := CreateTestSheet("fighter", "Fighter", "friendly")
	sheet.Abilities = map[string]int{"strength": 2}
	sheet.Loadout = &equipment.Loadout{
		Mainhand: &equipment.Weapon{
			ID:         "longsword",
			Name:       "Longsword",
			Category:   equipment.CategoryMelee,
			Damage:     6,
			DamageType: "slashing",
			Range:      1,
			Hands:      1,
		},
	}
	return CreateTestActor(t, sheet)
}

// CreateTestGoblin creates a hostile goblin with physical defense 12
func CreateTestGoblin(t *testing.T) *actor.Actor {
	t.Helper()
	sheet := CreateTestSheet("goblin", "Goblin", "hostile")
	sheet.Defenses = map[string]int{"physical": 12, "magical": 8}
	return CreateTestActor(t, sheet)
}

// CreateTestActor builds an actor from a sheet, failing the test on error
func CreateTestActor(t *testing.T, sheet actor.Sheet) *actor.Actor {
	t.Helper()
	a, err := actor.New(sheet)
	require.NoError(t, err)
	return a
}

// CreateTestEngine creates an engine with the full tag catalog and
// sequential use IDs
func CreateTestEngine(t *testing.T, roller dice.Roller) *action.Engine {
	t.Helper()
	reg, err := tags.NewRegistry()
	require.NoError(t, err)
	return action.NewEngine(&action.EngineConfig{
		Registry:      reg,
		Roller:        roller,
		UUIDGenerator: uuid.NewSequenceGenerator("use"),
	})
}

// CreateTestStrike returns a single-target mainhand strike definition
func CreateTestStrike() action.Definition {
	return action.Definition{
		ID:     "strike",
		Name:   "Strike",
		Cost:   action.Cost{Action: 1},
		Target: action.TargetSpec{Type: action.TargetSingle, Number: 1, Scope: action.ScopeEnemies},
		Tags:   []string{"mainhand", "strike", "strength"},
	}
}
