package action_test

import (
	"testing"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/equipment"
	"github.com/stretchr/testify/assert"
)

func TestUsage_Resets(t *testing.T) {
	u := action.NewUsage()
	assert.Equal(t, action.DefaultBonuses(), u.Bonuses)
	assert.Equal(t, action.ResourceHealth, u.Resource)
	assert.Equal(t, action.DefensePhysical, u.DefenseType)

	u.Bonuses.Ability = 3
	u.AddBoon("flank", 1)
	u.AddBane("cover", 2)
	u.QueueStrike(equipment.SlotMainhand, &equipment.Weapon{ID: "axe"})
	u.QueueStrike(equipment.SlotMainhand, &equipment.Weapon{ID: "other"})
	u.ActorStatus["reacted"] = true
	u.Flags["moved"] = 1
	u.DamageType = "fire"
	u.Resource = action.ResourceMorale
	u.Restoration = true
	u.Context.Label = "Rally"

	assert.Equal(t, 1, u.BoonTotal())
	assert.Equal(t, 2, u.BaneTotal())
	assert.Len(t, u.Strikes, 1)

	u.ResetPrepare()
	assert.Equal(t, action.DefaultBonuses(), u.Bonuses)
	assert.Zero(t, u.BoonTotal())
	assert.Empty(t, u.Strikes)
	assert.True(t, u.ActorStatus["reacted"])
	assert.Empty(t, u.DamageType)
	assert.Equal(t, action.ResourceHealth, u.Resource)
	assert.False(t, u.Restoration)
	assert.Equal(t, action.UseContext{}, u.Context)

	u.ResetUse()
	assert.Empty(t, u.ActorStatus)
	assert.Equal(t, 1, u.Flags["moved"])

	u.ResetTurn()
	assert.Empty(t, u.Flags)
}

func TestUsage_Clone(t *testing.T) {
	u := action.NewUsage()
	u.AddBoon("flank", 1)
	u.Flags["moved"] = 1
	u.QueueStrike(equipment.SlotMainhand, &equipment.Weapon{ID: "axe", Damage: 3})

	clone := u.Clone()
	clone.AddBoon("flank", 1)
	clone.Flags["moved"] = 2
	clone.Strikes[0].Weapon.Damage = 9

	assert.Equal(t, 1, u.Boons["flank"])
	assert.Equal(t, 1, u.Flags["moved"])
	assert.Equal(t, 3, u.Strikes[0].Weapon.Damage)
	assert.Nil(t, (*action.Usage)(nil).Clone())
}
