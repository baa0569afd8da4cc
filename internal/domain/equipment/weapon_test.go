package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadout_Primary(t *testing.T) {
	sword := &Weapon{ID: "sword", Category: CategoryMelee, Hands: 1}
	dagger := &Weapon{ID: "dagger", Category: CategoryMelee, Hands: 1, Properties: []string{PropertyThrown}}

	loadout := &Loadout{Mainhand: sword, Offhand: dagger}
	assert.Equal(t, sword, loadout.Primary())

	sword.Dropped = true
	assert.Equal(t, dagger, loadout.Primary())

	dagger.Broken = true
	assert.Nil(t, loadout.Primary())

	var empty *Loadout
	assert.Nil(t, empty.Primary())
}

func TestLoadout_CloneIsDeep(t *testing.T) {
	loadout := &Loadout{
		Mainhand:   &Weapon{ID: "bow", Category: CategoryRanged, Hands: 2, Properties: []string{PropertyAmmunition}, Ammunition: "arrows"},
		Ammunition: map[string]int{"arrows": 12},
	}

	clone := loadout.Clone()
	clone.Mainhand.Dropped = true
	clone.Mainhand.Properties[0] = "changed"
	clone.Ammunition["arrows"] = 0

	assert.False(t, loadout.Mainhand.Dropped)
	assert.True(t, loadout.Mainhand.HasProperty(PropertyAmmunition))
	assert.Equal(t, 12, loadout.Ammunition["arrows"])
	assert.True(t, clone.Mainhand.IsTwoHanded())
	assert.True(t, clone.Mainhand.IsRanged())
}
