package damage_test

import (
	"testing"

	"github.com/KirkDiggler/crucible-engine/internal/domain/damage"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		params damage.Params
		want   int
	}{
		{
			name:   "resistance reduces a doubled hit",
			params: damage.Params{Overflow: 10, Multiplier: 2, Resistance: 5},
			want:   15, // pre 20, post 15
		},
		{
			name:   "miss clamps sub-1 multiplier and floors at 1",
			params: damage.Params{Overflow: -3, Multiplier: 0.5},
			want:   1,
		},
		{
			name:   "base and bonus add after multiplier",
			params: damage.Params{Overflow: 3, Multiplier: 1, Base: 4, Bonus: 2},
			want:   9,
		},
		{
			name:   "heavy resistance floors at 1",
			params: damage.Params{Overflow: 4, Multiplier: 1, Base: 2, Resistance: 50},
			want:   1,
		},
		{
			name:   "vulnerability capped at double",
			params: damage.Params{Overflow: 5, Multiplier: 1, Resistance: -20},
			want:   10,
		},
		{
			name:   "restoration ignores resistance",
			params: damage.Params{Overflow: 6, Multiplier: 1, Base: 2, Resistance: 100, Restoration: true},
			want:   8,
		},
		{
			name:   "exactly one pre-mitigation returns 1",
			params: damage.Params{Overflow: 1, Multiplier: 1},
			want:   1,
		},
		{
			name:   "fractional multiplier on a hit is floored",
			params: damage.Params{Overflow: 5, Multiplier: 1.5},
			want:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, damage.Compute(tt.params))
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	multipliers := []float64{0, 0.5, 1, 2, 3}
	for overflow := -12; overflow <= 12; overflow++ {
		for _, multiplier := range multipliers {
			for base := 0; base <= 6; base += 3 {
				for bonus := -2; bonus <= 4; bonus += 3 {
					for _, resistance := range []int{-10, -3, 0, 3, 10, 100} {
						params := damage.Params{
							Overflow:   overflow,
							Multiplier: multiplier,
							Base:       base,
							Bonus:      bonus,
							Resistance: resistance,
						}
						got := damage.Compute(params)

						// floor
						assert.GreaterOrEqual(t, got, 1, "params %+v", params)

						// ceiling
						effective := multiplier
						if overflow < 0 && effective < 1 {
							effective = 1
						}
						pre := float64(overflow)*effective + float64(base) + float64(bonus)
						if pre > 1 {
							assert.LessOrEqual(t, float64(got), 2*pre, "params %+v", params)
						}

						// restoration immunity
						healing := params
						healing.Restoration = true
						healing.Multiplier = 1
						resisted := damage.Compute(healing)
						healing.Resistance = 0
						assert.Equal(t, damage.Compute(healing), resisted, "params %+v", params)
					}
				}
			}
		}
	}
}

func TestNewParams_DefaultsMultiplier(t *testing.T) {
	params := damage.NewParams(4)
	assert.Equal(t, float64(1), params.Multiplier)
	assert.Equal(t, 4, damage.Compute(params))
}

func TestPayload_Delta(t *testing.T) {
	harm := damage.NewPayload(damage.Params{Overflow: 6, Multiplier: 1, Base: 2}, "fire", "health")
	assert.Equal(t, 8, harm.Total)
	assert.Equal(t, -8, harm.Delta())

	heal := damage.NewPayload(damage.Params{Overflow: 3, Multiplier: 1, Base: 2, Restoration: true}, "", "health")
	assert.Equal(t, 5, heal.Delta())
}
