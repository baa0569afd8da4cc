package dice

import (
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/domain/damage"
)

// Check pool configuration
const (
	PoolSize          = 3
	BaseFaces         = 8
	MinFaces          = 4
	MaxFaces          = 12
	FacesPerStep      = 2
	MaxBoons          = 6
	CriticalThreshold = 6
)

// Check types
const (
	CheckAttack      = "attack"
	CheckSkill       = "skill"
	CheckRestoration = "restoration"
)

// CheckParams are the inputs a check is constructed with
type CheckParams struct {
	Type        string `json:"type"`
	Ability     int    `json:"ability"`
	Skill       int    `json:"skill"`
	Enchantment int    `json:"enchantment"`
	Boons       int    `json:"boons"`
	Banes       int    `json:"banes"`
	DefenseType string `json:"defense_type"`
	DC          int    `json:"dc"`
}

// Check is a single pool roll against a DC. Once evaluated it reports
// success, criticals and overflow, and may carry a damage payload.
type Check struct {
	CheckParams

	// Target is the actor the check was rolled against
	Target string `json:"target,omitempty"`

	// Faces of each die in the pool after boons and banes
	Faces []int `json:"faces"`

	// Dice are the individual results, aligned with Faces
	Dice []int `json:"dice"`

	// Total is the dice plus every bonus
	Total int `json:"total"`

	Evaluated bool `json:"evaluated"`

	Damage *damage.Payload `json:"damage,omitempty"`
}

// NewCheck creates an unevaluated check
func NewCheck(params CheckParams) *Check {
	return &Check{
		CheckParams: params,
		Faces:       PoolFaces(params.Boons, params.Banes),
	}
}

// PoolFaces returns the die sizes of the pool. Each net boon steps one die up
// by two faces and each net bane steps one down, spreading across the pool.
func PoolFaces(boons, banes int) []int {
	net := min(max(boons-banes, -MaxBoons), MaxBoons)

	faces := make([]int, PoolSize)
	for i := range faces {
		faces[i] = BaseFaces
	}

	step := FacesPerStep
	if net < 0 {
		step = -FacesPerStep
		net = -net
	}
	for i := 0; i < net; i++ {
		die := i % PoolSize
		faces[die] = min(max(faces[die]+step, MinFaces), MaxFaces)
	}
	return faces
}

// Evaluate rolls the pool
func (c *Check) Evaluate(roller Roller) error {
	if c.Evaluated {
		return fmt.Errorf("check already evaluated")
	}
	if len(c.Faces) == 0 {
		c.Faces = PoolFaces(c.Boons, c.Banes)
	}

	results, err := roller.RollPool(c.Faces)
	if err != nil {
		return fmt.Errorf("failed to roll pool %v: %w", c.Faces, err)
	}
	sum := 0
	for _, r := range results {
		sum += r
	}

	c.Dice = results
	c.Total = sum + c.Ability + c.Skill + c.Enchantment
	c.Evaluated = true
	return nil
}

// Overflow is the margin by which the total beat the DC
func (c *Check) Overflow() int {
	return c.Total - c.DC
}

// IsSuccess reports whether the evaluated total beat the DC
func (c *Check) IsSuccess() bool {
	return c.Evaluated && c.Overflow() > 0
}

// IsCriticalSuccess reports a success by at least CriticalThreshold
func (c *Check) IsCriticalSuccess() bool {
	return c.IsSuccess() && c.Overflow() >= CriticalThreshold
}

// IsCriticalFailure reports a miss by at least CriticalThreshold
func (c *Check) IsCriticalFailure() bool {
	return c.Evaluated && c.Overflow() <= -CriticalThreshold
}

// String renders the check for logs
func (c *Check) String() string {
	if !c.Evaluated {
		return fmt.Sprintf("%s check vs DC %d (unrolled)", c.Type, c.DC)
	}
	return fmt.Sprintf("%s check %v = %d vs DC %d (%+d)", c.Type, c.Dice, c.Total, c.DC, c.Overflow())
}
