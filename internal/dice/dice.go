package dice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// RollResult is one uniform roll of count dice with the same sides
type RollResult struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	RawTotal int   `json:"raw_total"`
}

// Roll rolls count dice of the given size and adds bonus
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		rolls[i] = rand.IntN(size) + 1
		total += rolls[i]
	}

	return &RollResult{
		Total:    total + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    size,
		RawTotal: total,
	}, nil
}

// RollPool rolls one die per entry of faces
func RollPool(faces []int) ([]int, error) {
	if len(faces) == 0 {
		return nil, errors.New("empty dice pool")
	}

	out := make([]int, len(faces))
	for i, f := range faces {
		if f < 1 {
			return nil, fmt.Errorf("invalid die d%d in pool", f)
		}
		out[i] = rand.IntN(f) + 1
	}
	return out, nil
}

// String renders the roll as notation and result, e.g. "2d6+3 = 12 [4 5]"
func (r *RollResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", r.Count, r.Sides)
	if r.Bonus != 0 {
		fmt.Fprintf(&b, "%+d", r.Bonus)
	}
	fmt.Fprintf(&b, " = %d %v", r.Total, r.Rolls)
	return b.String()
}
