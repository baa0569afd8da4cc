package dice

// randomRoller implements Roller using math/rand/v2
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return Roll(count, sides, bonus)
}

func (r *randomRoller) RollPool(faces []int) ([]int, error) {
	return RollPool(faces)
}
