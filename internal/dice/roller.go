package dice

// Roller rolls dice. Tests inject a roller with predetermined results.
type Roller interface {
	// Roll rolls count dice of the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollPool rolls one die per entry of faces, each with that many sides
	RollPool(faces []int) ([]int, error)
}
