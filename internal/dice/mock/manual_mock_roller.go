package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
)

// ManualMockRoller returns predetermined die results in order. Each die
// consumes one value, so a pool of three takes three.
type ManualMockRoller struct {
	mu    sync.Mutex
	rolls []int
	next  int
}

// NewManualMockRoller creates a mock roller with nothing queued
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetRolls replaces the queued results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.next = 0
}

// Queue appends results after the ones already queued
func (m *ManualMockRoller) Queue(rolls ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, rolls...)
}

// Reset drops every queued result
func (m *ManualMockRoller) Reset() {
	m.SetRolls(nil)
}

// Remaining returns how many queued results have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.next
}

// take consumes one result per die size, all or nothing
func (m *ManualMockRoller) take(sides []int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.rolls)-m.next < len(sides) {
		return nil, fmt.Errorf("no more predetermined rolls available (need %d, have %d)", len(sides), len(m.rolls)-m.next)
	}

	out := make([]int, len(sides))
	for i, s := range sides {
		roll := m.rolls[m.next+i]
		if roll < 1 || roll > s {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, s)
		}
		out[i] = roll
	}
	m.next += len(sides)
	return out, nil
}

func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	uniform := make([]int, count)
	for i := range uniform {
		uniform[i] = sides
	}

	rolls, err := m.take(uniform)
	if err != nil {
		return nil, err
	}
	raw := 0
	for _, r := range rolls {
		raw += r
	}
	return &dice.RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}

func (m *ManualMockRoller) RollPool(faces []int) ([]int, error) {
	return m.take(faces)
}
