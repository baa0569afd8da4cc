package events

import (
	"fmt"
	"sync"
)

// HeroismTally keeps a running count of heroism spent per actor.
// Confirmations add to the tally and reversals take it back.
type HeroismTally struct {
	mu    sync.RWMutex
	spent map[string]int
}

// NewHeroismTally creates an empty tally
func NewHeroismTally() *HeroismTally {
	return &HeroismTally{spent: make(map[string]int)}
}

// Attach subscribes the tally to confirm and reverse events
func (h *HeroismTally) Attach(bus Bus) {
	bus.SubscribeAll(h, OnActionConfirmed, OnActionReversed)
}

// Priority runs the tally after most other bookkeeping
func (h *HeroismTally) Priority() int {
	return 100
}

// HandleEvent updates the tally for the event's actor
func (h *HeroismTally) HandleEvent(event *GameEvent) error {
	amount, ok := event.GetIntContext(ContextHeroism)
	if !ok || amount == 0 {
		return nil
	}
	if event.ActorID == "" {
		return fmt.Errorf("heroism event missing actor")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case OnActionConfirmed:
		h.spent[event.ActorID] += amount
	case OnActionReversed:
		h.spent[event.ActorID] -= amount
		if h.spent[event.ActorID] <= 0 {
			delete(h.spent, event.ActorID)
		}
	}
	return nil
}

// Spent returns the heroism spent by an actor
func (h *HeroismTally) Spent(actorID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.spent[actorID]
}
