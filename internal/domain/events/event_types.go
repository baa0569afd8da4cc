package events

// EventType represents the type of bookkeeping event
type EventType int

const (
	// OnActionUsed fires once outcomes are built for a use
	OnActionUsed EventType = iota
	// OnActionConfirmed fires after an outcome map has been applied
	OnActionConfirmed
	// OnActionReversed fires after an outcome map has been un-applied
	OnActionReversed
	// OnTurnStart fires when an actor's turn bookkeeping is reset
	OnTurnStart
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"OnActionUsed",
		"OnActionConfirmed",
		"OnActionReversed",
		"OnTurnStart",
	}
	if e < OnActionUsed || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}
