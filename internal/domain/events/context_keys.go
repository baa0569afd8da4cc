package events

// Context keys for event data
const (
	ContextActionID   = "action_id"   // string: ID of the action template
	ContextActionName = "action_name" // string: display name of the action
	ContextUseID      = "use_id"      // string: ID of the use attempt
	ContextTargetIDs  = "target_ids"  // []string: non-self outcome actor IDs in build order
	ContextHeroism    = "heroism"     // int: heroism spent by the use
	ContextFocus      = "focus"       // int: focus spent by the use
	ContextReverse    = "reverse"     // bool: whether this confirm was a reversal
	ContextCritical   = "critical"    // bool: any outcome was a critical success
)
