// Package damage holds the damage formula shared by every roll that deals or
// restores a resource.
package damage

import "math"

// Params are the inputs to Compute
type Params struct {
	// Overflow is the margin by which the roll beat (or missed) its DC
	Overflow int `json:"overflow"`

	// Multiplier scales the overflow; NewParams defaults it to 1
	Multiplier float64 `json:"multiplier"`

	// Base is the flat damage of the weapon or action
	Base int `json:"base"`

	// Bonus is any additive damage bonus
	Bonus int `json:"bonus"`

	// Resistance is subtracted after mitigation; negative values are vulnerability
	Resistance int `json:"resistance"`

	// Restoration marks a healing effect, which ignores resistance
	Restoration bool `json:"restoration"`
}

// NewParams returns Params with the default multiplier of 1
func NewParams(overflow int) Params {
	return Params{
		Overflow:   overflow,
		Multiplier: 1,
	}
}

// Compute converts a roll's overflow into a final damage value.
//
// A miss (negative overflow) cannot have its overflow shrunk by a sub-1
// multiplier. Anything that connects deals at least 1. Resistance can reduce
// the result to 1 and vulnerability can at most double it.
func Compute(p Params) int {
	multiplier := p.Multiplier
	if p.Overflow < 0 {
		multiplier = math.Max(multiplier, 1)
	}

	preMitigation := float64(p.Overflow)*multiplier + float64(p.Base) + float64(p.Bonus)
	if preMitigation <= 1 {
		return 1
	}

	postMitigation := preMitigation
	if !p.Restoration {
		postMitigation -= float64(p.Resistance)
	}

	clamped := math.Min(math.Max(postMitigation, 1), 2*preMitigation)
	return int(math.Floor(clamped))
}

// Payload is the damage attached to a single roll
type Payload struct {
	Params

	// Type is the damage type used to look up resistance (fire, slashing, ...)
	Type string `json:"type"`

	// Resource is the pool the payload changes (health, morale, ...)
	Resource string `json:"resource"`

	// Total is the computed result of Compute(Params)
	Total int `json:"total"`
}

// NewPayload computes the total for params and wraps it as a payload
func NewPayload(params Params, damageType, resource string) *Payload {
	return &Payload{
		Params:   params,
		Type:     damageType,
		Resource: resource,
		Total:    Compute(params),
	}
}

// Delta returns the signed change this payload applies to its resource
func (p *Payload) Delta() int {
	if p.Restoration {
		return p.Total
	}
	return -p.Total
}
