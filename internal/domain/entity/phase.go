package entity

// Phase is the current stage of the daily cycle.
type Phase string

const (
	PhaseMorning  Phase = "MORNING"
	PhaseCrafting Phase = "CRAFTING"
	PhaseShopping Phase = "SHOPPING"
	PhaseEndDay   Phase = "END_DAY"
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	return string(p)
}

// IsValid checks if the Phase is one of the four stages.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseMorning, PhaseCrafting, PhaseShopping, PhaseEndDay:
		return true
	default:
		return false
	}
}

// Next returns the phase that follows p. Transitions are one-directional:
// MORNING -> CRAFTING -> SHOPPING -> END_DAY -> MORNING.
func (p Phase) Next() Phase {
	switch p {
	case PhaseMorning:
		return PhaseCrafting
	case PhaseCrafting:
		return PhaseShopping
	case PhaseShopping:
		return PhaseEndDay
	default:
		return PhaseMorning
	}
}

// IsWorkshop reports whether materials may be gathered and items crafted in p.
func (p Phase) IsWorkshop() bool {
	return p == PhaseMorning || p == PhaseCrafting
}
