package game

// MoveKind is the type of action a side can perform.
type MoveKind int

const (
	HerdStep   MoveKind = iota // Top prey of a point steps to an empty neighbour
	HunterStep                 // Hunter steps to an empty neighbour
	HunterJump                 // Hunter jumps over prey into an empty point, capturing one prey
)

func (k MoveKind) String() string {
	switch k {
	case HerdStep:
		return "herd step"
	case HunterStep:
		return "hunter step"
	case HunterJump:
		return "hunter jump"
	default:
		return "unknown"
	}
}

// Side returns the side that performs moves of this kind.
func (k MoveKind) Side() Side {
	if k == HerdStep {
		return PreySide
	}
	return HunterSide
}
