package game

import "fmt"

// Move is an action chosen by a side. Over is only meaningful for HunterJump.
type Move struct {
	Kind MoveKind
	From Point
	Over Point
	To   Point
}

func (m Move) String() string {
	if m.Kind == HunterJump {
		return fmt.Sprintf("%s %v over %v to %v", m.Kind, m.From, m.Over, m.To)
	}
	return fmt.Sprintf("%s %v to %v", m.Kind, m.From, m.To)
}

// Step is a one-point move between adjacent points.
type Step struct {
	From Point
	To   Point
}

// Capture is a jump from a hunter's point over prey at Over into the empty Landing.
type Capture struct {
	Over    Point
	Landing Point
}
