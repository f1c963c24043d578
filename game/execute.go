package game

import (
	"fmt"

	"baghbandi/utils"
)

// ApplyHerdMove moves the top prey of from onto the empty neighbour to. A pile shrinks
// by one, a single prey leaves from empty.
func (s *BoardState) ApplyHerdMove(from, to Point) error {
	if !IsValid(from) || !IsValid(to) {
		return fmt.Errorf("%w: herd move %v to %v leaves the board", ErrIllegalMove, from, to)
	}
	if !s.At(from).IsPrey() {
		return fmt.Errorf("%w: herd move: no prey at %v", ErrIllegalMove, from)
	}
	if !s.At(to).IsEmpty() {
		return fmt.Errorf("%w: herd move: %v is not empty", ErrIllegalMove, to)
	}
	if !s.graph.Adjacent(from, to) {
		return fmt.Errorf("%w: herd move: %v and %v are not adjacent", ErrIllegalMove, from, to)
	}

	s.points[from.Index()] = s.points[from.Index()].withoutTopPrey()
	s.points[to.Index()] = SinglePrey
	return nil
}

// ApplyHunterMove steps the hunter at from onto the empty neighbour to.
func (s *BoardState) ApplyHunterMove(from, to Point) error {
	if !IsValid(from) || !IsValid(to) {
		return fmt.Errorf("%w: hunter move %v to %v leaves the board", ErrIllegalMove, from, to)
	}
	if !s.At(from).IsHunter() {
		return fmt.Errorf("%w: hunter move: no hunter at %v", ErrIllegalMove, from)
	}
	if !s.At(to).IsEmpty() {
		return fmt.Errorf("%w: hunter move: %v is not empty", ErrIllegalMove, to)
	}
	if !s.graph.Adjacent(from, to) {
		return fmt.Errorf("%w: hunter move: %v and %v are not adjacent", ErrIllegalMove, from, to)
	}

	s.relocateHunter(from, to)
	return nil
}

// ApplyHunterCapture jumps the hunter at from over prey at over into landing, removing
// one prey from over.
func (s *BoardState) ApplyHunterCapture(from, over, landing Point) error {
	if !IsValid(from) || !IsValid(over) || !IsValid(landing) {
		return fmt.Errorf("%w: capture %v over %v to %v leaves the board", ErrIllegalMove, from, over, landing)
	}
	if !s.At(from).IsHunter() {
		return fmt.Errorf("%w: capture: no hunter at %v", ErrIllegalMove, from)
	}
	mid, ok := s.canCapture(from, landing)
	if !ok || mid != over {
		return fmt.Errorf("%w: capture: cannot jump from %v over %v to %v", ErrIllegalMove, from, over, landing)
	}

	s.points[over.Index()] = s.points[over.Index()].withoutTopPrey()
	s.captured++
	s.relocateHunter(from, landing)
	return nil
}

// Apply dispatches a move to the matching executor.
func (s *BoardState) Apply(m Move) error {
	switch m.Kind {
	case HerdStep:
		return s.ApplyHerdMove(m.From, m.To)
	case HunterStep:
		return s.ApplyHunterMove(m.From, m.To)
	case HunterJump:
		return s.ApplyHunterCapture(m.From, m.Over, m.To)
	default:
		return fmt.Errorf("%w: unknown move kind %d", ErrIllegalMove, m.Kind)
	}
}

// relocateHunter assumes the move has been validated.
func (s *BoardState) relocateHunter(from, to Point) {
	s.points[from.Index()] = Empty
	s.points[to.Index()] = Hunter
	utils.Replace(s.hunters, from, to)
}
