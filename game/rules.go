package game

// HerdMoves returns every step available to the herd: for each point holding prey, in
// row-major order, one step to each empty neighbour in graph order.
func HerdMoves(s *BoardState) []Step {
	var steps []Step
	for i, o := range s.points {
		if !o.IsPrey() {
			continue
		}
		from := pointAt(i)
		for _, to := range s.graph.Neighbors(from) {
			if s.At(to).IsEmpty() {
				steps = append(steps, Step{From: from, To: to})
			}
		}
	}
	return steps
}

// HunterMoves returns the empty neighbours of hunter.
func HunterMoves(s *BoardState, hunter Point) []Point {
	var moves []Point
	for _, to := range s.graph.Neighbors(hunter) {
		if s.At(to).IsEmpty() {
			moves = append(moves, to)
		}
	}
	return moves
}

// HunterCaptures returns every jump available to the hunter at hunter: a straight
// two-point move along a board line over prey into an empty landing point. Landings are
// listed in row-major order.
func HunterCaptures(s *BoardState, hunter Point) []Capture {
	if !s.At(hunter).IsHunter() {
		return nil
	}
	var captures []Capture
	for i := range s.points {
		landing := pointAt(i)
		if over, ok := s.canCapture(hunter, landing); ok {
			captures = append(captures, Capture{Over: over, Landing: landing})
		}
	}
	return captures
}

// canCapture is the capture predicate for a jump from -> landing, returning the point
// jumped over.
func (s *BoardState) canCapture(from, landing Point) (Point, bool) {
	over, ok := Midpoint(from, landing)
	if !ok {
		return Point{}, false
	}
	if !s.graph.Adjacent(from, over) || !s.graph.Adjacent(over, landing) {
		return Point{}, false
	}
	if !s.At(landing).IsEmpty() || !s.At(over).IsPrey() {
		return Point{}, false
	}
	return over, true
}

// LegalMoves lists every action available to side. For the hunters, jumps come before
// steps and hunters are visited in state order. Capturing is never forced: a hunter
// with a jump available may still step.
func LegalMoves(s *BoardState, side Side) []Move {
	var moves []Move
	switch side {
	case PreySide:
		for _, step := range HerdMoves(s) {
			moves = append(moves, Move{Kind: HerdStep, From: step.From, To: step.To})
		}
	case HunterSide:
		for _, h := range s.hunters {
			for _, c := range HunterCaptures(s, h) {
				moves = append(moves, Move{Kind: HunterJump, From: h, Over: c.Over, To: c.Landing})
			}
		}
		for _, h := range s.hunters {
			for _, to := range HunterMoves(s, h) {
				moves = append(moves, Move{Kind: HunterStep, From: h, To: to})
			}
		}
	}
	return moves
}
