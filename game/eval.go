package game

// IsHunterTrapped reports whether the hunter at hunter has neither a step nor a jump.
func IsHunterTrapped(s *BoardState, hunter Point) bool {
	return len(HunterCaptures(s, hunter)) == 0 && len(HunterMoves(s, hunter)) == 0
}

// Evaluate decides the outcome from the board alone. The herd wins once every hunter is
// trapped; the hunters win once the prey left on the board is at or below the
// threshold. Whether the side to move has run out of actions depends on the turn and
// is checked by the driver with HasLegalAction.
func Evaluate(s *BoardState) Outcome {
	trapped := true
	for _, h := range s.hunters {
		if !IsHunterTrapped(s, h) {
			trapped = false
			break
		}
	}
	if trapped {
		return PreySideWins
	}
	if s.OnBoard() <= s.threshold {
		return HunterSideWins
	}
	return None
}

// HasLegalAction reports whether side has at least one move.
func HasLegalAction(s *BoardState, side Side) bool {
	if side == HunterSide {
		for _, h := range s.hunters {
			if !IsHunterTrapped(s, h) {
				return true
			}
		}
		return false
	}
	return len(HerdMoves(s)) > 0
}
