package agent

import (
	"baghbandi/game"

	"golang.org/x/exp/rand"
)

// Random chooses uniformly among the legal moves. It is a placeholder opponent, not a
// strategy.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(_ *game.BoardState, _ game.Side, legal []game.Move) (game.Move, error) {
	if len(legal) == 0 {
		return game.Move{}, ErrNoMoves
	}
	return legal[r.rng.Intn(len(legal))], nil
}
