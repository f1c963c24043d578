package agent

import (
	"errors"

	"baghbandi/game"
)

var (
	// ErrQuit is returned when a human gives up the game.
	ErrQuit = errors.New("player quit")

	ErrNoMoves = errors.New("no legal moves")
)

// Agent picks one move for side out of legal. The state must not be modified.
type Agent interface {
	FindMove(state *game.BoardState, side game.Side, legal []game.Move) (game.Move, error)
}
