package gamemaster

import (
	"errors"
	"fmt"

	"baghbandi/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is published after every applied move.
type Update struct {
	Move    game.Move
	State   *game.BoardState
	Hash    game.StateHash
	Turn    game.Side // Side to move next
	Outcome game.Outcome
}

// UpdateGetter returns the latest unread update without blocking. It returns ok=false
// when nothing is pending or the game has ended and the final update was consumed.
type UpdateGetter func() (u Update, ok bool)

// Session owns the state of one game and the side to move. It is not safe for
// concurrent use; run one session per game.
type Session struct {
	id       uuid.UUID
	state    *game.BoardState
	turn     game.Side
	outcome  game.Outcome
	updateCh chan Update
}

// NewSession starts a game from cfg.
func NewSession(cfg game.Config) (*Session, error) {
	state, err := game.NewInitialState(cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:       uuid.New(),
		state:    state,
		turn:     cfg.FirstSide,
		updateCh: make(chan Update, 1),
	}
	// A layout can be decided before anyone moves.
	s.outcome = s.decide()
	if s.outcome != game.None {
		close(s.updateCh)
	}
	log.Info().Str("session", s.id.String()).Msgf("%s to move first", s.turn)
	return s, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns a copy of the current state.
func (s *Session) State() *game.BoardState {
	return s.state.Copy()
}

func (s *Session) Turn() game.Side {
	return s.turn
}

func (s *Session) Outcome() game.Outcome {
	return s.outcome
}

// LegalMoves lists the moves of the side to move, or nothing once the game is over.
func (s *Session) LegalMoves() []game.Move {
	if s.outcome != game.None {
		return nil
	}
	return game.LegalMoves(s.state, s.turn)
}

// Updates returns a getter over the published updates.
func (s *Session) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u, ok := <-s.updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// Play applies move for the side to move. Moves of the wrong side or not currently
// legal are rejected with game.ErrIllegalMove and the state is unchanged.
func (s *Session) Play(move game.Move) error {
	if s.outcome != game.None {
		return ErrGameOver
	}
	if move.Kind.Side() != s.turn {
		return fmt.Errorf("%w: %s cannot play on the %s turn", game.ErrIllegalMove, move.Kind, s.turn)
	}
	if err := s.state.Apply(move); err != nil {
		return err
	}

	s.turn = s.turn.Opponent()
	s.outcome = s.decide()

	log.Debug().Str("session", s.id.String()).Msgf("played %v", move)

	u := Update{
		Move:    move,
		State:   s.state.Copy(),
		Hash:    s.state.Hash(),
		Turn:    s.turn,
		Outcome: s.outcome,
	}
	// Drop a stale unread update so that Play never blocks.
	select {
	case <-s.updateCh:
	default:
	}
	s.updateCh <- u

	if s.outcome != game.None {
		log.Info().Str("session", s.id.String()).Int("captured", s.state.Captured()).Msgf("game over: %s", s.outcome)
		close(s.updateCh)
	}
	return nil
}

// decide combines the board outcome with the rule that a side with no legal action on
// its turn loses.
func (s *Session) decide() game.Outcome {
	if outcome := game.Evaluate(s.state); outcome != game.None {
		return outcome
	}
	if !game.HasLegalAction(s.state, s.turn) {
		return game.Winner(s.turn.Opponent())
	}
	return game.None
}
