package engine

import (
	"testing"

	"baghbandi/agent"
	"baghbandi/game"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []game.Move
	calls int
}

func (a *scriptedAgent) FindMove(_ *game.BoardState, _ game.Side, legal []game.Move) (game.Move, error) {
	a.calls++
	if len(a.moves) == 0 {
		return legal[0], nil
	}
	m := a.moves[0]
	a.moves = a.moves[1:]
	return m, nil
}

type quittingAgent struct{}

func (quittingAgent) FindMove(*game.BoardState, game.Side, []game.Move) (game.Move, error) {
	return game.Move{}, agent.ErrQuit
}

func TestLocalEngine(t *testing.T) {
	t.Run("requires both agents", func(t *testing.T) {
		_, err := LocalEngine(game.NewStandardConfig(), agent.NewRandom(1), nil)
		require.Error(t, err)
	})

	t.Run("rejects a bad configuration", func(t *testing.T) {
		cfg := game.NewStandardConfig()
		cfg.Piles = append(cfg.Piles, game.Point{Row: 9, Col: 9})
		_, err := LocalEngine(cfg, agent.NewRandom(1), agent.NewRandom(2))
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}

func TestRun(t *testing.T) {
	t.Run("random agents reach an outcome or the cap", func(t *testing.T) {
		e, err := LocalEngine(game.NewStandardConfig(), agent.NewRandom(1), agent.NewRandom(2))
		require.NoError(t, err)

		outcome, gm, mm, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, outcome, gm.Outcome)
		require.Equal(t, len(mm), gm.TotalMoves)
		require.LessOrEqual(t, gm.TotalMoves, e.MaxTurns)
		if outcome == game.None {
			require.Equal(t, e.MaxTurns, gm.TotalMoves, "Game without outcome should hit the cap")
		}
		for i, m := range mm {
			require.Equal(t, i+1, m.Step)
		}
	})

	t.Run("invalid move falls back to the first legal move", func(t *testing.T) {
		hunters := &scriptedAgent{moves: []game.Move{
			{Kind: game.HunterStep, From: game.Point{Row: 2, Col: 1}, To: game.Point{Row: 4, Col: 4}},
		}}
		herd := &scriptedAgent{}
		e, err := LocalEngine(game.NewStandardConfig(), hunters, herd)
		require.NoError(t, err)
		e.MaxTurns = 1

		outcome, gm, mm, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.None, outcome)
		require.Equal(t, 1, gm.TotalMoves)
		require.Equal(t, game.HunterJump, mm[0].Kind, "First legal hunter move is a jump")
		require.Equal(t, 1, mm[0].Captured)
		require.Equal(t, game.PreySide, e.Session.Turn())
	})

	t.Run("agent error stops the game", func(t *testing.T) {
		e, err := LocalEngine(game.NewStandardConfig(), quittingAgent{}, agent.NewRandom(1))
		require.NoError(t, err)

		outcome, _, _, err := e.Run()

		require.ErrorIs(t, err, agent.ErrQuit)
		require.Equal(t, game.None, outcome)
	})

	t.Run("hunters capture to a win", func(t *testing.T) {
		cfg := game.Config{
			Population:   20,
			Hunters:      []game.Point{{Row: 2, Col: 1}, {Row: 0, Col: 0}},
			Piles:        []game.Point{{Row: 2, Col: 2}},
			PileSize:     20,
			WinThreshold: 19,
			FirstSide:    game.HunterSide,
		}
		e, err := LocalEngine(cfg, &scriptedAgent{}, &scriptedAgent{})
		require.NoError(t, err)

		outcome, gm, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.HunterSideWins, outcome)
		require.Equal(t, 1, gm.Captured)
		require.Equal(t, 1, gm.TotalMoves)
	})
}
