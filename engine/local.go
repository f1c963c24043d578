package engine

import (
	"errors"
	"fmt"
	"time"

	"baghbandi/agent"
	"baghbandi/experiments/metrics"
	"baghbandi/game"
	"baghbandi/gamemaster"
	"baghbandi/meta"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Session  *gamemaster.Session
	Agents   map[game.Side]agent.Agent
	MaxTurns int
	metrics  metrics.Collector
}

// LocalEngine pairs a new session with one agent per side.
func LocalEngine(cfg game.Config, hunters, herd agent.Agent) (*Engine, error) {
	if hunters == nil || herd == nil {
		return nil, errors.New("need an agent for each side")
	}
	session, err := gamemaster.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Session: session,
		Agents: map[game.Side]agent.Agent{
			game.HunterSide: hunters,
			game.PreySide:   herd,
		},
		MaxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewCollector(),
	}, nil
}

// Run executes the game loop until an outcome or the turn cap.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	s := e.Session
	logger := log.With().Str("session", s.ID().String()).Logger()
	e.metrics.Start(s.ID().String(), s.Turn())

	logger.Info().Msgf("%s are starting", s.Turn())

	turnCount := 1
	for s.Outcome() == game.None && turnCount <= e.MaxTurns {
		side := s.Turn()
		legal := s.LegalMoves()
		state := s.State()

		start := time.Now()
		move, err := e.Agents[side].FindMove(state, side, legal)
		thinking := time.Since(start)
		if err != nil {
			gm, mm := e.metrics.Complete(s.Outcome(), state.Captured())
			return game.None, gm, mm, fmt.Errorf("%s agent: %w", side, err)
		}

		if err := s.Play(move); err != nil {
			logger.Warn().Err(err).Msgf("%s agent returned an invalid move => playing the first legal move", side)
			move = legal[0]
			if err := s.Play(move); err != nil {
				return game.None, metrics.GameMetric{}, nil, err
			}
		}

		e.metrics.AddMove(side, move, thinking, s.State().Captured())
		logger.Debug().Int("turn", turnCount).Msgf("%s played %v", side, move)
		turnCount++
	}

	outcome := s.Outcome()
	gm, mm := e.metrics.Complete(outcome, s.State().Captured())
	if outcome != game.None {
		logger.Info().Msgf("game ended after %d moves: %s", gm.TotalMoves, outcome)
	} else {
		logger.Info().Msgf("stopped after %d turns (no winner yet)", e.MaxTurns)
	}
	return outcome, gm, mm, nil
}
