package metrics

import (
	"time"

	"baghbandi/game"
)

// AgentConfig identifies an agent taking part in an experiment.
type AgentConfig struct {
	ID   int
	Kind string // "random" or "human"
	Seed uint64
}

type MoveMetric struct {
	Step     int
	Side     game.Side
	Kind     game.MoveKind
	Thinking time.Duration // Time the agent took to choose
	Captured int           // Captured prey after the move
}

type GameMetric struct {
	SessionID    string
	StartingSide game.Side
	Outcome      game.Outcome
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Captured     int
}

// Collector records the moves of one game.
type Collector interface {
	Start(sessionID string, startingSide game.Side)
	AddMove(side game.Side, move game.Move, thinking time.Duration, captured int)
	Complete(outcome game.Outcome, captured int) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(sessionID string, startingSide game.Side) {
	c.game = GameMetric{
		SessionID:    sessionID,
		StartingSide: startingSide,
		StartTime:    time.Now(),
	}
	c.moves = nil
}

func (c *collector) AddMove(side game.Side, move game.Move, thinking time.Duration, captured int) {
	c.moves = append(c.moves, MoveMetric{
		Step:     len(c.moves) + 1,
		Side:     side,
		Kind:     move.Kind,
		Thinking: thinking,
		Captured: captured,
	})
}

func (c *collector) Complete(outcome game.Outcome, captured int) (GameMetric, []MoveMetric) {
	c.game.EndTime = time.Now()
	c.game.Duration = c.game.EndTime.Sub(c.game.StartTime)
	c.game.Outcome = outcome
	c.game.TotalMoves = len(c.moves)
	c.game.Captured = captured
	return c.game, c.moves
}
