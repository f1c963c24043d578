package engine

import (
	"baghbandi/experiments/metrics"
	"baghbandi/game"
)

type Runner interface {
	// Run plays a game till there's an outcome or the turn cap is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
