package experiments

import (
	"fmt"

	"baghbandi/agent"
	"baghbandi/engine"
	"baghbandi/experiments/metrics"
	"baghbandi/game"

	"github.com/rs/zerolog/log"
)

// Summary counts the outcomes of an experiment.
type Summary struct {
	Games      int
	HunterWins int
	HerdWins   int
	Unfinished int
	Directory  string // Where the records were written
}

// RunSelfPlay plays games between two random agents, seeded from seed, and writes the
// records below root.
func RunSelfPlay(root, name string, games int, cfg game.Config, seed uint64) (Summary, error) {
	hunters := metrics.AgentConfig{ID: 1, Kind: "random", Seed: seed}
	herd := metrics.AgentConfig{ID: 2, Kind: "random", Seed: seed + 1}

	summary := Summary{Games: games}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment with %d games...", name, games)

	for i := 0; i < games; i++ {
		// Offset the seeds per game so that games differ but stay reproducible
		h := agent.NewRandom(hunters.Seed + uint64(2*i))
		p := agent.NewRandom(herd.Seed + uint64(2*i))

		e, err := engine.LocalEngine(cfg, h, p)
		if err != nil {
			return Summary{}, err
		}
		outcome, gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return Summary{}, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch outcome {
		case game.HunterSideWins:
			summary.HunterWins++
		case game.PreySideWins:
			summary.HerdWins++
		default:
			summary.Unfinished++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     hunters.ID,
			Agent2:     herd.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d: %s", i+1, games, outcome)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Directory = writer.Dir()

	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{hunters, herd}); err != nil {
		return Summary{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}
