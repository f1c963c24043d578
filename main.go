package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"baghbandi/agent"
	"baghbandi/engine"
	"baghbandi/experiments"
	"baghbandi/game"
	"baghbandi/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("baghbandi failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	setupLogging(os.Getenv(meta.LOG_LEVEL_ENV))

	if len(args) == 0 {
		return errors.New("usage: baghbandi play|selfplay [flags]")
	}
	switch args[0] {
	case "play":
		return runPlay(args[1:])
	case "selfplay":
		return runSelfPlay(args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level == "" {
		return
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, keeping info", level)
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

// loadConfig reads the YAML file named by the flag or the environment, falling back to
// the standard layout.
func loadConfig(path string) (game.Config, error) {
	if path == "" {
		path = os.Getenv(meta.CONFIG_ENV)
	}
	if path == "" {
		return game.NewStandardConfig(), nil
	}
	log.Info().Msgf("loading config from %s", path)
	return game.LoadConfig(path)
}

func newAgent(kind string, seed uint64) (agent.Agent, error) {
	switch kind {
	case "human":
		return agent.NewConsole(os.Stdin, os.Stdout), nil
	case "random":
		return agent.NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent %q: use human or random", kind)
	}
}

func runPlay(args []string) error {
	flags := flag.NewFlagSet("play", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML game configuration")
	hunters := flags.String("hunters", "random", "Agent for the hunters: human or random")
	herd := flags.String("herd", "human", "Agent for the herd: human or random")
	seed := flags.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random agents")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	hunterAgent, err := newAgent(*hunters, *seed)
	if err != nil {
		return err
	}
	herdAgent, err := newAgent(*herd, *seed+1)
	if err != nil {
		return err
	}

	e, err := engine.LocalEngine(cfg, hunterAgent, herdAgent)
	if err != nil {
		return err
	}
	outcome, gm, _, err := e.Run()
	if errors.Is(err, agent.ErrQuit) {
		fmt.Println("Game abandoned.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Print(agent.Render(e.Session.State()))
	if outcome == game.None {
		fmt.Printf("No winner after %d moves.\n", gm.TotalMoves)
	} else {
		fmt.Printf("Game over after %d moves: %s!\n", gm.TotalMoves, outcome)
	}
	return nil
}

func runSelfPlay(args []string) error {
	flags := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML game configuration")
	games := flags.Int("games", meta.SELF_PLAY_GAMES, "Number of games to play")
	seed := flags.Uint64("seed", 1, "Seed for the random agents")
	out := flags.String("out", ".", "Directory to write the records under")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	summary, err := experiments.RunSelfPlay(*out, "selfplay", *games, cfg, *seed)
	if err != nil {
		return err
	}
	fmt.Printf("%d games: hunters %d, herd %d, unfinished %d (records in %s)\n",
		summary.Games, summary.HunterWins, summary.HerdWins, summary.Unfinished, summary.Directory)
	return nil
}
