package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the starting layout and the win threshold of a game.
type Config struct {
	Population   int     `yaml:"population"`    // Total prey, placed or in reserve
	Hunters      []Point `yaml:"hunters"`       // Hunter starting points
	Piles        []Point `yaml:"piles"`         // Prey pile starting points
	PileSize     int     `yaml:"pile_size"`     // Prey per starting pile
	WinThreshold int     `yaml:"win_threshold"` // Hunters win once on-board prey is at or below this; 0 means Population/2
	FirstSide    Side    `yaml:"first_side"`    // Side that moves first
}

// NewStandardConfig returns the classic layout: two hunters on the middle row and
// twenty prey in four piles of five around the centre.
func NewStandardConfig() Config {
	return Config{
		Population: 20,
		Hunters:    []Point{{Row: 2, Col: 1}, {Row: 2, Col: 3}},
		Piles: []Point{
			{Row: 1, Col: 1}, {Row: 1, Col: 3},
			{Row: 3, Col: 1}, {Row: 3, Col: 3},
		},
		PileSize:  5,
		FirstSide: HunterSide,
	}
}

// LoadConfig reads a YAML configuration. Fields missing from the file keep the
// standard values.
func LoadConfig(path string) (Config, error) {
	cfg := NewStandardConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Threshold is the effective on-board prey count at or below which hunters win.
func (c Config) Threshold() int {
	if c.WinThreshold == 0 {
		return c.Population / 2
	}
	return c.WinThreshold
}

// Reserve is the number of prey not placed on the board at the start.
func (c Config) Reserve() int {
	return c.Population - len(c.Piles)*c.PileSize
}

// Validate checks that the configuration yields a state satisfying every invariant.
func (c Config) Validate() error {
	if c.Population <= 0 {
		return fmt.Errorf("%w: population must be positive, got %d", ErrConfiguration, c.Population)
	}
	if c.PileSize <= 0 {
		return fmt.Errorf("%w: pile size must be positive, got %d", ErrConfiguration, c.PileSize)
	}
	if len(c.Hunters) == 0 {
		return fmt.Errorf("%w: at least one hunter is required", ErrConfiguration)
	}
	if c.Reserve() < 0 {
		return fmt.Errorf("%w: %d piles of %d exceed the population of %d",
			ErrConfiguration, len(c.Piles), c.PileSize, c.Population)
	}
	if t := c.Threshold(); t < 0 || t >= c.Population {
		return fmt.Errorf("%w: win threshold %d out of range [0,%d)", ErrConfiguration, t, c.Population)
	}
	if c.FirstSide != HunterSide && c.FirstSide != PreySide {
		return fmt.Errorf("%w: unknown first side %d", ErrConfiguration, c.FirstSide)
	}

	used := make(map[Point]bool)
	for _, group := range [][]Point{c.Hunters, c.Piles} {
		for _, p := range group {
			if !IsValid(p) {
				return fmt.Errorf("%w: point %v is not on the board", ErrConfiguration, p)
			}
			if used[p] {
				return fmt.Errorf("%w: point %v is used twice", ErrConfiguration, p)
			}
			used[p] = true
		}
	}
	return nil
}
