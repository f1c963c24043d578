package game

import (
	"encoding/binary"
	"hash/fnv"
)

// BoardState is the mutable state of one game: what stands on every point, where the
// hunters are and how the prey population is split between reserve, captured and
// board. It is changed only through ApplyHerdMove, ApplyHunterMove and
// ApplyHunterCapture.
type BoardState struct {
	graph      *Graph
	points     [NumPoints]Occupant
	hunters    []Point // Hunter positions, in starting order
	reserve    int     // Prey not yet placed
	captured   int     // Prey removed by hunters
	population int
	threshold  int
}

// NewInitialState builds the starting position described by cfg.
func NewInitialState(cfg Config) (*BoardState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &BoardState{
		graph:      Board(),
		hunters:    make([]Point, len(cfg.Hunters)),
		reserve:    cfg.Reserve(),
		population: cfg.Population,
		threshold:  cfg.Threshold(),
	}
	copy(s.hunters, cfg.Hunters)
	for _, p := range cfg.Hunters {
		s.points[p.Index()] = Hunter
	}
	for _, p := range cfg.Piles {
		s.points[p.Index()] = PreyStack(cfg.PileSize)
	}
	return s, nil
}

// Copy returns an independent copy of the state.
func (s *BoardState) Copy() *BoardState {
	c := *s
	c.hunters = make([]Point, len(s.hunters))
	copy(c.hunters, s.hunters)
	return &c
}

// Graph returns the board the state is played on.
func (s *BoardState) Graph() *Graph {
	return s.graph
}

// At returns the occupant of p, or Empty for a point off the board.
func (s *BoardState) At(p Point) Occupant {
	if !IsValid(p) {
		return Empty
	}
	return s.points[p.Index()]
}

// Hunters returns a copy of the hunter positions.
func (s *BoardState) Hunters() []Point {
	hunters := make([]Point, len(s.hunters))
	copy(hunters, s.hunters)
	return hunters
}

func (s *BoardState) Reserve() int {
	return s.reserve
}

func (s *BoardState) Captured() int {
	return s.captured
}

func (s *BoardState) Population() int {
	return s.population
}

// Threshold is the on-board prey count at or below which hunters win.
func (s *BoardState) Threshold() int {
	return s.threshold
}

// OnBoard derives the prey on the board from the population counters.
func (s *BoardState) OnBoard() int {
	return s.population - s.captured - s.reserve
}

// CountPreyOnBoard sums the prey represented by every point. It always equals OnBoard.
func (s *BoardState) CountPreyOnBoard() int {
	total := 0
	for _, o := range s.points {
		total += o.PreyCount()
	}
	return total
}

func (s *BoardState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash occupancy
	for _, o := range s.points {
		binary.Write(hasher, binary.LittleEndian, int64(o.kind))
		binary.Write(hasher, binary.LittleEndian, int64(o.count))
	}

	// Hash hunter order
	for _, p := range s.hunters {
		binary.Write(hasher, binary.LittleEndian, int64(p.Index()))
	}

	// Hash counters
	binary.Write(hasher, binary.LittleEndian, int64(s.reserve))
	binary.Write(hasher, binary.LittleEndian, int64(s.captured))

	return StateHash(hasher.Sum64())
}
