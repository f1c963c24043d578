package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Side is one of the two players. The side to move is tracked by the driver, not by
// BoardState.
type Side int

const (
	HunterSide Side = iota
	PreySide
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == HunterSide {
		return PreySide
	}
	return HunterSide
}

func (s Side) String() string {
	switch s {
	case HunterSide:
		return "hunters"
	case PreySide:
		return "herd"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts the names printed by Side.String.
func ParseSide(s string) (Side, error) {
	switch s {
	case "hunters", "hunter":
		return HunterSide, nil
	case "herd", "prey":
		return PreySide, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

func (s *Side) UnmarshalYAML(value *yaml.Node) error {
	side, err := ParseSide(value.Value)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

func (s Side) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Outcome is the result of a game. Once it is not None it never changes.
type Outcome int

const (
	None Outcome = iota
	HunterSideWins
	PreySideWins
)

// Winner returns the outcome in which side wins.
func Winner(side Side) Outcome {
	if side == HunterSide {
		return HunterSideWins
	}
	return PreySideWins
}

func (o Outcome) String() string {
	switch o {
	case HunterSideWins:
		return "hunters win"
	case PreySideWins:
		return "herd wins"
	default:
		return "none"
	}
}

type StateHash uint64
