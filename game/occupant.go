package game

import "strconv"

// OccupantKind tags what stands on a point.
type OccupantKind int

const (
	EmptyKind OccupantKind = iota
	HunterKind
	SinglePreyKind
	PreyPileKind
)

// Occupant is the content of one point. A pile always holds at least two prey; use
// PreyStack to build prey occupants so that smaller counts normalize.
type Occupant struct {
	kind  OccupantKind
	count int
}

var (
	Empty      = Occupant{kind: EmptyKind}
	Hunter     = Occupant{kind: HunterKind}
	SinglePrey = Occupant{kind: SinglePreyKind, count: 1}
)

// PreyStack returns the occupant for n prey on one point: Empty for n <= 0,
// SinglePrey for 1, and a pile otherwise.
func PreyStack(n int) Occupant {
	switch {
	case n <= 0:
		return Empty
	case n == 1:
		return SinglePrey
	default:
		return Occupant{kind: PreyPileKind, count: n}
	}
}

func (o Occupant) Kind() OccupantKind {
	return o.kind
}

func (o Occupant) IsEmpty() bool {
	return o.kind == EmptyKind
}

func (o Occupant) IsHunter() bool {
	return o.kind == HunterKind
}

// IsPrey reports whether the point holds a single prey or a pile.
func (o Occupant) IsPrey() bool {
	return o.kind == SinglePreyKind || o.kind == PreyPileKind
}

// PreyCount is the number of prey the occupant represents.
func (o Occupant) PreyCount() int {
	if o.IsPrey() {
		return o.count
	}
	return 0
}

// withoutTopPrey removes one prey unit from a prey occupant.
func (o Occupant) withoutTopPrey() Occupant {
	return PreyStack(o.PreyCount() - 1)
}

func (o Occupant) String() string {
	switch o.kind {
	case HunterKind:
		return "hunter"
	case SinglePreyKind:
		return "prey"
	case PreyPileKind:
		return "pile(" + strconv.Itoa(o.count) + ")"
	default:
		return "empty"
	}
}
