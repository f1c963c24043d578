package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newState builds a state with the given hunters and prey stacks of size pileSize.
func newState(t *testing.T, population, pileSize int, hunters, piles []Point) *BoardState {
	t.Helper()
	s, err := NewInitialState(Config{
		Population: population,
		Hunters:    hunters,
		Piles:      piles,
		PileSize:   pileSize,
		FirstSide:  HunterSide,
	})
	require.NoError(t, err)
	return s
}

func requireInvariants(t *testing.T, s *BoardState) {
	t.Helper()
	onBoard := s.CountPreyOnBoard()
	require.Equal(t, s.OnBoard(), onBoard, "Counters should match the prey on the board")
	require.Equal(t, s.Population(), s.Reserve()+s.Captured()+onBoard, "Population should be conserved")
	for _, p := range s.Graph().Points() {
		o := s.At(p)
		if o.Kind() == PreyPileKind {
			require.GreaterOrEqual(t, o.PreyCount(), 2, "Pile at %v below two", p)
		}
	}
	for _, h := range s.Hunters() {
		require.True(t, s.At(h).IsHunter(), "Hunter list and board disagree at %v", h)
	}
}
