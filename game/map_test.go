package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardGraph(t *testing.T) {
	g := Board()

	t.Run("has 25 points in row-major order", func(t *testing.T) {
		points := g.Points()
		require.Len(t, points, NumPoints)
		for i, p := range points {
			require.Equal(t, i, p.Index(), "Points should be in canonical order")
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		for _, p := range g.Points() {
			for _, n := range g.Neighbors(p) {
				require.True(t, g.Adjacent(n, p), "%v lists %v but not the reverse", p, n)
			}
		}
	})

	t.Run("degrees follow the alquerque pattern", func(t *testing.T) {
		for _, p := range g.Points() {
			degree := len(g.Neighbors(p))
			require.GreaterOrEqual(t, degree, 3, "Point %v has too few neighbours", p)
			require.LessOrEqual(t, degree, 8, "Point %v has too many neighbours", p)
		}
		require.Len(t, g.Neighbors(Point{0, 0}), 3, "Corner links right, down and diagonally")
		require.Len(t, g.Neighbors(Point{0, 1}), 3, "Odd edge point has no diagonals")
		require.Len(t, g.Neighbors(Point{0, 2}), 5, "Even edge point has two diagonals")
		require.Len(t, g.Neighbors(Point{1, 1}), 8)
		require.Len(t, g.Neighbors(Point{1, 2}), 4)
		require.Len(t, g.Neighbors(Point{2, 2}), 8)
	})

	t.Run("diagonals only through even points", func(t *testing.T) {
		require.True(t, g.Adjacent(Point{1, 1}, Point{2, 2}))
		require.False(t, g.Adjacent(Point{0, 1}, Point{1, 2}))
		require.False(t, g.Adjacent(Point{1, 2}, Point{2, 3}))
	})

	t.Run("invalid points have no neighbours", func(t *testing.T) {
		require.Nil(t, g.Neighbors(Point{-1, 0}))
		require.Nil(t, g.Neighbors(Point{0, 5}))
		require.False(t, g.Adjacent(Point{0, 4}, Point{0, 5}))
	})
}

func TestMidpoint(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 Point
		want   Point
		ok     bool
	}{
		{"horizontal", Point{1, 2}, Point{1, 0}, Point{1, 1}, true},
		{"vertical", Point{0, 3}, Point{2, 3}, Point{1, 3}, true},
		{"diagonal", Point{4, 4}, Point{2, 2}, Point{3, 3}, true},
		{"same point", Point{2, 2}, Point{2, 2}, Point{}, false},
		{"one step", Point{2, 2}, Point{2, 3}, Point{}, false},
		{"knight jump", Point{0, 0}, Point{2, 1}, Point{}, false},
		{"off board", Point{0, 0}, Point{-2, 0}, Point{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Midpoint(tc.p1, tc.p2)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 3, 4 ")
	require.NoError(t, err)
	require.Equal(t, Point{3, 4}, p)
	require.Equal(t, "3,4", p.String())

	for _, bad := range []string{"", "3", "a,b", "5,0", "1,2,3"} {
		_, err := ParsePoint(bad)
		require.Error(t, err, "Parsing %q should fail", bad)
	}
}
