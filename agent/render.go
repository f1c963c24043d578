package agent

import (
	"fmt"
	"strconv"
	"strings"

	"baghbandi/game"
)

// Render draws the board with its lines. Hunters are H, single prey o, piles show
// their size and empty points a dot.
func Render(s *game.BoardState) string {
	var b strings.Builder
	b.WriteString("  ")
	for c := 0; c < game.Cols; c++ {
		fmt.Fprintf(&b, "%2d  ", c)
	}
	b.WriteString("\n")

	for r := 0; r < game.Rows; r++ {
		fmt.Fprintf(&b, "%d ", r)
		for c := 0; c < game.Cols; c++ {
			b.WriteString(symbol(s.At(game.Point{Row: r, Col: c})))
			if c < game.Cols-1 {
				b.WriteString("--")
			}
		}
		b.WriteString("\n")
		if r == game.Rows-1 {
			break
		}

		b.WriteString("   ")
		for c := 0; c < game.Cols; c++ {
			b.WriteString("|")
			if c == game.Cols-1 {
				break
			}
			// Diagonals cross between every pair of columns; the slant depends on parity.
			if (r+c)%2 == 0 {
				b.WriteString(" \\ ")
			} else {
				b.WriteString(" / ")
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "captured %d, on board %d, reserve %d\n", s.Captured(), s.OnBoard(), s.Reserve())
	return b.String()
}

func symbol(o game.Occupant) string {
	switch o.Kind() {
	case game.HunterKind:
		return " H"
	case game.SinglePreyKind:
		return " o"
	case game.PreyPileKind:
		return fmt.Sprintf("%2s", strconv.Itoa(o.PreyCount()))
	default:
		return " ."
	}
}
