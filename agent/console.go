package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"baghbandi/game"
)

// Console lets a human choose moves. It prints the board and the numbered legal moves
// to out and reads one choice per line from in: a move number, "from to", "from over
// to" for a jump (points written row,col), or q to quit.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) FindMove(state *game.BoardState, side game.Side, legal []game.Move) (game.Move, error) {
	if len(legal) == 0 {
		return game.Move{}, ErrNoMoves
	}
	fmt.Fprint(c.out, Render(state))
	for i, m := range legal {
		fmt.Fprintf(c.out, "%3d) %v\n", i+1, m)
	}

	for {
		fmt.Fprintf(c.out, "%s> ", side)
		if !c.in.Scan() {
			return game.Move{}, ErrQuit
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "q" || line == "quit" {
			return game.Move{}, ErrQuit
		}
		move, err := parseChoice(line, legal)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		return move, nil
	}
}

func parseChoice(line string, legal []game.Move) (game.Move, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 || n > len(legal) {
			return game.Move{}, fmt.Errorf("choose a number between 1 and %d", len(legal))
		}
		return legal[n-1], nil
	case 2, 3:
		points := make([]game.Point, len(fields))
		for i, f := range fields {
			p, err := game.ParsePoint(f)
			if err != nil {
				return game.Move{}, err
			}
			points[i] = p
		}
		for _, m := range legal {
			if matches(m, points) {
				return m, nil
			}
		}
		return game.Move{}, fmt.Errorf("%s is not a legal move", line)
	default:
		return game.Move{}, fmt.Errorf("cannot read %q", line)
	}
}

func matches(m game.Move, points []game.Point) bool {
	if len(points) == 3 {
		return m.Kind == game.HunterJump && m.From == points[0] && m.Over == points[1] && m.To == points[2]
	}
	return m.From == points[0] && m.To == points[1]
}
