package game

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Rows      = 5
	Cols      = 5
	NumPoints = Rows * Cols
)

// Point is one of the 25 intersections of the board, addressed by row and column.
type Point struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// Index returns the row-major position of the point, the canonical iteration order.
func (p Point) Index() int {
	return p.Row*Cols + p.Col
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

func pointAt(index int) Point {
	return Point{Row: index / Cols, Col: index % Cols}
}

// ParsePoint reads a point written as "row,col".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	p := Point{Row: row, Col: col}
	if !IsValid(p) {
		return Point{}, fmt.Errorf("invalid point %q: off the board", s)
	}
	return p, nil
}

// Graph is the static adjacency structure of the board. It is built once and shared
// read-only by every game.
type Graph struct {
	neighbors [NumPoints][]Point
}

// board is the Alquerque pattern: orthogonal lines everywhere, diagonal lines through
// the points whose row+col is even.
var board = newAlquerque()

var directions = []Point{
	{-1, 0}, {0, -1}, {0, 1}, {1, 0}, // orthogonal
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, // diagonal
}

func newAlquerque() *Graph {
	g := &Graph{}
	for i := 0; i < NumPoints; i++ {
		p := pointAt(i)
		for d, dir := range directions {
			if d >= 4 && (p.Row+p.Col)%2 != 0 {
				break
			}
			q := Point{Row: p.Row + dir.Row, Col: p.Col + dir.Col}
			if IsValid(q) {
				g.neighbors[i] = append(g.neighbors[i], q)
			}
		}
	}
	return g
}

// Board returns the shared board graph.
func Board() *Graph {
	return board
}

// IsValid reports whether p lies on the board.
func IsValid(p Point) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Points returns every point in canonical row-major order.
func (g *Graph) Points() []Point {
	points := make([]Point, NumPoints)
	for i := range points {
		points[i] = pointAt(i)
	}
	return points
}

// Neighbors returns the points one step away from p along a board line. It returns nil
// for an invalid point. The returned slice must not be modified.
func (g *Graph) Neighbors(p Point) []Point {
	if !IsValid(p) {
		return nil
	}
	return g.neighbors[p.Index()]
}

// Adjacent reports whether p1 and p2 are joined by a board line.
func (g *Graph) Adjacent(p1, p2 Point) bool {
	for _, n := range g.Neighbors(p1) {
		if n == p2 {
			return true
		}
	}
	return false
}

// Midpoint returns the point halfway between p1 and p2. It is defined only when the two
// points are valid and differ by 0 or 2 in each axis, but not 0 in both.
func Midpoint(p1, p2 Point) (Point, bool) {
	if !IsValid(p1) || !IsValid(p2) {
		return Point{}, false
	}
	dr, dc := abs(p2.Row-p1.Row), abs(p2.Col-p1.Col)
	if (dr != 0 && dr != 2) || (dc != 0 && dc != 2) || (dr == 0 && dc == 0) {
		return Point{}, false
	}
	return Point{Row: (p1.Row + p2.Row) / 2, Col: (p1.Col + p2.Col) / 2}, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
