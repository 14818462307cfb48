package core

import "fmt"

// Square represents a position on the game board.
// Row 0 is Black's back rank; row Rows-1 is White's back rank.
type Square struct {
	R, C int
}

// NewSquare creates a new square with the given row and column.
func NewSquare(r, c int) Square {
	return Square{R: r, C: c}
}

// InBounds checks if the square is within a board of the given dimensions.
func (s Square) InBounds(rows, cols int) bool {
	return s.R >= 0 && s.R < rows && s.C >= 0 && s.C < cols
}

// Equal checks if two squares are equal.
func (s Square) Equal(other Square) bool {
	return s.R == other.R && s.C == other.C
}

// KingAdjacent checks if this square is within one step of another in any of
// the eight directions. A square is not adjacent to itself.
func (s Square) KingAdjacent(other Square) bool {
	dr := s.R - other.R
	dc := s.C - other.C
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

// ChebyshevDistance returns the king-move distance to another square.
func (s Square) ChebyshevDistance(other Square) int {
	dr := s.R - other.R
	if dr < 0 {
		dr = -dr
	}
	dc := s.C - other.C
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// Add returns a new square offset by the given deltas.
func (s Square) Add(dr, dc int) Square {
	return Square{R: s.R + dr, C: s.C + dc}
}

// String returns a string representation of the square.
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.R, s.C)
}

// Direction represents a cardinal direction of flying-hazard travel.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// DirectionVectors provides row/column offsets for each direction.
var DirectionVectors = map[Direction]Square{
	North: {R: -1, C: 0},
	East:  {R: 0, C: 1},
	South: {R: 1, C: 0},
	West:  {R: 0, C: -1},
}

// Move returns a new square moved one step in the given direction.
func (s Square) Move(direction Direction) Square {
	if offset, ok := DirectionVectors[direction]; ok {
		return Square{R: s.R + offset.R, C: s.C + offset.C}
	}
	return s
}

// String returns a compass name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}
