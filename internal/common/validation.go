package common

// IsValidSquare checks if the given row/column pair is within board bounds.
func IsValidSquare(r, c, rows, cols int) bool {
	return r >= 0 && r < rows && c >= 0 && c < cols
}

// IsKingAdjacent checks if two positions touch in any of the eight directions.
func IsKingAdjacent(r1, c1, r2, c2 int) bool {
	dr := Abs(r1 - r2)
	dc := Abs(c1 - c2)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

// ChebyshevDistance calculates the king-move distance between two points.
func ChebyshevDistance(r1, c1, r2, c2 int) int {
	return Max(Abs(r1-r2), Abs(c1-c2))
}
