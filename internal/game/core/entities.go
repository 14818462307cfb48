package core

// Side identifies which player a piece belongs to.
type Side int

const (
	White Side = iota
	Black
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// String returns a readable side name.
func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// PieceType is a closed set of piece kinds. Generators and the applier switch
// exhaustively on it; adding a type without handling it is a compile-time smell,
// not a silent "no legal moves".
type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns a readable piece-type name.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "unknown"
	}
}

// Piece is a board unit. Dead pieces stay in the collection so identity-based
// bookkeeping (repetition penalties in the decision engine) remains valid.
type Piece struct {
	ID     int
	Side   Side
	Type   PieceType
	Pos    Square
	Alive  bool
	Heated bool
}

// StaticKind identifies an immovable hazard.
type StaticKind int

const (
	Planet StaticKind = iota
	Star
)

// String returns a readable static-hazard name.
func (k StaticKind) String() string {
	if k == Star {
		return "star"
	}
	return "planet"
}

// StaticHazard never moves and never dies. It can be landed on (destroying the
// mover) but not slid through.
type StaticHazard struct {
	Kind StaticKind
	Pos  Square
}

// FlyerKind identifies a moving board object.
type FlyerKind int

const (
	Comet FlyerKind = iota
	Asteroid
)

// String returns a readable flyer name.
func (k FlyerKind) String() string {
	if k == Asteroid {
		return "asteroid"
	}
	return "comet"
}

// FlyingHazard advances one square per hazard tick in Dir. Comets kill pieces
// on contact; asteroids are collected for manufacturing points.
type FlyingHazard struct {
	ID    int
	Kind  FlyerKind
	Pos   Square
	Dir   Direction
	Alive bool
}
