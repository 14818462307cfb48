package game

import "github.com/cosmochess/cosmochess/internal/game/core"

var (
	orthogonalRays = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalRays   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	knightOffsets = [][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Destinations returns every legal destination square for the piece occupying
// from, from that piece's own perspective. It is the single source of truth
// for move legality: the applier accepts a request only if the target appears
// here. Pure; never mutates state. Returns nil if from holds no alive piece.
//
// Hazard squares are legal destinations throughout: landing on a static hazard
// or a comet destroys the mover (suicide/impact), landing on an asteroid
// collects it. Sliders cannot pass through any occupied square.
func Destinations(gs *GameState, from core.Square) []core.Square {
	p := gs.PieceAt(from)
	if p == nil {
		return nil
	}
	switch p.Type {
	case core.Rook:
		return slideDests(gs, from, p.Side, orthogonalRays)
	case core.Bishop:
		return slideDests(gs, from, p.Side, diagonalRays)
	case core.Queen:
		dests := slideDests(gs, from, p.Side, orthogonalRays)
		return append(dests, slideDests(gs, from, p.Side, diagonalRays)...)
	case core.Knight:
		return offsetDests(gs, from, p.Side, knightOffsets)
	case core.King:
		return offsetDests(gs, from, p.Side, kingOffsets)
	case core.Pawn:
		return pawnDests(gs, from, p.Side)
	default:
		return nil
	}
}

// slideDests walks outward along each ray. A static hazard or a live flyer is
// included as a destination and stops the ray; a piece stops the ray and is
// included only if it belongs to the opposing side.
func slideDests(gs *GameState, from core.Square, side core.Side, rays [][2]int) []core.Square {
	var dests []core.Square
	for _, ray := range rays {
		sq := from
		for {
			sq = sq.Add(ray[0], ray[1])
			if !gs.InBounds(sq) {
				break
			}
			if gs.StaticAt(sq) != nil || gs.FlyerAt(sq) != nil {
				dests = append(dests, sq)
				break
			}
			if occ := gs.PieceAt(sq); occ != nil {
				if occ.Side != side {
					dests = append(dests, sq)
				}
				break
			}
			dests = append(dests, sq)
		}
	}
	return dests
}

// offsetDests applies fixed jump offsets. Only a friendly piece excludes a
// square; hazards of either kind are includable.
func offsetDests(gs *GameState, from core.Square, side core.Side, offsets [][2]int) []core.Square {
	var dests []core.Square
	for _, off := range offsets {
		sq := from.Add(off[0], off[1])
		if !gs.InBounds(sq) {
			continue
		}
		if occ := gs.PieceAt(sq); occ != nil && occ.Side == side {
			continue
		}
		dests = append(dests, sq)
	}
	return dests
}

// pawnForward returns the row delta for a side's pawns. White advances toward
// row 0, Black toward the last row.
func pawnForward(side core.Side) int {
	if side == core.White {
		return -1
	}
	return 1
}

// pawnDests generates forward steps, the double launch from the home rank, and
// diagonal captures. A forward square is reachable whenever no piece sits on
// it; a hazard there makes the step a suicide, not an obstruction. The double
// launch additionally needs the intervening square free of pieces and static
// hazards (a flyer there does not block it). Diagonals are legal onto an enemy
// piece, a static hazard, or a live flyer.
func pawnDests(gs *GameState, from core.Square, side core.Side) []core.Square {
	var dests []core.Square
	dir := pawnForward(side)

	one := from.Add(dir, 0)
	if gs.InBounds(one) && gs.PieceAt(one) == nil {
		dests = append(dests, one)

		if from.R == gs.Rules.HomeRank(side) {
			two := from.Add(2*dir, 0)
			if gs.InBounds(two) && gs.PieceAt(two) == nil && gs.StaticAt(one) == nil {
				dests = append(dests, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Add(dir, dc)
		if !gs.InBounds(diag) {
			continue
		}
		if occ := gs.PieceAt(diag); occ != nil && occ.Side != side {
			dests = append(dests, diag)
			continue
		}
		if gs.StaticAt(diag) != nil || gs.FlyerAt(diag) != nil {
			dests = append(dests, diag)
		}
	}
	return dests
}

// CountMobility counts the legal destinations of every alive piece belonging
// to side. The side is explicit; nothing is read from or written to
// GameState.SideToMove.
func CountMobility(gs *GameState, side core.Side) int {
	n := 0
	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if !p.Alive || p.Side != side {
			continue
		}
		n += len(Destinations(gs, p.Pos))
	}
	return n
}
