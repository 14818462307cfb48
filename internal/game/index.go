package game

import "github.com/cosmochess/cosmochess/internal/game/core"

// Spatial lookups over the three entity collections. Linear scans are fine at
// these entity counts (at most 32 pieces, a handful of flyers, four statics).
// Pieces and flyers are filtered on liveness; statics are matched
// unconditionally since they never die.

// PieceAt returns the alive piece occupying sq, or nil.
func (gs *GameState) PieceAt(sq core.Square) *core.Piece {
	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if p.Alive && p.Pos.Equal(sq) {
			return p
		}
	}
	return nil
}

// PieceByID returns the piece with the given identity, alive or dead, or nil.
func (gs *GameState) PieceByID(id int) *core.Piece {
	for i := range gs.Pieces {
		if gs.Pieces[i].ID == id {
			return &gs.Pieces[i]
		}
	}
	return nil
}

// StaticAt returns the static hazard occupying sq, or nil.
func (gs *GameState) StaticAt(sq core.Square) *core.StaticHazard {
	for i := range gs.Statics {
		if gs.Statics[i].Pos.Equal(sq) {
			return &gs.Statics[i]
		}
	}
	return nil
}

// FlyerAt returns the alive flying hazard occupying sq, or nil.
func (gs *GameState) FlyerAt(sq core.Square) *core.FlyingHazard {
	for i := range gs.Flyers {
		f := &gs.Flyers[i]
		if f.Alive && f.Pos.Equal(sq) {
			return f
		}
	}
	return nil
}
