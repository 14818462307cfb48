package game

import "github.com/cosmochess/cosmochess/internal/game/core"

// Heat is a delayed-damage obligation tied to the star. Landing next to the
// star marks a piece heated; at the start of that side's next turn the piece
// burns if it is still next to the star. Either way the flag is cleared, so
// the obligation resolves exactly once and the piece gets one full enemy turn
// to escape.

// heatedPieces snapshots the ids of a side's alive heated pieces. Taken at the
// top of an apply call, before any mutation, so the burn step resolves the
// obligations that existed when the turn began.
func (gs *GameState) heatedPieces(side core.Side) []int {
	var ids []int
	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if p.Alive && p.Side == side && p.Heated {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// markHeat flags every alive piece of side standing next to the star. Runs
// after the mover relocates, so the landing square itself is covered.
func (gs *GameState) markHeat(side core.Side) {
	star, ok := gs.StarPos()
	if !ok {
		return
	}
	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if p.Alive && p.Side == side && p.Pos.KingAdjacent(star) {
			p.Heated = true
		}
	}
}

// resolveHeat burns every snapshotted piece still next to the star and clears
// the heated flag on all of them. Returns the ids of the pieces that burned.
func (gs *GameState) resolveHeat(snapshot []int) []int {
	star, hasStar := gs.StarPos()
	var burned []int
	for _, id := range snapshot {
		p := gs.PieceByID(id)
		if p == nil || !p.Alive {
			continue
		}
		if hasStar && p.Pos.KingAdjacent(star) {
			p.Alive = false
			burned = append(burned, id)
		}
		p.Heated = false
	}
	return burned
}
