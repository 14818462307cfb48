package game

import (
	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/game/events"
)

// Hazard phase. Runs once per full round, after Black's committed action:
// first a spawn evaluation, then one tick advancing every flyer.

// Draw ordinals within a single spawn evaluation. Ordinals are fixed rather
// than sequential so the placement draws of one roll never shift when an
// earlier roll fails; the whole stream is a pure function of the state seed.
const (
	drawHorizComet    = iota // Bernoulli
	drawHorizSide            // left or right edge
	drawHorizRow             // row within the comet belt
	drawVertComet            // Bernoulli
	drawVertCometEdge        // top or bottom edge
	drawVertCometBand        // left or right column band
	drawVertCometCol         // offset within the band
	drawAsteroid             // Bernoulli
	drawAsteroidEdge         // top or bottom edge
	drawAsteroidBand         // left or right column band
	drawAsteroidCol          // offset within the band
)

// maybeSpawnHazards evaluates the three spawn rolls in their fixed sequence:
// horizontal comet, vertical comet, vertical asteroid. The seed advances by
// the fixed odd increment exactly once per evaluation, whether or not anything
// spawned.
func (e *Engine) maybeSpawnHazards() {
	gs := e.gs
	r := gs.Rules
	seed := gs.Seed
	gs.Seed += core.SeedIncrement

	if core.DrawBool(seed, drawHorizComet, r.HorizontalCometProb) {
		row := r.CometBeltMinRow + core.DrawIntn(seed, drawHorizRow, r.CometBeltMaxRow-r.CometBeltMinRow+1)
		sq := core.NewSquare(row, 0)
		dir := core.East
		if core.DrawIntn(seed, drawHorizSide, 2) == 1 {
			sq = core.NewSquare(row, r.Cols-1)
			dir = core.West
		}
		e.resolveSpawn(core.Comet, sq, dir)
	}

	if core.DrawBool(seed, drawVertComet, r.VerticalCometProb) {
		sq, dir := e.verticalEntry(seed, drawVertCometEdge, drawVertCometBand, drawVertCometCol)
		e.resolveSpawn(core.Comet, sq, dir)
	}

	if core.DrawBool(seed, drawAsteroid, r.AsteroidProb) {
		sq, dir := e.verticalEntry(seed, drawAsteroidEdge, drawAsteroidBand, drawAsteroidCol)
		e.resolveSpawn(core.Asteroid, sq, dir)
	}
}

// verticalEntry picks a top or bottom entry square within the edge column
// bands, aimed inward.
func (e *Engine) verticalEntry(seed uint64, edgeDraw, bandDraw, colDraw int) (core.Square, core.Direction) {
	r := e.gs.Rules

	col := core.DrawIntn(seed, uint64(colDraw), r.EdgeBandDepth)
	if core.DrawIntn(seed, uint64(bandDraw), 2) == 1 {
		col = r.Cols - 1 - col
	}

	if core.DrawIntn(seed, uint64(edgeDraw), 2) == 0 {
		return core.NewSquare(0, col), core.South
	}
	return core.NewSquare(r.Rows-1, col), core.North
}

// resolveSpawn places a freshly rolled flyer, resolving an immediate collision
// with whatever already holds the entry square. A spawn-killed impact or an
// instantly collected asteroid never gets board presence.
func (e *Engine) resolveSpawn(kind core.FlyerKind, sq core.Square, dir core.Direction) {
	gs := e.gs

	if gs.StaticAt(sq) != nil {
		return
	}
	// Colliding hazards destroy each other; the newcomer never gets board
	// presence and the occupant is swept by the next compaction.
	if other := gs.FlyerAt(sq); other != nil {
		other.Alive = false
		return
	}
	if p := gs.PieceAt(sq); p != nil {
		switch kind {
		case core.Comet:
			p.Alive = false
			e.bus.Publish(events.NewHazardImpactEvent(e.id, 0, p.ID))
		case core.Asteroid:
			gs.Manufacturing[p.Side]++
			e.bus.Publish(events.NewAsteroidCollectedEvent(e.id, 0, p.Side.String()))
		}
		return
	}

	id := gs.AddFlyer(kind, sq, dir)
	e.bus.Publish(events.NewHazardSpawnedEvent(e.id, id, kind.String(), sq.R, sq.C))
}

// hazardTick advances every alive flyer one square along its direction and
// resolves the landing, then compacts dead flyers out of the collection.
func (e *Engine) hazardTick() {
	gs := e.gs

	for i := range gs.Flyers {
		f := &gs.Flyers[i]
		if !f.Alive {
			continue
		}
		next := f.Pos.Move(f.Dir)

		if !gs.InBounds(next) {
			f.Alive = false
			continue
		}
		if gs.StaticAt(next) != nil {
			f.Alive = false
			continue
		}
		if other := gs.FlyerAt(next); other != nil {
			f.Alive = false
			other.Alive = false
			continue
		}
		if p := gs.PieceAt(next); p != nil {
			f.Alive = false
			switch f.Kind {
			case core.Comet:
				p.Alive = false
				e.bus.Publish(events.NewHazardImpactEvent(e.id, f.ID, p.ID))
			case core.Asteroid:
				gs.Manufacturing[p.Side]++
				e.bus.Publish(events.NewAsteroidCollectedEvent(e.id, f.ID, p.Side.String()))
			}
			continue
		}
		f.Pos = next
	}

	flyers := gs.Flyers[:0]
	for _, f := range gs.Flyers {
		if f.Alive {
			flyers = append(flyers, f)
		}
	}
	gs.Flyers = flyers
}
