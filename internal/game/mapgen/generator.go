package mapgen

import (
	"math/rand"

	"github.com/cosmochess/cosmochess/internal/common"
	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// backRankOrder is the fixed piece layout, centered on the canonical start
// file. The king sits exactly on the start file.
var backRankOrder = []core.PieceType{
	core.Rook, core.Knight, core.Bishop, core.Queen,
	core.King, core.Bishop, core.Knight, core.Rook,
}

// Generator builds initial game states with deterministic RNG
type Generator struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewGenerator creates a new state generator
func NewGenerator(rules game.Rules, rng *rand.Rand) *Generator {
	return &Generator{rules: rules, rng: rng}
}

// NewGameState creates the deterministic initial state for a seed: both back
// ranks populated, the configured planets and exactly one star placed by
// seeded rejection sampling clear of the starting pieces.
func NewGameState(rules game.Rules, seed int64) *game.GameState {
	g := NewGenerator(rules, rand.New(rand.NewSource(seed)))
	return g.Generate(uint64(seed))
}

// Generate builds a fresh state. hazardSeed primes the in-state hazard stream;
// the generator's own rng drives static placement.
func (g *Generator) Generate(hazardSeed uint64) *game.GameState {
	gs := game.NewGameState(g.rules, hazardSeed)

	g.placeBackRank(gs, core.Black)
	g.placeBackRank(gs, core.White)
	g.placeStatics(gs)

	return gs
}

func (g *Generator) placeBackRank(gs *game.GameState, side core.Side) {
	row := g.rules.HomeRank(side)
	// King (index 4 in the order) lands on the start file.
	firstCol := g.rules.StartFile - 4

	for i, pt := range backRankOrder {
		gs.AddPiece(side, pt, core.NewSquare(row, firstCol+i))
	}
}

// placeStatics rejection-samples the planets and the star into the central
// belt, pairwise non-adjacent and clear of every starting piece.
func (g *Generator) placeStatics(gs *game.GameState) {
	for i := 0; i < g.rules.PlanetCount; i++ {
		g.placeStatic(gs, core.Planet)
	}
	g.placeStatic(gs, core.Star)
}

func (g *Generator) placeStatic(gs *game.GameState, kind core.StaticKind) {
	r := g.rules
	maxAttempts := r.Rows * r.Cols

	for attempts := 0; attempts < maxAttempts; attempts++ {
		row := 2 + g.rng.Intn(r.Rows-4)
		col := g.rng.Intn(r.Cols)
		sq := core.NewSquare(row, col)

		if !g.staticLocationOK(gs, sq) {
			continue
		}
		gs.Statics = append(gs.Statics, core.StaticHazard{Kind: kind, Pos: sq})
		return
	}

	// Shouldn't happen with reasonable configs
	panic("mapgen: unable to place static hazard - no valid locations")
}

func (g *Generator) staticLocationOK(gs *game.GameState, sq core.Square) bool {
	for i := range gs.Statics {
		other := gs.Statics[i].Pos
		if other.Equal(sq) || common.IsKingAdjacent(other.R, other.C, sq.R, sq.C) {
			return false
		}
	}
	for i := range gs.Pieces {
		if common.ChebyshevDistance(gs.Pieces[i].Pos.R, gs.Pieces[i].Pos.C, sq.R, sq.C) < g.rules.StaticMinSpacing {
			return false
		}
	}
	return true
}
