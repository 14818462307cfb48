package testutil

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// TestRules returns a full-size rule set with hazard spawning disabled, so
// scripted scenarios see no surprise flyers.
func TestRules() game.Rules {
	return game.Rules{
		Rows:             10,
		Cols:             20,
		PlanetCount:      3,
		StartFile:        10,
		StaticMinSpacing: 2,
		CometBeltMinRow:  2,
		CometBeltMaxRow:  7,
		EdgeBandDepth:    4,
		DeployCosts: map[core.PieceType]int{
			core.Pawn:   1,
			core.Knight: 3,
			core.Bishop: 3,
			core.Rook:   5,
			core.Queen:  9,
		},
	}
}

// EmptyState creates a bare state with the test rules and no entities.
func EmptyState() *game.GameState {
	return game.NewGameState(TestRules(), 1)
}

// StateWithKings creates a state holding only the two kings, far from each
// other, with White to move. Most scenario tests build on top of this.
func StateWithKings() *game.GameState {
	gs := EmptyState()
	gs.AddPiece(core.White, core.King, core.NewSquare(9, 10))
	gs.AddPiece(core.Black, core.King, core.NewSquare(0, 10))
	return gs
}

// PlacePiece adds an alive piece and returns its id.
func PlacePiece(gs *game.GameState, side core.Side, pt core.PieceType, r, c int) int {
	return gs.AddPiece(side, pt, core.NewSquare(r, c))
}

// PlaceStatic adds a static hazard.
func PlaceStatic(gs *game.GameState, kind core.StaticKind, r, c int) {
	gs.Statics = append(gs.Statics, core.StaticHazard{Kind: kind, Pos: core.NewSquare(r, c)})
}

// PlaceFlyer adds an alive flying hazard and returns its id.
func PlaceFlyer(gs *game.GameState, kind core.FlyerKind, r, c int, dir core.Direction) int {
	return gs.AddFlyer(kind, core.NewSquare(r, c), dir)
}

// NewTestEngine wraps a state in a silent engine.
func NewTestEngine(gs *game.GameState) *game.Engine {
	return game.NewEngine(gs, NopLogger(), nil)
}
