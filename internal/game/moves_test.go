package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/testutil"
)

func squares(pairs ...[2]int) []core.Square {
	out := make([]core.Square, len(pairs))
	for i, p := range pairs {
		out[i] = core.NewSquare(p[0], p[1])
	}
	return out
}

func TestRookStopsAtPlanet(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 9, 2)
	testutil.PlaceStatic(gs, core.Planet, 5, 2)

	dests := game.Destinations(gs, core.NewSquare(9, 2))

	// The planet square is reachable (suicide) but nothing beyond it.
	assert.Contains(t, dests, core.NewSquare(8, 2))
	assert.Contains(t, dests, core.NewSquare(6, 2))
	assert.Contains(t, dests, core.NewSquare(5, 2))
	assert.NotContains(t, dests, core.NewSquare(4, 2))
	assert.NotContains(t, dests, core.NewSquare(0, 2))
}

func TestSliderStopsAtFlyer(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 2)
	testutil.PlaceFlyer(gs, core.Comet, 5, 6, core.West)

	dests := game.Destinations(gs, core.NewSquare(5, 2))

	assert.Contains(t, dests, core.NewSquare(5, 5))
	assert.Contains(t, dests, core.NewSquare(5, 6))
	assert.NotContains(t, dests, core.NewSquare(5, 7))
}

func TestSliderPieceInteraction(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 2)
	testutil.PlacePiece(gs, core.Black, core.Pawn, 5, 6)
	testutil.PlacePiece(gs, core.White, core.Pawn, 2, 2)

	dests := game.Destinations(gs, core.NewSquare(5, 2))

	// Enemy piece is capturable and stops the ray
	assert.Contains(t, dests, core.NewSquare(5, 6))
	assert.NotContains(t, dests, core.NewSquare(5, 7))
	// Friendly piece stops the ray and is excluded
	assert.Contains(t, dests, core.NewSquare(3, 2))
	assert.NotContains(t, dests, core.NewSquare(2, 2))
	assert.NotContains(t, dests, core.NewSquare(1, 2))
}

func TestBishopMovesDiagonally(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Bishop, 5, 5)

	dests := game.Destinations(gs, core.NewSquare(5, 5))

	assert.Contains(t, dests, core.NewSquare(4, 4))
	assert.Contains(t, dests, core.NewSquare(2, 8))
	assert.NotContains(t, dests, core.NewSquare(5, 6))
	assert.NotContains(t, dests, core.NewSquare(4, 5))
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Queen, 5, 5)

	dests := game.Destinations(gs, core.NewSquare(5, 5))

	assert.Contains(t, dests, core.NewSquare(5, 0))
	assert.Contains(t, dests, core.NewSquare(0, 0))
	assert.Contains(t, dests, core.NewSquare(8, 8))
	assert.Contains(t, dests, core.NewSquare(2, 5))
}

func TestKnightDestinations(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.Black, core.Knight, 5, 5)
	testutil.PlacePiece(gs, core.Black, core.Pawn, 3, 4)
	testutil.PlacePiece(gs, core.White, core.Pawn, 3, 6)
	testutil.PlaceStatic(gs, core.Planet, 7, 6)

	dests := game.Destinations(gs, core.NewSquare(5, 5))

	expected := squares([2]int{3, 6}, [2]int{4, 3}, [2]int{6, 3}, [2]int{7, 4}, [2]int{7, 6}, [2]int{4, 7}, [2]int{6, 7})
	for _, sq := range expected {
		assert.Contains(t, dests, sq)
	}
	// Friendly pawn excludes its square; the hazard and the enemy do not
	assert.NotContains(t, dests, core.NewSquare(3, 4))
	assert.Len(t, dests, 7)
}

func TestKingDestinations(t *testing.T) {
	gs := testutil.EmptyState()
	testutil.PlacePiece(gs, core.White, core.King, 5, 5)
	testutil.PlacePiece(gs, core.White, core.Pawn, 4, 5)

	dests := game.Destinations(gs, core.NewSquare(5, 5))

	assert.Len(t, dests, 7)
	assert.NotContains(t, dests, core.NewSquare(4, 5))
	assert.Contains(t, dests, core.NewSquare(4, 4))
	assert.Contains(t, dests, core.NewSquare(6, 6))
}

func TestPawnForwardSteps(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Pawn, 9, 2)

	dests := game.Destinations(gs, core.NewSquare(9, 2))
	assert.ElementsMatch(t, squares([2]int{8, 2}, [2]int{7, 2}), dests)

	// Off the home rank, only the single step remains
	testutil.PlacePiece(gs, core.Black, core.Pawn, 5, 2)
	dests = game.Destinations(gs, core.NewSquare(5, 2))
	assert.ElementsMatch(t, squares([2]int{6, 2}), dests)
}

func TestPawnBlockedByPiece(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Pawn, 9, 2)
	testutil.PlacePiece(gs, core.Black, core.Rook, 8, 2)

	dests := game.Destinations(gs, core.NewSquare(9, 2))
	assert.NotContains(t, dests, core.NewSquare(8, 2))
	assert.NotContains(t, dests, core.NewSquare(7, 2))
}

func TestPawnForwardOntoStaticIsSuicideNotBlock(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Pawn, 9, 2)
	testutil.PlaceStatic(gs, core.Planet, 8, 2)

	dests := game.Destinations(gs, core.NewSquare(9, 2))

	// The step onto the planet is a legal suicide, but the static on the
	// intervening square blocks the double launch.
	assert.Contains(t, dests, core.NewSquare(8, 2))
	assert.NotContains(t, dests, core.NewSquare(7, 2))
}

func TestPawnDoubleLaunchOntoComet(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Pawn, 9, 2)
	testutil.PlaceFlyer(gs, core.Comet, 7, 2, core.East)

	dests := game.Destinations(gs, core.NewSquare(9, 2))

	// Exactly two forward destinations: the single step and the comet square
	assert.ElementsMatch(t, squares([2]int{8, 2}, [2]int{7, 2}), dests)
}

func TestPawnDiagonals(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Pawn, 7, 5)
	testutil.PlacePiece(gs, core.Black, core.Knight, 6, 4)
	testutil.PlaceStatic(gs, core.Planet, 6, 6)

	dests := game.Destinations(gs, core.NewSquare(7, 5))

	assert.Contains(t, dests, core.NewSquare(6, 4), "diagonal capture")
	assert.Contains(t, dests, core.NewSquare(6, 6), "diagonal hazard suicide")
	assert.Contains(t, dests, core.NewSquare(6, 5))

	// A friendly piece and an empty square are not diagonal destinations
	gs2 := testutil.StateWithKings()
	testutil.PlacePiece(gs2, core.White, core.Pawn, 7, 5)
	testutil.PlacePiece(gs2, core.White, core.Knight, 6, 4)
	dests2 := game.Destinations(gs2, core.NewSquare(7, 5))
	assert.NotContains(t, dests2, core.NewSquare(6, 4))
	assert.NotContains(t, dests2, core.NewSquare(6, 6))
}

func TestBlackPawnMovesDownBoard(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.Black, core.Pawn, 0, 2)

	dests := game.Destinations(gs, core.NewSquare(0, 2))
	assert.ElementsMatch(t, squares([2]int{1, 2}, [2]int{2, 2}), dests)
}

func TestDestinationsEmptySquare(t *testing.T) {
	gs := testutil.StateWithKings()
	require.Nil(t, game.Destinations(gs, core.NewSquare(5, 5)))
}

func TestCountMobilityIgnoresSideToMove(t *testing.T) {
	gs := testutil.EmptyState()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	gs.SideToMove = core.Black

	// Rook on an empty 10x20 board: 5 up, 4 down, 5 left, 14 right
	assert.Equal(t, 28, game.CountMobility(gs, core.White))
	assert.Equal(t, 0, game.CountMobility(gs, core.Black))
	assert.Equal(t, core.Black, gs.SideToMove, "mobility count must not touch side to move")
}
