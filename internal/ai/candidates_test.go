package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/testutil"
)

func TestCandidatesEnumeratesOwnMovesOnly(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	testutil.PlacePiece(gs, core.Black, core.Rook, 3, 3)

	actions := Candidates(gs, core.White, testTunables())

	for _, a := range actions {
		mv, ok := a.(MoveAction)
		require.True(t, ok, "no manufacturing, so no deploys")
		p := gs.PieceAt(mv.From)
		require.NotNil(t, p)
		assert.Equal(t, core.White, p.Side)
	}
}

func TestCandidatesSkipDeadPieces(t *testing.T) {
	gs := testutil.StateWithKings()
	id := testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	gs.PieceByID(id).Alive = false

	for _, a := range Candidates(gs, core.White, testTunables()) {
		if mv, ok := a.(MoveAction); ok {
			assert.NotEqual(t, id, mv.PieceID)
		}
	}
}

func TestDeployCandidatesRespectFunds(t *testing.T) {
	gs := testutil.StateWithKings()
	gs.Manufacturing[core.White] = 2 // a pawn, but not a knight

	types := map[core.PieceType]bool{}
	for _, a := range deployCandidates(gs, core.White, testTunables()) {
		types[a.(DeployAction).Type] = true
	}

	assert.True(t, types[core.Pawn])
	assert.False(t, types[core.Knight])
	assert.False(t, types[core.Queen])
}

func TestDeployCandidatesRankAndTruncateSquares(t *testing.T) {
	gs := testutil.StateWithKings() // white king on (9,10), the start file
	gs.Manufacturing[core.White] = 1
	tun := testTunables()
	tun.DeploysPerType = 3

	actions := deployCandidates(gs, core.White, tun)
	require.Len(t, actions, 3, "one affordable type, three squares")

	// Nearest free columns flanking the occupied start file. Columns 9 and 11
	// tie on both distance and centering, so the stable sort keeps column
	// order; column 8 fills the last slot.
	want := []core.Square{
		core.NewSquare(9, 9),
		core.NewSquare(9, 11),
		core.NewSquare(9, 8),
	}
	for i, a := range actions {
		assert.Equal(t, want[i], a.(DeployAction).To, "rank %d", i)
	}
}

func TestDeployCandidatesAvoidOccupiedSquares(t *testing.T) {
	gs := testutil.StateWithKings()
	gs.Manufacturing[core.White] = 1
	testutil.PlacePiece(gs, core.White, core.Pawn, 9, 9)
	testutil.PlaceStatic(gs, core.Planet, 9, 11)
	testutil.PlaceFlyer(gs, core.Asteroid, 9, 8, core.North)

	for _, a := range deployCandidates(gs, core.White, testTunables()) {
		to := a.(DeployAction).To
		assert.Nil(t, gs.PieceAt(to))
		assert.Nil(t, gs.StaticAt(to))
		assert.Nil(t, gs.FlyerAt(to))
	}
}

func TestDeployOrderIsByDescendingCost(t *testing.T) {
	gs := testutil.StateWithKings()
	gs.Manufacturing[core.White] = 100
	tun := testTunables()
	tun.DeploysPerType = 1

	actions := deployCandidates(gs, core.White, tun)
	require.Len(t, actions, 5)

	want := []core.PieceType{core.Queen, core.Rook, core.Knight, core.Bishop, core.Pawn}
	for i, a := range actions {
		assert.Equal(t, want[i], a.(DeployAction).Type)
	}
}
