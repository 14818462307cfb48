package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/testutil"
)

func TestCloneIsDeepAndEqual(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	testutil.PlaceStatic(gs, core.Star, 4, 4)
	testutil.PlaceFlyer(gs, core.Comet, 3, 0, core.East)
	gs.Manufacturing[core.White] = 7
	gs.Ply = 12

	clone := gs.Clone()
	require.Equal(t, gs, clone)

	// Mutating the clone never reaches the original
	clone.Pieces[0].Alive = false
	clone.Flyers[0].Pos = core.NewSquare(3, 1)
	clone.Manufacturing[core.White] = 0
	clone.Rules.DeployCosts[core.Pawn] = 99

	assert.True(t, gs.Pieces[0].Alive)
	assert.Equal(t, core.NewSquare(3, 0), gs.Flyers[0].Pos)
	assert.Equal(t, 7, gs.Manufacturing[core.White])
	assert.Equal(t, 1, gs.Rules.DeployCosts[core.Pawn])
}

func TestCloneAllocatesIDsIndependently(t *testing.T) {
	gs := testutil.StateWithKings()
	clone := gs.Clone()

	a := gs.AllocID()
	b := clone.AllocID()

	assert.Equal(t, a, b, "clone continues from the same counter")

	gs.AllocID()
	assert.Equal(t, b+1, clone.AllocID(), "counters diverge after the fork")
}

func TestCloneSeedIsIndependent(t *testing.T) {
	gs := testutil.StateWithKings()
	clone := gs.Clone()

	gs.Seed += core.SeedIncrement

	assert.NotEqual(t, gs.Seed, clone.Seed)
}

func TestStarPos(t *testing.T) {
	gs := testutil.StateWithKings()
	_, ok := gs.StarPos()
	assert.False(t, ok)

	testutil.PlaceStatic(gs, core.Planet, 3, 3)
	testutil.PlaceStatic(gs, core.Star, 5, 8)

	pos, ok := gs.StarPos()
	require.True(t, ok)
	assert.Equal(t, core.NewSquare(5, 8), pos)
}

func TestAliveKings(t *testing.T) {
	gs := testutil.StateWithKings()
	assert.Equal(t, 1, gs.AliveKings(core.White))
	assert.Equal(t, 1, gs.AliveKings(core.Black))

	for i := range gs.Pieces {
		if gs.Pieces[i].Side == core.Black {
			gs.Pieces[i].Alive = false
		}
	}
	assert.Equal(t, 0, gs.AliveKings(core.Black))
}

func TestHomeRank(t *testing.T) {
	r := testutil.TestRules()
	assert.Equal(t, 9, r.HomeRank(core.White))
	assert.Equal(t, 0, r.HomeRank(core.Black))
}

func TestNewGameStateStartsWithWhite(t *testing.T) {
	gs := game.NewGameState(testutil.TestRules(), 42)
	assert.Equal(t, core.White, gs.SideToMove)
	assert.Equal(t, 0, gs.Ply)
	assert.Equal(t, uint64(42), gs.Seed)
	assert.Equal(t, [2]int{0, 0}, gs.Manufacturing)
}
