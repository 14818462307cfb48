package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/testutil"
)

func newTestPlayer(side core.Side, d Difficulty) *Player {
	return NewPlayer(side, d, testTunables(), testutil.NewTestRNG(1), testutil.NopLogger())
}

func TestDecideRefusesOutOfTurn(t *testing.T) {
	gs := testutil.StateWithKings()
	p := newTestPlayer(core.Black, Medium)

	_, ok := p.Decide(gs)
	assert.False(t, ok, "white to move")
}

func TestMediumTakesTheHangingQueen(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	testutil.PlacePiece(gs, core.Black, core.Queen, 5, 9)
	p := newTestPlayer(core.White, Medium)

	d, ok := p.Decide(gs)
	require.True(t, ok)

	mv, isMove := d.Action.(MoveAction)
	require.True(t, isMove)
	assert.Equal(t, core.NewSquare(5, 5), mv.From)
	assert.Equal(t, core.NewSquare(5, 9), mv.To)
}

func TestHardTakesTheKing(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 10)
	testutil.PlacePiece(gs, core.Black, core.Rook, 4, 0)
	p := newTestPlayer(core.White, Hard)

	d, ok := p.Decide(gs)
	require.True(t, ok)

	mv, isMove := d.Action.(MoveAction)
	require.True(t, isMove)
	assert.Equal(t, core.NewSquare(0, 10), mv.To, "rook takes the king up the file")
	assert.Equal(t, testTunables().TerminalScore, d.Score)
}

func TestHardAvoidsTheHangingSquare(t *testing.T) {
	// White's rook can grab a pawn, but the capture square is defended by the
	// black rook. Two-ply search must see the recapture and decline.
	gs := testutil.StateWithKings()
	whiteRook := testutil.PlacePiece(gs, core.White, core.Rook, 7, 0)
	testutil.PlacePiece(gs, core.Black, core.Pawn, 3, 0)
	testutil.PlacePiece(gs, core.Black, core.Rook, 3, 5)
	p := newTestPlayer(core.White, Hard)

	d, ok := p.Decide(gs)
	require.True(t, ok)

	if mv, isMove := d.Action.(MoveAction); isMove && mv.PieceID == whiteRook {
		assert.NotEqual(t, core.NewSquare(3, 0), mv.To, "pawn grab loses the rook to recapture")
	}
}

func TestCommitAppliesAndAdvancesTheGame(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	e := testutil.NewTestEngine(gs)
	p := newTestPlayer(core.White, Medium)

	d, ok := p.Decide(gs)
	require.True(t, ok)

	require.True(t, p.Commit(e, d))
	assert.Equal(t, 1, gs.Ply)
	assert.Equal(t, core.Black, gs.SideToMove)
}

func TestCommitRejectsStaleDecision(t *testing.T) {
	gs := testutil.StateWithKings()
	e := testutil.NewTestEngine(gs)
	p := newTestPlayer(core.White, Medium)

	d, ok := p.Decide(gs)
	require.True(t, ok)

	p.Invalidate()

	assert.False(t, p.Commit(e, d))
	assert.Equal(t, 0, gs.Ply, "stale decision never touches the live game")
}

func TestCommitConsumesTheToken(t *testing.T) {
	gs := testutil.StateWithKings()
	e := testutil.NewTestEngine(gs)
	p := newTestPlayer(core.White, Medium)

	d, ok := p.Decide(gs)
	require.True(t, ok)

	require.True(t, p.Commit(e, d))
	e.CompleteHazardPhase()

	assert.False(t, p.Commit(e, d), "a committed decision cannot be replayed")
}

func TestDecideNeverMutatesTheLiveState(t *testing.T) {
	gs := testutil.StateWithKings()
	testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
	testutil.PlacePiece(gs, core.Black, core.Queen, 5, 9)
	gs.Manufacturing[core.White] = 9
	before := gs.Clone()

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		_, ok := newTestPlayer(core.White, d).Decide(gs)
		require.True(t, ok)
		assert.Equal(t, before, gs, "difficulty %v", d)
	}
}

func TestEasyIsDeterministicUnderASeededRNG(t *testing.T) {
	pick := func() Action {
		gs := testutil.StateWithKings()
		testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
		p := newTestPlayer(core.White, Easy)
		d, ok := p.Decide(gs)
		require.True(t, ok)
		return d.Action
	}

	assert.Equal(t, pick().String(), pick().String())
}

func TestDecideReturnsFalseOnceTheGameIsDecided(t *testing.T) {
	for _, diff := range []Difficulty{Easy, Medium, Hard} {
		gs := testutil.StateWithKings()
		testutil.PlacePiece(gs, core.White, core.Rook, 5, 5)
		for i := range gs.Pieces {
			if gs.Pieces[i].Side == core.Black && gs.Pieces[i].Type == core.King {
				gs.Pieces[i].Alive = false
			}
		}
		p := newTestPlayer(core.White, diff)

		_, ok := p.Decide(gs)
		assert.False(t, ok, "difficulty %v", diff)
	}
}

func TestOpponentReplyConsidersDeploys(t *testing.T) {
	// Black has no capture on the board, but nine manufacturing points buy a
	// queen. The forced evaluation must reflect that reply, not just king
	// shuffles.
	gs := testutil.StateWithKings()
	gs.SideToMove = core.Black
	gs.Manufacturing[core.Black] = 9
	p := newTestPlayer(core.White, Hard)

	baseline := Evaluate(gs, core.White, testTunables())
	assert.Less(t, p.opponentBestReply(gs), baseline-5,
		"a queen deploy is the opponent's strongest answer")
}

func TestRepetitionPenaltyTargetsTheSamePiece(t *testing.T) {
	p := newTestPlayer(core.White, Easy)
	p.lastMove = &MoveAction{PieceID: 3, From: core.NewSquare(5, 5), To: core.NewSquare(5, 6)}

	same := MoveAction{PieceID: 3, From: core.NewSquare(5, 6), To: core.NewSquare(5, 7)}
	other := MoveAction{PieceID: 4, From: core.NewSquare(2, 2), To: core.NewSquare(2, 3)}

	assert.Equal(t, p.tun.RepetitionPenalty, p.repetitionPenalty(same))
	assert.Equal(t, 0.0, p.repetitionPenalty(other))
	assert.Equal(t, 0.0, p.repetitionPenalty(DeployAction{Type: core.Pawn, To: core.NewSquare(9, 9)}))
}

func TestReversalPenaltyTargetsTheExactUndo(t *testing.T) {
	p := newTestPlayer(core.White, Hard)
	p.lastMove = &MoveAction{PieceID: 3, From: core.NewSquare(5, 5), To: core.NewSquare(5, 6)}

	undo := MoveAction{PieceID: 3, From: core.NewSquare(5, 6), To: core.NewSquare(5, 5)}
	sidestep := MoveAction{PieceID: 3, From: core.NewSquare(5, 6), To: core.NewSquare(5, 7)}

	assert.Equal(t, p.tun.ReversalPenalty, p.reversalPenalty(undo))
	assert.Equal(t, 0.0, p.reversalPenalty(sidestep))
}
