package ai

import (
	"sort"

	"github.com/cosmochess/cosmochess/internal/common"
	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// Action is a candidate the decision engine can score and commit.
type Action interface {
	Apply(e *game.Engine, mode game.SimMode) game.Result
	String() string
}

// MoveAction relocates an existing piece. PieceID is carried for the
// repetition bookkeeping; the applier keys off the squares.
type MoveAction struct {
	PieceID int
	From    core.Square
	To      core.Square
}

// Apply commits the move through the engine.
func (a MoveAction) Apply(e *game.Engine, mode game.SimMode) game.Result {
	return e.ApplyMove(game.Move{From: a.From, To: a.To}, mode)
}

func (a MoveAction) String() string {
	return game.Move{From: a.From, To: a.To}.String()
}

// DeployAction spends manufacturing to create a new piece on the home rank.
type DeployAction struct {
	Type core.PieceType
	To   core.Square
}

// Apply commits the deploy through the engine.
func (a DeployAction) Apply(e *game.Engine, mode game.SimMode) game.Result {
	return e.ApplyDeploy(game.Deploy{To: a.To, Type: a.Type}, mode)
}

func (a DeployAction) String() string {
	return game.Deploy{To: a.To, Type: a.Type}.String()
}

// deployOrder enumerates deployable types by descending cost; the tie between
// knight and bishop is fixed so enumeration stays stable.
var deployOrder = []core.PieceType{core.Queen, core.Rook, core.Knight, core.Bishop, core.Pawn}

// Candidates enumerates every legal move of side's alive pieces plus a
// bounded set of affordable deploys on side's home rank. Enumeration order is
// deterministic (piece slice order, then deploy preference order), which is
// what makes tie-breaking reproducible.
func Candidates(gs *game.GameState, side core.Side, tun Tunables) []Action {
	var actions []Action

	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if !p.Alive || p.Side != side {
			continue
		}
		for _, to := range game.Destinations(gs, p.Pos) {
			actions = append(actions, MoveAction{PieceID: p.ID, From: p.Pos, To: to})
		}
	}

	actions = append(actions, deployCandidates(gs, side, tun)...)
	return actions
}

// deployCandidates ranks the free home-rank squares by distance to the
// canonical start file (centering as tie-break) and keeps the top squares per
// affordable type.
func deployCandidates(gs *game.GameState, side core.Side, tun Tunables) []Action {
	row := gs.Rules.HomeRank(side)

	var free []core.Square
	for c := 0; c < gs.Rules.Cols; c++ {
		sq := core.NewSquare(row, c)
		if gs.PieceAt(sq) == nil && gs.StaticAt(sq) == nil && gs.FlyerAt(sq) == nil {
			free = append(free, sq)
		}
	}
	sort.SliceStable(free, func(i, j int) bool {
		di := common.Abs(free[i].C - gs.Rules.StartFile)
		dj := common.Abs(free[j].C - gs.Rules.StartFile)
		if di != dj {
			return di < dj
		}
		center := gs.Rules.Cols / 2
		return common.Abs(free[i].C-center) < common.Abs(free[j].C-center)
	})
	if len(free) > tun.DeploysPerType {
		free = free[:tun.DeploysPerType]
	}

	var actions []Action
	for _, pt := range deployOrder {
		if gs.Rules.DeployCosts[pt] > gs.Manufacturing[side] {
			continue
		}
		for _, sq := range free {
			actions = append(actions, DeployAction{Type: pt, To: sq})
		}
	}
	return actions
}
