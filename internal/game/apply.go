package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cosmochess/cosmochess/internal/game/core"
	"github.com/cosmochess/cosmochess/internal/game/events"
)

// SimMode controls hazard-phase execution when an action commits.
type SimMode int

const (
	// HazardsFull runs spawn then tick after Black's action. Live play.
	HazardsFull SimMode = iota
	// HazardsTickOnly runs tick but suppresses spawn, so look-ahead stays
	// deterministic and never consumes RNG draws.
	HazardsTickOnly
	// HazardsDeferred runs neither; CompleteHazardPhase runs the pending
	// spawn+tick later. Used to stage presentation after an AI commit.
	HazardsDeferred
)

// Move requests relocating the piece on From to To.
type Move struct {
	From core.Square
	To   core.Square
}

func (m Move) String() string {
	return fmt.Sprintf("move %s->%s", m.From, m.To)
}

// Deploy requests creating a new piece of Type on To for the side to move.
type Deploy struct {
	To   core.Square
	Type core.PieceType
}

func (d Deploy) String() string {
	return fmt.Sprintf("deploy %s@%s", d.Type, d.To)
}

// Result reports what an apply call did. A rejected action leaves the state
// untouched: no ply advance, no side flip, no entity mutation.
type Result struct {
	Applied bool
	Reason  error // nil when Applied

	PieceID    int // mover or deployed piece; 0 when rejected
	MoverDied  bool
	CapturedID int // 0 if nothing was captured
	Collected  bool
	BurnedIDs  []int
}

func rejected(reason error) Result {
	return Result{Reason: reason}
}

// Engine owns a live GameState and applies validated turns to it. The engine
// is single-threaded: callers serialize all mutations. Simulation forks carry
// a nil event bus and a no-op logger.
type Engine struct {
	gs     *GameState
	id     string
	logger zerolog.Logger
	bus    *events.Bus

	// pendingHazards is set when an action committed under HazardsDeferred
	// owed a hazard phase that has not run yet.
	pendingHazards bool
}

// NewEngine wraps a state for live play. bus may be nil.
func NewEngine(gs *GameState, logger zerolog.Logger, bus *events.Bus) *Engine {
	id := uuid.NewString()
	e := &Engine{
		gs:     gs,
		id:     id,
		logger: logger.With().Str("component", "GameEngine").Str("game_id", id).Logger(),
		bus:    bus,
	}
	e.bus.Publish(events.NewGameStartedEvent(id, gs.Rules.Rows, gs.Rules.Cols, gs.Seed))
	return e
}

// NewSimEngine wraps a state for look-ahead scoring: no events, no logging,
// no game identity. The caller owns gs exclusively.
func NewSimEngine(gs *GameState) *Engine {
	return &Engine{gs: gs, logger: zerolog.Nop()}
}

// Fork clones the engine for look-ahead. The fork owns a deep copy of the
// state, publishes nothing and logs nothing.
func (e *Engine) Fork() *Engine {
	return &Engine{
		gs:     e.gs.Clone(),
		id:     e.id,
		logger: zerolog.Nop(),
	}
}

// State exposes the engine's game state. Collaborators treat it as read-only;
// all mutation goes through ApplyMove and ApplyDeploy.
func (e *Engine) State() *GameState { return e.gs }

// ID returns the engine's game identity.
func (e *Engine) ID() string { return e.id }

// ApplyMove validates and commits one move for the side to move. Any illegal
// request is rejected without touching the state.
func (e *Engine) ApplyMove(mv Move, mode SimMode) Result {
	gs := e.gs
	mover := gs.SideToMove
	snapshot := gs.heatedPieces(mover)

	if gs.AliveKings(core.White) == 0 || gs.AliveKings(core.Black) == 0 {
		return e.reject(core.ErrGameOver)
	}
	if !gs.InBounds(mv.From) || !gs.InBounds(mv.To) {
		return e.reject(core.ErrOutOfBounds)
	}
	p := gs.PieceAt(mv.From)
	if p == nil {
		return e.reject(core.ErrNoPiece)
	}
	if p.Side != mover {
		return e.reject(core.ErrNotOwned)
	}
	if occ := gs.PieceAt(mv.To); occ != nil && occ.Side == mover {
		return e.reject(core.ErrFriendlyOccupied)
	}
	if !squareListed(Destinations(gs, mv.From), mv.To) {
		return e.reject(core.ErrIllegalMove)
	}

	res := Result{Applied: true, PieceID: p.ID}

	if f := gs.FlyerAt(mv.To); f != nil {
		switch f.Kind {
		case core.Comet:
			p.Pos = mv.To
			p.Alive = false
			res.MoverDied = true
			fid := f.ID
			e.removeFlyer(fid)
			e.bus.Publish(events.NewHazardImpactEvent(e.id, fid, p.ID))
			e.finishTurn(&res, mover, snapshot, mode, mv.String())
			return res
		case core.Asteroid:
			fid := f.ID
			e.removeFlyer(fid)
			gs.Manufacturing[mover]++
			res.Collected = true
			e.bus.Publish(events.NewAsteroidCollectedEvent(e.id, fid, mover.String()))
		}
	}

	if victim := gs.PieceAt(mv.To); victim != nil {
		victim.Alive = false
		res.CapturedID = victim.ID
		e.bus.Publish(events.NewPieceCapturedEvent(e.id, victim.ID, p.ID))
	}

	p.Pos = mv.To

	if st := gs.StaticAt(mv.To); st != nil {
		p.Alive = false
		res.MoverDied = true
		e.bus.Publish(events.NewPieceSuicidedEvent(e.id, p.ID, st.Kind.String()))
		e.finishTurn(&res, mover, snapshot, mode, mv.String())
		return res
	}

	gs.markHeat(mover)
	e.finishTurn(&res, mover, snapshot, mode, mv.String())
	return res
}

// ApplyDeploy validates and commits one deploy for the side to move. The home
// rank restriction is the caller's concern; this function checks resources and
// square occupancy only.
func (e *Engine) ApplyDeploy(dp Deploy, mode SimMode) Result {
	gs := e.gs
	mover := gs.SideToMove
	snapshot := gs.heatedPieces(mover)

	if gs.AliveKings(core.White) == 0 || gs.AliveKings(core.Black) == 0 {
		return e.reject(core.ErrGameOver)
	}
	cost, ok := gs.Rules.DeployCosts[dp.Type]
	if !ok {
		return e.reject(core.ErrNotDeployable)
	}
	if gs.Manufacturing[mover] < cost {
		return e.reject(core.ErrInsufficientFunds)
	}
	if !gs.InBounds(dp.To) {
		return e.reject(core.ErrOutOfBounds)
	}
	if gs.PieceAt(dp.To) != nil || gs.StaticAt(dp.To) != nil || gs.FlyerAt(dp.To) != nil {
		return e.reject(core.ErrSquareOccupied)
	}

	gs.Manufacturing[mover] -= cost
	id := gs.AddPiece(mover, dp.Type, dp.To)
	gs.markHeat(mover)

	res := Result{Applied: true, PieceID: id}
	e.finishTurn(&res, mover, snapshot, mode, dp.String())
	return res
}

// CompleteHazardPhase runs a hazard phase owed by an action committed under
// HazardsDeferred. Safe to call when nothing is pending.
func (e *Engine) CompleteHazardPhase() {
	if !e.pendingHazards {
		return
	}
	e.pendingHazards = false
	e.maybeSpawnHazards()
	e.hazardTick()
}

// finishTurn resolves heat, advances the turn counter and runs the hazard
// phase. Hazards process exactly once per full round, after Black's action.
func (e *Engine) finishTurn(res *Result, mover core.Side, snapshot []int, mode SimMode, action string) {
	gs := e.gs

	res.BurnedIDs = gs.resolveHeat(snapshot)
	for _, id := range res.BurnedIDs {
		e.bus.Publish(events.NewPieceBurnedEvent(e.id, id))
	}

	gs.SideToMove = mover.Opponent()
	gs.Ply++

	if mover == core.Black {
		switch mode {
		case HazardsFull:
			e.maybeSpawnHazards()
			e.hazardTick()
		case HazardsTickOnly:
			e.hazardTick()
		case HazardsDeferred:
			e.pendingHazards = true
		}
	}

	e.bus.Publish(events.NewActionAppliedEvent(e.id, mover.String(), action, gs.Ply))
	e.bus.Publish(events.NewTurnEndedEvent(e.id, gs.Ply, gs.SideToMove.String()))

	e.logger.Debug().
		Str("side", mover.String()).
		Str("action", action).
		Int("ply", gs.Ply).
		Int("burned", len(res.BurnedIDs)).
		Msg("Action applied")
}

func (e *Engine) reject(reason error) Result {
	e.bus.Publish(events.NewActionRejectedEvent(e.id, e.gs.SideToMove.String(), reason.Error()))
	e.logger.Debug().Err(reason).Str("side", e.gs.SideToMove.String()).Msg("Action rejected")
	return rejected(reason)
}

// removeFlyer marks a flyer dead and compacts it out of the collection.
func (e *Engine) removeFlyer(id int) {
	flyers := e.gs.Flyers[:0]
	for _, f := range e.gs.Flyers {
		if f.ID != id {
			flyers = append(flyers, f)
		}
	}
	e.gs.Flyers = flyers
}

func squareListed(list []core.Square, sq core.Square) bool {
	for _, s := range list {
		if s.Equal(sq) {
			return true
		}
	}
	return false
}
