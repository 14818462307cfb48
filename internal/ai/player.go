package ai

import (
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/cosmochess/cosmochess/internal/common"
	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// Player is the opposing-side decision engine. It deliberates on deep clones
// of the live state, so a human action arriving mid-think never races with
// its reads; the decision token discards deliberations the live game outran.
type Player struct {
	side       core.Side
	difficulty Difficulty
	tun        Tunables
	rng        *rand.Rand
	logger     zerolog.Logger

	// version is the decision token. Decide captures it; Commit refuses a
	// decision whose token no longer matches.
	version atomic.Uint64

	// lastMove is the previously committed move, for the repetition and
	// exact-reversal penalties.
	lastMove *MoveAction
}

// NewPlayer creates a decision engine for side. rng may be nil, in which case
// a time-seeded source is used (Easy's sampling is the only consumer).
func NewPlayer(side core.Side, difficulty Difficulty, tun Tunables, rng *rand.Rand, logger zerolog.Logger) *Player {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Player{
		side:       side,
		difficulty: difficulty,
		tun:        tun,
		rng:        rng,
		logger: logger.With().
			Str("component", "DecisionEngine").
			Str("side", side.String()).
			Str("difficulty", difficulty.String()).
			Logger(),
	}
}

// Side returns the side this engine plays.
func (p *Player) Side() core.Side { return p.side }

// Invalidate discards any decision still in flight. Call on reset, game over,
// or any external change of the live state.
func (p *Player) Invalidate() { p.version.Add(1) }

// Decision is a chosen action bound to the state version it was computed for.
type Decision struct {
	Action Action
	Score  float64
	token  uint64
}

// Decide picks an action for the current position. The passed state is cloned
// immediately; the caller keeps exclusive ownership of the original. Returns
// false if it is not this engine's turn or no action exists.
func (p *Player) Decide(gs *game.GameState) (Decision, bool) {
	if gs.SideToMove != p.side {
		return Decision{}, false
	}
	token := p.version.Load()
	state := gs.Clone()

	candidates := Candidates(state, p.side, p.tun)
	if len(candidates) == 0 {
		return Decision{}, false
	}

	var (
		choice scored
		found  bool
	)
	switch p.difficulty {
	case Hard:
		choice, found = p.chooseTwoPly(state, candidates)
	case Medium:
		choice, found = p.chooseBest(p.scoreOnePly(state, candidates, nil))
	default:
		choice, found = p.chooseSampled(p.scoreOnePly(state, candidates, p.repetitionPenalty))
	}
	if !found {
		// Every candidate failed to simulate (decided position, for one).
		return Decision{}, false
	}

	p.logger.Debug().
		Str("action", choice.action.String()).
		Float64("score", choice.score).
		Int("candidates", len(candidates)).
		Msg("Decision made")

	return Decision{Action: choice.action, Score: choice.score, token: token}, true
}

// Commit applies a decision to the live engine. Hazards are deferred so the
// caller can stage presentation; run Engine.CompleteHazardPhase afterwards.
// Returns false if the decision is stale or the applier refused it.
func (p *Player) Commit(e *game.Engine, d Decision) bool {
	if d.token != p.version.Load() {
		p.logger.Debug().Msg("Discarding stale decision")
		return false
	}
	res := d.Action.Apply(e, game.HazardsDeferred)
	if !res.Applied {
		p.logger.Warn().Err(res.Reason).Str("action", d.Action.String()).Msg("Chosen action rejected by applier")
		return false
	}

	if mv, ok := d.Action.(MoveAction); ok {
		p.lastMove = &mv
	} else {
		p.lastMove = nil
	}
	p.version.Add(1)
	return true
}

type scored struct {
	action Action
	score  float64
}

// penalty adjusts a candidate's one-ply score before ranking.
type penalty func(Action) float64

// repetitionPenalty discourages moving the identical piece twice in a row.
func (p *Player) repetitionPenalty(a Action) float64 {
	mv, ok := a.(MoveAction)
	if !ok || p.lastMove == nil {
		return 0
	}
	if mv.PieceID == p.lastMove.PieceID {
		return p.tun.RepetitionPenalty
	}
	return 0
}

// reversalPenalty discourages exactly undoing the previous move.
func (p *Player) reversalPenalty(a Action) float64 {
	mv, ok := a.(MoveAction)
	if !ok || p.lastMove == nil {
		return 0
	}
	if mv.From.Equal(p.lastMove.To) && mv.To.Equal(p.lastMove.From) {
		return p.tun.ReversalPenalty
	}
	return 0
}

// scoreOnePly applies every candidate to its own clone (hazards tick but
// never spawn, so look-ahead consumes no RNG draws) and evaluates the result.
func (p *Player) scoreOnePly(state *game.GameState, candidates []Action, pen penalty) []scored {
	out := make([]scored, 0, len(candidates))
	for _, a := range candidates {
		sim := game.NewSimEngine(state.Clone())
		res := a.Apply(sim, game.HazardsTickOnly)
		if !res.Applied {
			continue
		}
		s := Evaluate(sim.State(), p.side, p.tun)
		if pen != nil {
			s -= pen(a)
		}
		out = append(out, scored{action: a, score: s})
	}
	return out
}

// chooseBest returns the highest-scored entry; ties go to the first seen.
func (p *Player) chooseBest(entries []scored) (scored, bool) {
	if len(entries) == 0 {
		return scored{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.score > best.score {
			best = e
		}
	}
	return best, true
}

// chooseSampled picks uniformly among the top-N scored entries.
func (p *Player) chooseSampled(entries []scored) (scored, bool) {
	if len(entries) == 0 {
		return scored{}, false
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })
	n := common.Min(p.tun.EasySampleWidth, len(entries))
	return entries[p.rng.Intn(n)], true
}

// chooseTwoPly keeps the top candidates by one-ply score, then assumes the
// opponent answers each with the reply minimizing this side's evaluation. The
// candidate with the best worst case wins. Flat bounded-breadth minimax; no
// transposition table, no deepening.
func (p *Player) chooseTwoPly(state *game.GameState, candidates []Action) (scored, bool) {
	entries := p.scoreOnePly(state, candidates, p.reversalPenalty)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })
	if len(entries) > p.tun.HardSearchWidth {
		entries = entries[:p.tun.HardSearchWidth]
	}

	best := scored{}
	haveBest := false
	for _, e := range entries {
		sim := game.NewSimEngine(state.Clone())
		if res := e.action.Apply(sim, game.HazardsTickOnly); !res.Applied {
			continue
		}
		worst := p.opponentBestReply(sim.State())

		if !haveBest || worst > best.score {
			best = scored{action: e.action, score: worst}
			haveBest = true
		}
	}
	if !haveBest {
		// Every retained candidate failed to simulate; fall back to one-ply.
		return p.chooseBest(entries)
	}
	return best, true
}

// opponentBestReply simulates every legal opponent reply, moves and
// affordable deploys alike, and returns the evaluation the opponent can
// force. With no legal reply, the position's own evaluation stands.
func (p *Player) opponentBestReply(gs *game.GameState) float64 {
	opp := p.side.Opponent()
	worst := Evaluate(gs, p.side, p.tun)
	haveReply := false

	for _, a := range Candidates(gs, opp, p.tun) {
		sim := game.NewSimEngine(gs.Clone())
		if res := a.Apply(sim, game.HazardsTickOnly); !res.Applied {
			continue
		}
		s := Evaluate(sim.State(), p.side, p.tun)
		if !haveReply || s < worst {
			worst = s
			haveReply = true
		}
	}
	return worst
}
