package game

import (
	"github.com/cosmochess/cosmochess/internal/config"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// Rules is an immutable snapshot of the game-mechanic tunables. Engines and
// tests hold their own copy so a config reload never changes a running game.
type Rules struct {
	Rows int
	Cols int

	PlanetCount      int
	StartFile        int
	StaticMinSpacing int

	HorizontalCometProb float64
	VerticalCometProb   float64
	AsteroidProb        float64
	CometBeltMinRow     int
	CometBeltMaxRow     int
	EdgeBandDepth       int

	DeployCosts map[core.PieceType]int
}

// RulesFromConfig materializes the rule set from the global configuration.
func RulesFromConfig() Rules {
	c := config.Get()
	return Rules{
		Rows:                c.Game.Board.Rows,
		Cols:                c.Game.Board.Cols,
		PlanetCount:         c.Game.Setup.PlanetCount,
		StartFile:           c.Game.Setup.StartFile,
		StaticMinSpacing:    c.Game.Setup.StaticMinSpacing,
		HorizontalCometProb: c.Game.Hazards.HorizontalCometProb,
		VerticalCometProb:   c.Game.Hazards.VerticalCometProb,
		AsteroidProb:        c.Game.Hazards.AsteroidProb,
		CometBeltMinRow:     c.Game.Hazards.CometBeltMinRow,
		CometBeltMaxRow:     c.Game.Hazards.CometBeltMaxRow,
		EdgeBandDepth:       c.Game.Hazards.EdgeBandDepth,
		DeployCosts: map[core.PieceType]int{
			core.Pawn:   c.Game.Deploy.PawnCost,
			core.Knight: c.Game.Deploy.KnightCost,
			core.Bishop: c.Game.Deploy.BishopCost,
			core.Rook:   c.Game.Deploy.RookCost,
			core.Queen:  c.Game.Deploy.QueenCost,
		},
	}
}

// clone returns a deep copy of the rule set.
func (r Rules) clone() Rules {
	costs := make(map[core.PieceType]int, len(r.DeployCosts))
	for k, v := range r.DeployCosts {
		costs[k] = v
	}
	out := r
	out.DeployCosts = costs
	return out
}

// HomeRank returns the back-rank row for a side.
func (r Rules) HomeRank(side core.Side) int {
	if side == core.Black {
		return 0
	}
	return r.Rows - 1
}

// GameState is the aggregate root of a single game. It is exclusively owned by
// whichever context holds it: the live game holds one instance, and the
// decision engine searches on deep clones it discards after scoring.
type GameState struct {
	Rules      Rules
	SideToMove core.Side
	Ply        int

	// Seed drives hazard spawning. It advances by core.SeedIncrement on every
	// spawn evaluation and is copied by value on Clone, so look-ahead never
	// perturbs the live game's hazard history.
	Seed uint64

	// nextID issues entity identities. Carried in the state so clones allocate
	// independently of the live game.
	nextID int

	Pieces  []core.Piece
	Statics []core.StaticHazard
	Flyers  []core.FlyingHazard

	// Manufacturing is the per-side resource pool, indexed by core.Side.
	Manufacturing [2]int
}

// NewGameState creates an empty state with the given rule set and hazard seed.
// Entity placement is the map generator's job.
func NewGameState(rules Rules, seed uint64) *GameState {
	return &GameState{
		Rules:      rules.clone(),
		SideToMove: core.White,
		Seed:       seed,
		nextID:     1,
	}
}

// AllocID issues a fresh entity identity.
func (gs *GameState) AllocID() int {
	id := gs.nextID
	gs.nextID++
	return id
}

// Clone returns an exhaustive deep copy. The clone shares nothing with the
// receiver: seed and id counter are copied by value and all entity slices are
// duplicated.
func (gs *GameState) Clone() *GameState {
	return &GameState{
		Rules:         gs.Rules.clone(),
		SideToMove:    gs.SideToMove,
		Ply:           gs.Ply,
		Seed:          gs.Seed,
		nextID:        gs.nextID,
		Pieces:        append([]core.Piece(nil), gs.Pieces...),
		Statics:       append([]core.StaticHazard(nil), gs.Statics...),
		Flyers:        append([]core.FlyingHazard(nil), gs.Flyers...),
		Manufacturing: gs.Manufacturing,
	}
}

// InBounds checks a square against this state's board dimensions.
func (gs *GameState) InBounds(sq core.Square) bool {
	return sq.InBounds(gs.Rules.Rows, gs.Rules.Cols)
}

// StarPos returns the star's square. The second return is false only for
// hand-built test states that carry no star.
func (gs *GameState) StarPos() (core.Square, bool) {
	for i := range gs.Statics {
		if gs.Statics[i].Kind == core.Star {
			return gs.Statics[i].Pos, true
		}
	}
	return core.Square{}, false
}

// AliveKings counts a side's living kings.
func (gs *GameState) AliveKings(side core.Side) int {
	n := 0
	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if p.Alive && p.Side == side && p.Type == core.King {
			n++
		}
	}
	return n
}

// AddPiece creates a new alive piece with a fresh identity and returns its id.
func (gs *GameState) AddPiece(side core.Side, pt core.PieceType, pos core.Square) int {
	id := gs.AllocID()
	gs.Pieces = append(gs.Pieces, core.Piece{
		ID:    id,
		Side:  side,
		Type:  pt,
		Pos:   pos,
		Alive: true,
	})
	return id
}

// AddFlyer creates a new alive flying hazard with a fresh identity.
func (gs *GameState) AddFlyer(kind core.FlyerKind, pos core.Square, dir core.Direction) int {
	id := gs.AllocID()
	gs.Flyers = append(gs.Flyers, core.FlyingHazard{
		ID:    id,
		Kind:  kind,
		Pos:   pos,
		Dir:   dir,
		Alive: true,
	})
	return id
}
