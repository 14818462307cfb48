package ai

import (
	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// Evaluate scores a state from side's point of view; positive favors side.
// Terminal positions dominate everything else. The remainder is a weighted sum
// of material, heat obligations, manufacturing, next-tick comet threats,
// mobility and development.
func Evaluate(gs *game.GameState, side core.Side, tun Tunables) float64 {
	ownKings := gs.AliveKings(side)
	oppKings := gs.AliveKings(side.Opponent())
	switch {
	case ownKings == 0 && oppKings == 0:
		return 0
	case ownKings == 0:
		return -tun.TerminalScore
	case oppKings == 0:
		return tun.TerminalScore
	}

	score := 0.0

	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if !p.Alive {
			continue
		}
		sign := 1.0
		if p.Side != side {
			sign = -1
		}

		score += sign * tun.Material[p.Type]

		if p.Heated {
			score -= sign * tun.HeatedWeight
		}

		if p.Type != core.Pawn && p.Type != core.King && p.Pos.R == gs.Rules.HomeRank(p.Side) {
			score -= sign * tun.DevelopmentWeight
		}
	}

	score += tun.ManufacturingWeight *
		float64(gs.Manufacturing[side]-gs.Manufacturing[side.Opponent()])

	score += cometThreatTerm(gs, side, tun)

	score += tun.MobilityWeight *
		float64(game.CountMobility(gs, side)-game.CountMobility(gs, side.Opponent()))

	return score
}

// cometThreatTerm penalizes own pieces standing where a live comet will be
// after the next tick, and credits enemy pieces in the same predicament.
// Asteroids are a pickup, not a threat, and are excluded.
func cometThreatTerm(gs *game.GameState, side core.Side, tun Tunables) float64 {
	term := 0.0
	for i := range gs.Flyers {
		f := &gs.Flyers[i]
		if !f.Alive || f.Kind != core.Comet {
			continue
		}
		p := gs.PieceAt(f.Pos.Move(f.Dir))
		if p == nil {
			continue
		}
		if p.Side == side {
			term -= tun.HazardThreatPenalty
		} else {
			term += tun.HazardThreatBonus
		}
	}
	return term
}
