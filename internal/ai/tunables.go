package ai

import (
	"fmt"

	"github.com/cosmochess/cosmochess/internal/config"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// Difficulty selects the search mode.
type Difficulty int

const (
	// Easy searches one ply and samples among the top candidates instead of
	// taking the best. The randomization is a deliberate weakening.
	Easy Difficulty = iota
	// Medium searches one ply and takes the best candidate.
	Medium
	// Hard searches two plies: the opponent's best reply is assumed for each
	// retained candidate, and the candidate with the best worst case wins.
	Hard
)

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// Tunables bundles the search-size constants and evaluation weights.
type Tunables struct {
	EasySampleWidth int
	HardSearchWidth int
	DeploysPerType  int

	Material            map[core.PieceType]float64
	TerminalScore       float64
	HeatedWeight        float64
	ManufacturingWeight float64
	HazardThreatPenalty float64
	HazardThreatBonus   float64
	MobilityWeight      float64
	DevelopmentWeight   float64

	RepetitionPenalty float64
	ReversalPenalty   float64
}

// DefaultTunables builds the tunables from configuration defaults.
func DefaultTunables() Tunables {
	c := config.Get()
	return Tunables{
		EasySampleWidth: c.AI.EasySampleWidth,
		HardSearchWidth: c.AI.HardSearchWidth,
		DeploysPerType:  c.AI.DeploysPerType,

		Material: map[core.PieceType]float64{
			core.Pawn:   1,
			core.Knight: 3,
			core.Bishop: 3,
			core.Rook:   5,
			core.Queen:  9,
			core.King:   1000,
		},
		TerminalScore:       1_000_000,
		HeatedWeight:        0.5,
		ManufacturingWeight: 0.2,
		HazardThreatPenalty: 0.75,
		HazardThreatBonus:   0.4,
		MobilityWeight:      0.05,
		DevelopmentWeight:   0.15,

		RepetitionPenalty: 2.0,
		ReversalPenalty:   2.5,
	}
}
