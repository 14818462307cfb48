package rules

import (
	"github.com/cosmochess/cosmochess/internal/game"
	"github.com/cosmochess/cosmochess/internal/game/core"
)

// Outcome is the terminal status of a game.
type Outcome int

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	// NoWinner covers the rare simultaneous loss of both kings. It is a
	// finished game with no victor, not a draw state.
	NoWinner
)

// String returns a readable outcome name.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case NoWinner:
		return "no winner"
	default:
		return "undecided"
	}
}

// GameOver reports whether the outcome is terminal.
func (o Outcome) GameOver() bool { return o != Undecided }

// WinnerIfAny determines the outcome from king liveness. A side loses the
// instant it has zero alive kings.
func WinnerIfAny(gs *game.GameState) Outcome {
	whiteKings := gs.AliveKings(core.White)
	blackKings := gs.AliveKings(core.Black)

	switch {
	case whiteKings == 0 && blackKings == 0:
		return NoWinner
	case blackKings == 0:
		return WhiteWins
	case whiteKings == 0:
		return BlackWins
	default:
		return Undecided
	}
}
