package game

import (
	"fmt"
	"strings"

	"github.com/cosmochess/cosmochess/internal/game/core"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorPurple = "\033[35m"
)

var pieceLetters = map[core.PieceType]string{
	core.King:   "K",
	core.Queen:  "Q",
	core.Rook:   "R",
	core.Bishop: "B",
	core.Knight: "N",
	core.Pawn:   "P",
}

// Render returns a colored text board for terminal display. Display-only;
// reads state and mutates nothing.
func (e *Engine) Render() string {
	gs := e.gs
	var sb strings.Builder

	const (
		emptySymbol    = "·"
		planetSymbol   = "▲"
		starSymbol     = "✶"
		cometSymbol    = "*"
		asteroidSymbol = "o"
	)

	// Column headers
	sb.WriteString("   ")
	for c := 0; c < gs.Rules.Cols; c++ {
		sb.WriteString(fmt.Sprintf("%2d", c%10))
	}
	sb.WriteString("\n")

	for r := 0; r < gs.Rules.Rows; r++ {
		sb.WriteString(fmt.Sprintf("%2d ", r))

		for c := 0; c < gs.Rules.Cols; c++ {
			sq := core.NewSquare(r, c)

			var symbol, color string
			switch {
			case gs.StaticAt(sq) != nil && gs.StaticAt(sq).Kind == core.Star:
				symbol, color = starSymbol, colorYellow
			case gs.StaticAt(sq) != nil:
				symbol, color = planetSymbol, colorGray
			case gs.PieceAt(sq) != nil:
				p := gs.PieceAt(sq)
				symbol = pieceLetters[p.Type]
				if p.Side == core.White {
					color = colorWhite
				} else {
					color = colorRed
				}
				if p.Heated {
					color = colorYellow
				}
			case gs.FlyerAt(sq) != nil && gs.FlyerAt(sq).Kind == core.Comet:
				symbol, color = cometSymbol, colorPurple
			case gs.FlyerAt(sq) != nil:
				symbol, color = asteroidSymbol, colorCyan
			default:
				symbol, color = emptySymbol, colorGray
			}
			sb.WriteString(" " + color + symbol + colorReset)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nply %d, %s to move, mfg W:%d B:%d, flyers %d\n",
		gs.Ply, gs.SideToMove, gs.Manufacturing[core.White], gs.Manufacturing[core.Black], len(gs.Flyers)))

	return sb.String()
}
