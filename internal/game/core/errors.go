package core

import "errors"

var (
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrNoPiece           = errors.New("no alive piece on source square")
	ErrNotOwned          = errors.New("piece not owned by side to move")
	ErrFriendlyOccupied  = errors.New("destination occupied by friendly piece")
	ErrIllegalMove       = errors.New("destination not reachable by piece")
	ErrInsufficientFunds = errors.New("insufficient manufacturing points")
	ErrSquareOccupied    = errors.New("deploy square occupied")
	ErrNotDeployable     = errors.New("piece type cannot be deployed")
	ErrGameOver          = errors.New("game is over")
)
