package events

import "time"

// Event type constants
const (
	TypeGameStarted       = "game.started"
	TypeActionApplied     = "action.applied"
	TypeActionRejected    = "action.rejected"
	TypePieceCaptured     = "piece.captured"
	TypePieceSuicided     = "piece.suicided"
	TypePieceBurned       = "piece.burned"
	TypeHazardSpawned     = "hazard.spawned"
	TypeHazardImpact      = "hazard.impact"
	TypeAsteroidCollected = "asteroid.collected"
	TypeTurnEnded         = "turn.ended"
	TypeGameEnded         = "game.ended"
)

func base(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Game: gameID}
}

// GameStartedEvent is published when a new game begins.
type GameStartedEvent struct {
	BaseEvent
	Rows, Cols int
	Seed       uint64
}

// NewGameStartedEvent creates a new GameStartedEvent.
func NewGameStartedEvent(gameID string, rows, cols int, seed uint64) *GameStartedEvent {
	return &GameStartedEvent{BaseEvent: base(TypeGameStarted, gameID), Rows: rows, Cols: cols, Seed: seed}
}

// ActionAppliedEvent is published when a move or deploy commits.
type ActionAppliedEvent struct {
	BaseEvent
	Side   string
	Action string
	Ply    int
}

// NewActionAppliedEvent creates a new ActionAppliedEvent.
func NewActionAppliedEvent(gameID, side, action string, ply int) *ActionAppliedEvent {
	return &ActionAppliedEvent{BaseEvent: base(TypeActionApplied, gameID), Side: side, Action: action, Ply: ply}
}

// ActionRejectedEvent is published when an illegal move or deploy is refused.
type ActionRejectedEvent struct {
	BaseEvent
	Side   string
	Reason string
}

// NewActionRejectedEvent creates a new ActionRejectedEvent.
func NewActionRejectedEvent(gameID, side, reason string) *ActionRejectedEvent {
	return &ActionRejectedEvent{BaseEvent: base(TypeActionRejected, gameID), Side: side, Reason: reason}
}

// PieceCapturedEvent is published when a piece takes an enemy piece.
type PieceCapturedEvent struct {
	BaseEvent
	PieceID int
	ByID    int
}

// NewPieceCapturedEvent creates a new PieceCapturedEvent.
func NewPieceCapturedEvent(gameID string, pieceID, byID int) *PieceCapturedEvent {
	return &PieceCapturedEvent{BaseEvent: base(TypePieceCaptured, gameID), PieceID: pieceID, ByID: byID}
}

// PieceSuicidedEvent is published when a mover destroys itself on a hazard.
type PieceSuicidedEvent struct {
	BaseEvent
	PieceID int
	Hazard  string
}

// NewPieceSuicidedEvent creates a new PieceSuicidedEvent.
func NewPieceSuicidedEvent(gameID string, pieceID int, hazard string) *PieceSuicidedEvent {
	return &PieceSuicidedEvent{BaseEvent: base(TypePieceSuicided, gameID), PieceID: pieceID, Hazard: hazard}
}

// PieceBurnedEvent is published when an overheated piece combusts.
type PieceBurnedEvent struct {
	BaseEvent
	PieceID int
}

// NewPieceBurnedEvent creates a new PieceBurnedEvent.
func NewPieceBurnedEvent(gameID string, pieceID int) *PieceBurnedEvent {
	return &PieceBurnedEvent{BaseEvent: base(TypePieceBurned, gameID), PieceID: pieceID}
}

// HazardSpawnedEvent is published when a flying hazard enters the board.
type HazardSpawnedEvent struct {
	BaseEvent
	FlyerID int
	Kind    string
	Row     int
	Col     int
}

// NewHazardSpawnedEvent creates a new HazardSpawnedEvent.
func NewHazardSpawnedEvent(gameID string, flyerID int, kind string, row, col int) *HazardSpawnedEvent {
	return &HazardSpawnedEvent{BaseEvent: base(TypeHazardSpawned, gameID), FlyerID: flyerID, Kind: kind, Row: row, Col: col}
}

// HazardImpactEvent is published when a comet destroys a piece.
type HazardImpactEvent struct {
	BaseEvent
	FlyerID int
	PieceID int
}

// NewHazardImpactEvent creates a new HazardImpactEvent.
func NewHazardImpactEvent(gameID string, flyerID, pieceID int) *HazardImpactEvent {
	return &HazardImpactEvent{BaseEvent: base(TypeHazardImpact, gameID), FlyerID: flyerID, PieceID: pieceID}
}

// AsteroidCollectedEvent is published when a side earns a manufacturing point.
type AsteroidCollectedEvent struct {
	BaseEvent
	FlyerID int
	Side    string
}

// NewAsteroidCollectedEvent creates a new AsteroidCollectedEvent.
func NewAsteroidCollectedEvent(gameID string, flyerID int, side string) *AsteroidCollectedEvent {
	return &AsteroidCollectedEvent{BaseEvent: base(TypeAsteroidCollected, gameID), FlyerID: flyerID, Side: side}
}

// TurnEndedEvent is published after every committed action.
type TurnEndedEvent struct {
	BaseEvent
	Ply        int
	NextToMove string
}

// NewTurnEndedEvent creates a new TurnEndedEvent.
func NewTurnEndedEvent(gameID string, ply int, nextToMove string) *TurnEndedEvent {
	return &TurnEndedEvent{BaseEvent: base(TypeTurnEnded, gameID), Ply: ply, NextToMove: nextToMove}
}

// GameEndedEvent is published once a side has no living king.
type GameEndedEvent struct {
	BaseEvent
	Winner   string
	FinalPly int
}

// NewGameEndedEvent creates a new GameEndedEvent.
func NewGameEndedEvent(gameID, winner string, finalPly int) *GameEndedEvent {
	return &GameEndedEvent{BaseEvent: base(TypeGameEnded, gameID), Winner: winner, FinalPly: finalPly}
}
