package turn

import (
	"github.com/KirkDiggler/hotdice/internal/dice"
	"github.com/KirkDiggler/hotdice/internal/models"
)

// Config holds what a machine needs to start a game
type Config struct {
	// Players in turn order; seat 0 rolls first
	Players []models.Player

	// ScoreGoal is the winning total, DefaultScoreGoal when zero
	ScoreGoal int

	// DiceRoller produces faces for every roll
	DiceRoller dice.Roller
}

// GameState is the derived view handed to the UI. It is rebuilt from the
// machine's fields on every call.
type GameState struct {
	CurrentPlayerIndex int             `json:"currentPlayerIndex"`
	TurnScore          int             `json:"turnScore"`
	IsFarkle           bool            `json:"isFarkle"`
	CanRoll            bool            `json:"canRoll"`
	CanBank            bool            `json:"canBank"`
	Dice               []models.Die    `json:"dice"`
	Players            []models.Player `json:"players"`
	ScoreGoal          int             `json:"scoreGoal"`
	GameOver           bool            `json:"gameOver"`
}

// Snapshot is the full machine state as exchanged in state_sync
type Snapshot struct {
	Dice               []models.Die    `json:"dice"`
	AccumulatedScore   int             `json:"accumulatedScore"`
	IsFarkle           bool            `json:"isFarkle"`
	HasRolled          bool            `json:"hasRolled"`
	Players            []models.Player `json:"players"`
	CurrentPlayerIndex int             `json:"currentPlayerIndex"`
	ScoreGoal          int             `json:"scoreGoal"`
}
