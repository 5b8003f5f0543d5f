package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/hotdice/internal/models"
)

// Relayed action names. Only ActionGameOver means anything to the server;
// the rest are applied by each client's own turn machine.
const (
	ActionToggle   = "toggle"
	ActionRoll     = "roll"
	ActionBank     = "bank"
	ActionGameOver = "game_over"
)

// Action is a relayed game action: a tag plus a payload the server passes
// through untouched
type Action struct {
	Name    string
	Payload json.RawMessage
}

// NewAction encodes payload under name
func NewAction(name string, payload any) (Action, error) {
	if name == "" {
		return Action{}, ErrMissingAction
	}
	a := Action{Name: name}
	if payload == nil {
		return a, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Action{}, fmt.Errorf("failed to encode %s action: %w", name, err)
	}
	a.Payload = raw
	return a, nil
}

// IsGameOver reports whether this is the reserved game_over action
func (a Action) IsGameOver() bool {
	return a.Name == ActionGameOver
}

// GameOver decodes the payload of a game_over action
func (a Action) GameOver() (*GameOverPayload, error) {
	if !a.IsGameOver() {
		return nil, ErrNotGameOver
	}
	var p GameOverPayload
	if len(a.Payload) == 0 {
		return &p, nil
	}
	if err := json.Unmarshal(a.Payload, &p); err != nil {
		return nil, fmt.Errorf("failed to decode game_over payload: %w", err)
	}
	return &p, nil
}

// Decode unmarshals the payload into v
func (a Action) Decode(v any) error {
	if len(a.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(a.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s action: %w", a.Name, err)
	}
	return nil
}

// GameOverPayload is the final result reported by the client that saw the
// winning bank
type GameOverPayload struct {
	WinnerName   string          `json:"winnerName"`
	FinalPlayers []models.Player `json:"finalPlayers"`
}

// TogglePayload selects or deselects one die
type TogglePayload struct {
	Index int `json:"index"`
}

// RollPayload carries the faces the roller saw so every peer lands on the
// same dice. Values line up with the indices that were rolled.
type RollPayload struct {
	Indices []int `json:"indices"`
	Values  []int `json:"values"`
}
