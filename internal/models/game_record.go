package models

import "time"

// RecordPlayer is a participant as stored in a game record
type RecordPlayer struct {
	UserID string `json:"id,omitempty"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// GameRecord is the persisted outline of a played game
type GameRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// Players holds the seats at start, replaced by final totals at end
	Players []RecordPlayer `json:"players"`

	// WinnerName is set when the game ends
	WinnerName string `json:"winnerName,omitempty"`

	// StartedAt is when the game started
	StartedAt time.Time `json:"startedAt"`

	// EndedAt is when game_over was relayed, nil while in progress
	EndedAt *time.Time `json:"endedAt,omitempty"`
}

// IsFinished reports whether the record has been closed
func (g *GameRecord) IsFinished() bool {
	return g.EndedAt != nil
}
