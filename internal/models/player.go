package models

// Player is a seat in a running game
type Player struct {
	// ID is the persistent identity of the player (survives reconnects)
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Score is the player's banked total
	Score int `json:"score"`
}
