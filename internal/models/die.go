package models

// DiceCount is the number of dice in play for every game
const DiceCount = 6

// Die is one of the six dice on the table
type Die struct {
	// Value is the face showing, 1..6
	Value int `json:"value"`

	// Selected marks a die the active player intends to score with next
	Selected bool `json:"selected"`

	// Locked marks a die already committed to the turn score; it is not
	// rolled again until a hot dice reset
	Locked bool `json:"locked"`
}
