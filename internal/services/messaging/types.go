package messaging

import (
	"github.com/KirkDiggler/hotdice/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType is the category of a failed request, as resolved by ErrorTypeOf
type ErrorType string

const (
	ErrorTypeNotIdentified  ErrorType = "not_identified"
	ErrorTypeUnknownUser    ErrorType = "unknown_user"
	ErrorTypeRoomNotFound   ErrorType = "room_not_found"
	ErrorTypeRoomFull       ErrorType = "room_full"
	ErrorTypeGameStarted    ErrorType = "game_started"
	ErrorTypeGameNotStarted ErrorType = "game_not_started"
	ErrorTypeRandomRoom     ErrorType = "random_room"
	ErrorTypeAlreadyInRoom  ErrorType = "already_in_room"
	ErrorTypeNotInRoom      ErrorType = "not_in_room"
	ErrorTypeNotHost        ErrorType = "not_host"
	ErrorTypeNotEnough      ErrorType = "not_enough_players"
	ErrorTypeNotReady       ErrorType = "players_not_ready"
	ErrorTypeBadRequest     ErrorType = "bad_request"
	ErrorTypeUnknown        ErrorType = "unknown"
)

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetGameOverMessageInput contains the final result of a game
type GetGameOverMessageInput struct {
	WinnerName   string
	FinalPlayers []models.Player
	ScoreGoal    int
}

// GetGameOverMessageOutput contains the announcement
type GetGameOverMessageOutput struct {
	Title string

	// Message is a one line cheer for the winner
	Message string

	// Standings lists every player by final score, highest first
	Standings []string
}

// Config contains configuration for the messaging service
type Config struct {
	// Seed makes message selection repeatable, time seeded when zero
	Seed int64
}
