package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/services/room"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

var errorMessages = map[ErrorType][]string{
	ErrorTypeNotIdentified: {
		"Say who you are first! Send identify before anything else.",
		"We haven't been introduced. Identify yourself and try again.",
	},
	ErrorTypeUnknownUser: {
		"We don't recognise that player id. Identify without one to get a fresh id.",
		"That player id is a stranger to us. Start over with a new one.",
	},
	ErrorTypeRoomNotFound: {
		"No room with that code. Double check it and try again.",
		"That room doesn't exist, or the game already wrapped up.",
		"Room not found. Maybe the dice rolled it away?",
	},
	ErrorTypeRoomFull: {
		"This room is packed! Six players is the limit.",
		"No seats left at this table. Try another room.",
	},
	ErrorTypeGameStarted: {
		"The dice are already rolling in that room. Catch the next game!",
		"Too late, hotshot! That game has started without you.",
	},
	ErrorTypeGameNotStarted: {
		"The game hasn't started yet. Hang tight!",
		"Hold your dice! Nobody has started this game.",
	},
	ErrorTypeRandomRoom: {
		"That room is for matchmaking only. Use find match to get a seat.",
		"Matchmade rooms can't be joined by code. Try find match instead.",
	},
	ErrorTypeAlreadyInRoom: {
		"You're already in that room, eager beaver!",
		"Double-dipping? You already have a seat here.",
	},
	ErrorTypeNotInRoom: {
		"You're not sitting at that table.",
		"Join the room before trying that.",
	},
	ErrorTypeNotHost: {
		"Only the host can start the game.",
		"Nice try! The host gets to say when we roll.",
	},
	ErrorTypeNotEnough: {
		"You need at least two players to start.",
		"Farkle is better with friends. Wait for another player.",
	},
	ErrorTypeNotReady: {
		"Everyone has to be ready before the game starts.",
		"Somebody's still stretching. Wait until all players are ready.",
	},
	ErrorTypeBadRequest: {
		"That message didn't make sense to us. Check it and try again.",
		"Couldn't read that request.",
	},
	ErrorTypeUnknown: {
		"Something went wrong! Try again.",
		"Oops! The dice got confused. Try again.",
		"Technical difficulties! The dice are being recalibrated.",
	},
}

// ErrorTypeOf resolves the error type reported to clients for err
func ErrorTypeOf(err error) ErrorType {
	var roomErr room.RoomError
	if errors.As(err, &roomErr) {
		switch roomErr {
		case room.ErrNotIdentified:
			return ErrorTypeNotIdentified
		case room.ErrUnknownUser:
			return ErrorTypeUnknownUser
		case room.ErrRoomNotFound:
			return ErrorTypeRoomNotFound
		case room.ErrRoomFull:
			return ErrorTypeRoomFull
		case room.ErrGameAlreadyStarted:
			return ErrorTypeGameStarted
		case room.ErrGameNotStarted:
			return ErrorTypeGameNotStarted
		case room.ErrRandomRoom:
			return ErrorTypeRandomRoom
		case room.ErrAlreadyInRoom:
			return ErrorTypeAlreadyInRoom
		case room.ErrNotInRoom:
			return ErrorTypeNotInRoom
		case room.ErrNotHost:
			return ErrorTypeNotHost
		case room.ErrNotEnoughPlayers:
			return ErrorTypeNotEnough
		case room.ErrPlayersNotReady:
			return ErrorTypeNotReady
		case room.ErrMissingPlayerName, room.ErrInvalidScoreGoal, room.ErrMissingAction, room.ErrMissingTarget:
			return ErrorTypeBadRequest
		}
		return ErrorTypeUnknown
	}

	var protoErr protocol.ProtocolError
	if errors.As(err, &protoErr) {
		return ErrorTypeBadRequest
	}
	return ErrorTypeUnknown
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	messages, ok := errorMessages[input.ErrorType]
	if !ok {
		messages = errorMessages[ErrorTypeUnknown]
	}

	return &GetErrorMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns the announcement for a finished game
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	winner := input.WinnerName
	if winner == "" {
		winner = "Somebody"
	}

	messages := []string{
		fmt.Sprintf("%s rode the hot dice all the way home!", winner),
		fmt.Sprintf("All hail %s, master of the six dice!", winner),
		fmt.Sprintf("%s banked it and never looked back.", winner),
		fmt.Sprintf("The dice gods smiled on %s today.", winner),
		fmt.Sprintf("%s wins! Everyone else, check your dice for loading.", winner),
	}
	if input.ScoreGoal > 0 {
		messages = append(messages, fmt.Sprintf("%s was first past %d. Farkle on!", winner, input.ScoreGoal))
	}

	// highest score first, ties keep seat order
	players := slices.Clone(input.FinalPlayers)
	slices.SortStableFunc(players, func(a, b models.Player) int {
		return b.Score - a.Score
	})

	standings := make([]string, 0, len(players))
	for i, p := range players {
		standings = append(standings, fmt.Sprintf("%d. %s: %d", i+1, p.Name, p.Score))
	}

	return &GetGameOverMessageOutput{
		Title:     fmt.Sprintf("🎲 %s wins!", winner),
		Message:   messages[s.rand.Intn(len(messages))],
		Standings: standings,
	}, nil
}
