package room

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/hotdice/internal/common/code"
	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/KirkDiggler/hotdice/internal/repositories/user"
	"go.uber.org/zap"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_collaborators.go github.com/KirkDiggler/hotdice/internal/services/room Notifier,Announcer

// DefaultPersistTimeout bounds each call to the repositories and announcer
const DefaultPersistTimeout = 2 * time.Second

// Notifier delivers events to connected sessions. Emit must not block.
type Notifier interface {
	Emit(sessionID string, event protocol.Event)
}

// Announcer publishes finished games somewhere outside the room
type Announcer interface {
	AnnounceGameOver(ctx context.Context, input *AnnounceGameOverInput) error
}

// AnnounceGameOverInput is a finished game as reported by the winning client
type AnnounceGameOverInput struct {
	RoomID       string
	GameRecordID string
	WinnerName   string
	FinalPlayers []models.Player
	ScoreGoal    int
}

// Config holds the collaborators of a registry
type Config struct {
	// UserRepo validates and records identities
	UserRepo user.Repository

	// GameRecordRepo stores one record per started game
	GameRecordRepo game_record.Repository

	// Notifier delivers outbound events
	Notifier Notifier

	// Announcer is optional
	Announcer Announcer

	// UUID mints identities for first-time clients
	UUID uuid.UUID

	// CodeGenerator mints room codes
	CodeGenerator code.Generator

	// Logger defaults to a no-op logger
	Logger *zap.Logger

	// PersistTimeout defaults to DefaultPersistTimeout
	PersistTimeout time.Duration
}

type IdentifyInput struct {
	SessionID string
	// UserID is empty for a first-time client
	UserID string
}

type IdentifyOutput struct {
	UserID string
	// RejoinRoomID is set when a rejoin_prompt was sent
	RejoinRoomID string
}

type CreateRoomInput struct {
	SessionID  string
	PlayerName string
	ScoreGoal  int
}

type CreateRoomOutput struct {
	Room *models.Room
}

type FindMatchInput struct {
	SessionID  string
	PlayerName string
}

type FindMatchOutput struct {
	Room *models.Room
	// Started is true when this call filled the room
	Started bool
}

type JoinRoomInput struct {
	SessionID  string
	RoomID     string
	PlayerName string
}

type JoinRoomOutput struct {
	Room *models.Room
}

type LeaveRoomInput struct {
	SessionID string
}

type DisconnectInput struct {
	SessionID string
}

type SetReadyInput struct {
	SessionID string
	RoomID    string
	IsReady   bool
}

type StartGameInput struct {
	SessionID string
	RoomID    string
}

type RelayActionInput struct {
	SessionID string
	RoomID    string
	Action    protocol.Action
}

type RejoinGameInput struct {
	SessionID string
	RoomID    string
}

type StateSyncInput struct {
	SessionID string
	RoomID    string
	TargetID  string
	State     json.RawMessage
}

// Stats is a point in time count of what the registry holds
type Stats struct {
	Rooms          int `json:"rooms"`
	Lobbies        int `json:"lobbies"`
	LiveGames      int `json:"liveGames"`
	WaitingMatches int `json:"waitingMatches"`
	Sessions       int `json:"sessions"`
	Players        int `json:"players"`
}
