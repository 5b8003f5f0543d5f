package ws

import (
	"context"
	"time"

	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"go.uber.org/zap"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_registry.go github.com/KirkDiggler/hotdice/internal/handlers/ws Registry

const (
	// DefaultSendBuffer is how many frames may queue for one connection
	// before it is dropped as a slow consumer
	DefaultSendBuffer = 64

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
)

// Registry is what the hub drives from its loop
type Registry interface {
	Identify(ctx context.Context, input *room.IdentifyInput) (*room.IdentifyOutput, error)
	CreateRoom(ctx context.Context, input *room.CreateRoomInput) (*room.CreateRoomOutput, error)
	FindMatch(ctx context.Context, input *room.FindMatchInput) (*room.FindMatchOutput, error)
	JoinRoom(ctx context.Context, input *room.JoinRoomInput) (*room.JoinRoomOutput, error)
	LeaveRoom(ctx context.Context, input *room.LeaveRoomInput) error
	Disconnect(ctx context.Context, input *room.DisconnectInput)
	SetReady(ctx context.Context, input *room.SetReadyInput) error
	StartGame(ctx context.Context, input *room.StartGameInput) error
	RelayAction(ctx context.Context, input *room.RelayActionInput) error
	RejoinGame(ctx context.Context, input *room.RejoinGameInput) error
	StateSync(ctx context.Context, input *room.StateSyncInput) error
	Stats() room.Stats
}

// Config holds the hub's collaborators
type Config struct {
	// Messaging renders error replies
	Messaging messaging.Service

	// UUID mints session ids
	UUID uuid.UUID

	// Logger defaults to a no-op logger
	Logger *zap.Logger

	// SendBuffer defaults to DefaultSendBuffer
	SendBuffer int

	// AllowedOrigins restricts the websocket upgrade. Empty allows any origin.
	AllowedOrigins []string
}
