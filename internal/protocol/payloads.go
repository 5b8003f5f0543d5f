package protocol

import (
	"encoding/json"

	"github.com/KirkDiggler/hotdice/internal/models"
)

// IdentifyPayload is sent first on every connection. An empty UserID asks
// the server to mint a new identity.
type IdentifyPayload struct {
	UserID string `json:"userId,omitempty"`
}

type CreateRoomPayload struct {
	PlayerName string `json:"playerName"`
	ScoreGoal  int    `json:"scoreGoal,omitempty"`
}

type FindMatchPayload struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type PlayerReadyPayload struct {
	RoomID  string `json:"roomId"`
	IsReady bool   `json:"isReady"`
}

type StartGamePayload struct {
	RoomID string `json:"roomId"`
}

// GameActionPayload is a turn action to relay. Payload is opaque to the
// server unless Action is game_over.
type GameActionPayload struct {
	RoomID  string          `json:"roomId"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RejoinGamePayload struct {
	RoomID string `json:"roomId"`
}

// StateSyncPayload is a peer's answer to request_state_sync
type StateSyncPayload struct {
	TargetID string          `json:"targetId"`
	RoomID   string          `json:"roomId"`
	State    json.RawMessage `json:"state"`
}

type IdentifiedPayload struct {
	UserID string `json:"userId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// RoomPayload describes a room's membership. It is the body of
// room_created, player_joined, player_left and player_update.
type RoomPayload struct {
	RoomID    string               `json:"roomId"`
	Players   []*models.RoomPlayer `json:"players"`
	HostID    string               `json:"hostId,omitempty"`
	ScoreGoal int                  `json:"scoreGoal"`
	IsRandom  bool                 `json:"isRandom"`
	PlayerID  string               `json:"playerId,omitempty"`
}

type ReadyToStartPayload struct {
	RoomID string `json:"roomId"`
}

type GameStartedPayload struct {
	RoomID             string               `json:"roomId"`
	Players            []*models.RoomPlayer `json:"players"`
	CurrentPlayerIndex int                  `json:"currentPlayerIndex"`
	ScoreGoal          int                  `json:"scoreGoal"`
	GameRecordID       string               `json:"gameRecordId,omitempty"`
	IsRandom           bool                 `json:"isRandom"`
}

// RelayedActionPayload is a game_action as delivered to the other members
type RelayedActionPayload struct {
	Action   string          `json:"action"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	SenderID string          `json:"senderId"`
}

type RejoinPromptPayload struct {
	RoomID    string               `json:"roomId"`
	Players   []*models.RoomPlayer `json:"players"`
	ScoreGoal int                  `json:"scoreGoal"`
}

type PlayerRejoinedPayload struct {
	RoomID   string               `json:"roomId"`
	PlayerID string               `json:"playerId"`
	Players  []*models.RoomPlayer `json:"players"`
}

type RequestStateSyncPayload struct {
	RequesterID string `json:"requesterId"`
	RoomID      string `json:"roomId"`
}

// StateSyncBroadcast is the rebroadcast form of state_sync. Every member
// receives it; only TargetID should apply it.
type StateSyncBroadcast struct {
	State    json.RawMessage `json:"state"`
	TargetID string          `json:"targetId"`
}
