// Package protocol defines the websocket events exchanged between clients
// and the room server. Event names and payload keys are the compatibility
// contract with existing clients.
package protocol

// EventType names an event in the envelope's type field
type EventType string

// Client to server
const (
	EventIdentify    EventType = "identify"
	EventCreateRoom  EventType = "create_room"
	EventFindMatch   EventType = "find_match"
	EventJoinRoom    EventType = "join_room"
	EventLeaveRoom   EventType = "leave_room"
	EventPlayerReady EventType = "player_ready"
	EventStartGame   EventType = "start_game"
	EventGameAction  EventType = "game_action"
	EventRejoinGame  EventType = "rejoin_game"
	EventStateSync   EventType = "state_sync"
)

// Server to client
const (
	EventIdentified       EventType = "identified"
	EventRejoinPrompt     EventType = "rejoin_prompt"
	EventError            EventType = "error"
	EventRoomCreated      EventType = "room_created"
	EventPlayerJoined     EventType = "player_joined"
	EventGameStarted      EventType = "game_started"
	EventPlayerLeft       EventType = "player_left"
	EventPlayerUpdate     EventType = "player_update"
	EventReadyToStart     EventType = "ready_to_start"
	EventPlayerRejoined   EventType = "player_rejoined"
	EventRequestStateSync EventType = "request_state_sync"
)

var clientEvents = map[EventType]bool{
	EventIdentify:    true,
	EventCreateRoom:  true,
	EventFindMatch:   true,
	EventJoinRoom:    true,
	EventLeaveRoom:   true,
	EventPlayerReady: true,
	EventStartGame:   true,
	EventGameAction:  true,
	EventRejoinGame:  true,
	EventStateSync:   true,
}

// IsClientEvent reports whether clients are allowed to send t
func IsClientEvent(t EventType) bool {
	return clientEvents[t]
}
