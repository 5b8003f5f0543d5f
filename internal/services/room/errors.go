package room

// RoomError is a custom error type for registry errors. Every RoomError is
// reported back to the client that caused it.
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          RoomError = "config cannot be nil"
	ErrNilUserRepo        RoomError = "user repository cannot be nil"
	ErrNilGameRecordRepo  RoomError = "game record repository cannot be nil"
	ErrNilNotifier        RoomError = "notifier cannot be nil"
	ErrNilUUIDGenerator   RoomError = "UUID generator cannot be nil"
	ErrNilCodeGenerator   RoomError = "room code generator cannot be nil"
	ErrNotIdentified      RoomError = "session has not identified"
	ErrAlreadyIdentified  RoomError = "session already identified"
	ErrUnknownUser        RoomError = "unknown user"
	ErrMissingPlayerName  RoomError = "player name is required"
	ErrInvalidScoreGoal   RoomError = "score goal must be positive"
	ErrRoomNotFound       RoomError = "room not found"
	ErrRoomFull           RoomError = "room is at maximum capacity"
	ErrGameAlreadyStarted RoomError = "game already started"
	ErrGameNotStarted     RoomError = "game has not started"
	ErrRandomRoom         RoomError = "room is reserved for matchmaking"
	ErrAlreadyInRoom      RoomError = "player already in room"
	ErrNotInRoom          RoomError = "player not in room"
	ErrNotHost            RoomError = "only the host can start the game"
	ErrNotEnoughPlayers   RoomError = "at least two players are required"
	ErrPlayersNotReady    RoomError = "all players must be ready"
	ErrMissingAction      RoomError = "action is required"
	ErrMissingTarget      RoomError = "target player is required"
	ErrRoomCodeExhausted  RoomError = "could not allocate a room code"
)
