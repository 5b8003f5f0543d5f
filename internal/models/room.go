package models

// MaxRoomPlayers caps how many seats a manual room can hold
const MaxRoomPlayers = 6

// RandomRoomPlayers is the fixed size of a matchmaking room
const RandomRoomPlayers = 2

// DefaultScoreGoal is the target score when a room does not choose one
const DefaultScoreGoal = 10000

// RoomPlayer is a seat in a room. Seat order is join order and is frozen
// once the game starts; seat 0 is the host.
type RoomPlayer struct {
	// UserID is the persistent identity sitting in this seat
	UserID string `json:"id"`

	// Name is the display name chosen when joining
	Name string `json:"name"`

	// Ready is the lobby ready flag
	Ready bool `json:"ready"`

	// Disconnected is set when the player dropped from a live game; the
	// seat is kept so they can rejoin
	Disconnected bool `json:"disconnected"`
}

// Room is a lobby or live game. It carries membership only, never dice or
// scores.
type Room struct {
	// ID is the short shareable room code
	ID string `json:"roomId"`

	// Players in seat order
	Players []*RoomPlayer `json:"players"`

	// GameStarted is set once the host (or matchmaking) starts the game
	GameStarted bool `json:"gameStarted"`

	// GameRecordID identifies the persisted game record, empty until start
	// or when persistence failed
	GameRecordID string `json:"gameRecordId,omitempty"`

	// ScoreGoal is the total that wins the game
	ScoreGoal int `json:"scoreGoal"`

	// IsRandom marks matchmaking rooms, which cannot be joined by code
	IsRandom bool `json:"isRandom"`
}

// Seat returns the seat index of userID or -1
func (r *Room) Seat(userID string) int {
	for i, p := range r.Players {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// Player returns the seat held by userID, or nil
func (r *Room) Player(userID string) *RoomPlayer {
	if i := r.Seat(userID); i >= 0 {
		return r.Players[i]
	}
	return nil
}

// IsHost reports whether userID holds seat 0
func (r *Room) IsHost(userID string) bool {
	return len(r.Players) > 0 && r.Players[0].UserID == userID
}

// Capacity is the number of seats the room can hold
func (r *Room) Capacity() int {
	if r.IsRandom {
		return RandomRoomPlayers
	}
	return MaxRoomPlayers
}

// IsFull reports whether every seat is taken
func (r *Room) IsFull() bool {
	return len(r.Players) >= r.Capacity()
}

// AllReady reports whether every seated player is ready
func (r *Room) AllReady() bool {
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return len(r.Players) > 0
}

// ConnectedCount counts seats whose player is not disconnected,
// optionally ignoring one identity
func (r *Room) ConnectedCount(exceptUserID string) int {
	n := 0
	for _, p := range r.Players {
		if p.Disconnected || p.UserID == exceptUserID {
			continue
		}
		n++
	}
	return n
}

// RemovePlayer drops the seat held by userID, shifting later seats down
func (r *Room) RemovePlayer(userID string) bool {
	i := r.Seat(userID)
	if i < 0 {
		return false
	}
	r.Players = append(r.Players[:i], r.Players[i+1:]...)
	return true
}

// Clone returns a deep copy safe to hand to another goroutine
func (r *Room) Clone() *Room {
	c := *r
	c.Players = make([]*RoomPlayer, len(r.Players))
	for i, p := range r.Players {
		cp := *p
		c.Players[i] = &cp
	}
	return &c
}
