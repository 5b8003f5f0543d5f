// Package room is the registry of lobbies and live games. It tracks who
// sits where and relays game actions between members; it never looks at
// dice or scores.
//
// A Registry is not safe for concurrent use. The websocket hub owns it and
// calls it from a single loop, so events from one connection are handled in
// the order they were read.
package room

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KirkDiggler/hotdice/internal/common/code"
	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/KirkDiggler/hotdice/internal/repositories/user"
	"go.uber.org/zap"
)

// maxCodeAttempts is how many collisions CreateRoom tolerates
const maxCodeAttempts = 16

// session is one identified transport connection
type session struct {
	id     string
	userID string
	// roomID is the room whose broadcasts this session receives
	roomID string
}

// Registry holds every room and identified session of the process
type Registry struct {
	userRepo       user.Repository
	gameRecordRepo game_record.Repository
	notifier       Notifier
	announcer      Announcer
	uuid           uuid.UUID
	codes          code.Generator
	logger         *zap.Logger
	persistTimeout time.Duration

	rooms    map[string]*models.Room
	sessions map[string]*session
	// users maps an identity to the session currently speaking for it
	users map[string]string
	// matchQueue lists open random rooms, oldest first
	matchQueue []string
}

// New creates a registry with no rooms
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.GameRecordRepo == nil {
		return nil, ErrNilGameRecordRepo
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.PersistTimeout
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}

	return &Registry{
		userRepo:       cfg.UserRepo,
		gameRecordRepo: cfg.GameRecordRepo,
		notifier:       cfg.Notifier,
		announcer:      cfg.Announcer,
		uuid:           cfg.UUID,
		codes:          cfg.CodeGenerator,
		logger:         logger,
		persistTimeout: timeout,
		rooms:          make(map[string]*models.Room),
		sessions:       make(map[string]*session),
		users:          make(map[string]string),
	}, nil
}

// Identify binds a session to a persistent identity. A known identity is
// touched, an unknown one rejected, and an empty one minted. If the
// identity holds a seat in a live game that still has someone connected,
// the session is offered a rejoin_prompt.
func (r *Registry) Identify(ctx context.Context, input *IdentifyInput) (*IdentifyOutput, error) {
	if existing, ok := r.sessions[input.SessionID]; ok && existing.userID != "" {
		return nil, ErrAlreadyIdentified
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		userID = r.uuid.NewUUID()
		r.createUser(ctx, userID)
	} else {
		if !uuid.IsValid(userID) {
			return nil, ErrUnknownUser
		}
		if err := r.touchUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	// a second connection for the same identity replaces the first
	if previous, ok := r.users[userID]; ok && previous != input.SessionID {
		r.logger.Info("identity moved to a new session",
			zap.String("user_id", userID),
			zap.String("previous_session_id", previous),
			zap.String("session_id", input.SessionID))
		r.dropSession(ctx, previous)
	}

	r.sessions[input.SessionID] = &session{id: input.SessionID, userID: userID}
	r.users[userID] = input.SessionID

	r.notifier.Emit(input.SessionID, protocol.Event{
		Type: protocol.EventIdentified,
		Data: protocol.IdentifiedPayload{UserID: userID},
	})

	out := &IdentifyOutput{UserID: userID}
	if room := r.rejoinableRoom(userID); room != nil {
		out.RejoinRoomID = room.ID
		r.notifier.Emit(input.SessionID, protocol.Event{
			Type: protocol.EventRejoinPrompt,
			Data: protocol.RejoinPromptPayload{
				RoomID:    room.ID,
				Players:   clonePlayers(room),
				ScoreGoal: room.ScoreGoal,
			},
		})
	}

	return out, nil
}

// CreateRoom opens a manual room with the caller as host
func (r *Registry) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	sess, err := r.identified(input.SessionID)
	if err != nil {
		return nil, err
	}
	name, err := playerName(input.PlayerName)
	if err != nil {
		return nil, err
	}
	if input.ScoreGoal < 0 {
		return nil, ErrInvalidScoreGoal
	}
	goal := input.ScoreGoal
	if goal == 0 {
		goal = models.DefaultScoreGoal
	}

	roomID, err := r.newRoomID()
	if err != nil {
		return nil, err
	}

	r.leaveCurrent(ctx, sess)

	room := &models.Room{
		ID:        roomID,
		Players:   []*models.RoomPlayer{{UserID: sess.userID, Name: name}},
		ScoreGoal: goal,
	}
	r.rooms[room.ID] = room
	sess.roomID = room.ID

	r.logger.Info("room created",
		zap.String("room_id", room.ID),
		zap.String("user_id", sess.userID),
		zap.Int("score_goal", goal))

	r.notifier.Emit(sess.id, protocol.Event{
		Type: protocol.EventRoomCreated,
		Data: roomPayload(room, ""),
	})

	return &CreateRoomOutput{Room: room.Clone()}, nil
}

// FindMatch seats the caller in the oldest open random room, starting the
// game as soon as it is full, or opens a new random room and waits
func (r *Registry) FindMatch(ctx context.Context, input *FindMatchInput) (*FindMatchOutput, error) {
	sess, err := r.identified(input.SessionID)
	if err != nil {
		return nil, err
	}
	name, err := playerName(input.PlayerName)
	if err != nil {
		return nil, err
	}

	r.leaveCurrent(ctx, sess)

	if room := r.openMatch(sess.userID); room != nil {
		room.Players = append(room.Players, &models.RoomPlayer{UserID: sess.userID, Name: name, Ready: true})
		sess.roomID = room.ID

		r.broadcast(room, protocol.Event{
			Type: protocol.EventPlayerJoined,
			Data: roomPayload(room, sess.userID),
		}, "")

		started := false
		if room.IsFull() {
			r.start(ctx, room)
			started = true
		}
		return &FindMatchOutput{Room: room.Clone(), Started: started}, nil
	}

	roomID, err := r.newRoomID()
	if err != nil {
		return nil, err
	}
	room := &models.Room{
		ID:        roomID,
		Players:   []*models.RoomPlayer{{UserID: sess.userID, Name: name, Ready: true}},
		ScoreGoal: models.DefaultScoreGoal,
		IsRandom:  true,
	}
	r.rooms[room.ID] = room
	r.matchQueue = append(r.matchQueue, room.ID)
	sess.roomID = room.ID

	r.logger.Info("waiting for match",
		zap.String("room_id", room.ID),
		zap.String("user_id", sess.userID))

	r.notifier.Emit(sess.id, protocol.Event{
		Type: protocol.EventRoomCreated,
		Data: roomPayload(room, ""),
	})

	return &FindMatchOutput{Room: room.Clone()}, nil
}

// JoinRoom seats the caller in a manual lobby by code. A rejected join
// leaves every room untouched.
func (r *Registry) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	sess, err := r.identified(input.SessionID)
	if err != nil {
		return nil, err
	}
	name, err := playerName(input.PlayerName)
	if err != nil {
		return nil, err
	}

	room, ok := r.rooms[normaliseRoomID(input.RoomID)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	switch {
	case room.IsRandom:
		return nil, ErrRandomRoom
	case room.GameStarted:
		return nil, ErrGameAlreadyStarted
	case room.Seat(sess.userID) >= 0:
		return nil, ErrAlreadyInRoom
	case room.IsFull():
		return nil, ErrRoomFull
	}

	r.leaveCurrent(ctx, sess)

	room.Players = append(room.Players, &models.RoomPlayer{UserID: sess.userID, Name: name})
	sess.roomID = room.ID

	r.broadcast(room, protocol.Event{
		Type: protocol.EventPlayerJoined,
		Data: roomPayload(room, sess.userID),
	}, "")

	return &JoinRoomOutput{Room: room.Clone()}, nil
}

// LeaveRoom takes the caller out of their current room
func (r *Registry) LeaveRoom(ctx context.Context, input *LeaveRoomInput) error {
	sess, err := r.identified(input.SessionID)
	if err != nil {
		return err
	}
	if sess.roomID == "" {
		return ErrNotInRoom
	}

	r.leaveCurrent(ctx, sess)
	return nil
}

// Disconnect forgets a transport session. Its seat is removed from a lobby
// or marked disconnected in a live game.
func (r *Registry) Disconnect(ctx context.Context, input *DisconnectInput) {
	r.dropSession(ctx, input.SessionID)
}

// SetReady flips the caller's ready flag in a lobby
func (r *Registry) SetReady(ctx context.Context, input *SetReadyInput) error {
	sess, room, err := r.member(input.SessionID, input.RoomID)
	if err != nil {
		return err
	}
	if room.GameStarted {
		return ErrGameAlreadyStarted
	}

	room.Player(sess.userID).Ready = input.IsReady

	r.broadcast(room, protocol.Event{
		Type: protocol.EventPlayerUpdate,
		Data: roomPayload(room, sess.userID),
	}, "")
	r.announceReady(room)

	return nil
}

// StartGame is the host starting a manual room
func (r *Registry) StartGame(ctx context.Context, input *StartGameInput) error {
	sess, room, err := r.member(input.SessionID, input.RoomID)
	if err != nil {
		return err
	}
	switch {
	case room.GameStarted:
		return ErrGameAlreadyStarted
	case !room.IsHost(sess.userID):
		return ErrNotHost
	case len(room.Players) < 2:
		return ErrNotEnoughPlayers
	case !room.AllReady():
		return ErrPlayersNotReady
	}

	r.start(ctx, room)
	return nil
}

// RelayAction forwards a game action to every other member. game_over also
// closes the game record, announces the result and destroys the room.
func (r *Registry) RelayAction(ctx context.Context, input *RelayActionInput) error {
	sess, room, err := r.member(input.SessionID, input.RoomID)
	if err != nil {
		return err
	}
	if !room.GameStarted {
		return ErrGameNotStarted
	}
	if input.Action.Name == "" {
		return ErrMissingAction
	}

	r.broadcast(room, protocol.Event{
		Type: protocol.EventGameAction,
		Data: protocol.RelayedActionPayload{
			Action:   input.Action.Name,
			Payload:  input.Action.Payload,
			SenderID: sess.userID,
		},
	}, sess.userID)

	if input.Action.IsGameOver() {
		r.finish(ctx, room, input.Action)
	}

	return nil
}

// RejoinGame puts a returning player back into a live game and asks the
// other members for the current state
func (r *Registry) RejoinGame(ctx context.Context, input *RejoinGameInput) error {
	sess, err := r.identified(input.SessionID)
	if err != nil {
		return err
	}
	room, ok := r.rooms[normaliseRoomID(input.RoomID)]
	if !ok {
		return ErrRoomNotFound
	}
	seat := room.Player(sess.userID)
	if seat == nil {
		return ErrNotInRoom
	}
	if !room.GameStarted {
		return ErrGameNotStarted
	}

	if sess.roomID != room.ID {
		r.leaveCurrent(ctx, sess)
	}
	seat.Disconnected = false
	sess.roomID = room.ID

	r.logger.Info("player rejoined",
		zap.String("room_id", room.ID),
		zap.String("user_id", sess.userID))

	r.broadcast(room, protocol.Event{
		Type: protocol.EventPlayerRejoined,
		Data: protocol.PlayerRejoinedPayload{
			RoomID:   room.ID,
			PlayerID: sess.userID,
			Players:  clonePlayers(room),
		},
	}, "")
	r.broadcast(room, protocol.Event{
		Type: protocol.EventRequestStateSync,
		Data: protocol.RequestStateSyncPayload{
			RequesterID: sess.userID,
			RoomID:      room.ID,
		},
	}, sess.userID)

	return nil
}

// StateSync rebroadcasts a peer's state to the room. Members other than
// the target are expected to ignore it. Nothing is acknowledged or retried.
func (r *Registry) StateSync(ctx context.Context, input *StateSyncInput) error {
	sess, room, err := r.member(input.SessionID, input.RoomID)
	if err != nil {
		return err
	}
	if input.TargetID == "" {
		return ErrMissingTarget
	}

	r.broadcast(room, protocol.Event{
		Type: protocol.EventStateSync,
		Data: protocol.StateSyncBroadcast{
			State:    input.State,
			TargetID: input.TargetID,
		},
	}, sess.userID)

	return nil
}

// Room returns a copy of a room
func (r *Registry) Room(roomID string) (*models.Room, bool) {
	room, ok := r.rooms[normaliseRoomID(roomID)]
	if !ok {
		return nil, false
	}
	return room.Clone(), true
}

// Stats counts rooms, sessions and seated players
func (r *Registry) Stats() Stats {
	stats := Stats{
		Rooms:    len(r.rooms),
		Sessions: len(r.sessions),
	}
	for _, room := range r.rooms {
		stats.Players += len(room.Players)
		switch {
		case room.GameStarted:
			stats.LiveGames++
		case room.IsRandom:
			stats.WaitingMatches++
		default:
			stats.Lobbies++
		}
	}
	return stats
}

func (r *Registry) identified(sessionID string) (*session, error) {
	sess, ok := r.sessions[sessionID]
	if !ok || sess.userID == "" {
		return nil, ErrNotIdentified
	}
	return sess, nil
}

// member resolves a session that must currently be subscribed to roomID
func (r *Registry) member(sessionID, roomID string) (*session, *models.Room, error) {
	sess, err := r.identified(sessionID)
	if err != nil {
		return nil, nil, err
	}
	room, ok := r.rooms[normaliseRoomID(roomID)]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	if sess.roomID != room.ID || room.Seat(sess.userID) < 0 {
		return nil, nil, ErrNotInRoom
	}
	return sess, room, nil
}

// leaveCurrent applies leave semantics to the session's current room:
// hard removal from a lobby, a disconnected mark in a live game
func (r *Registry) leaveCurrent(ctx context.Context, sess *session) {
	room, ok := r.rooms[sess.roomID]
	sess.roomID = ""
	if !ok {
		return
	}

	if !room.GameStarted {
		room.RemovePlayer(sess.userID)
		if len(room.Players) == 0 {
			r.destroy(room)
			return
		}
	} else {
		if seat := room.Player(sess.userID); seat != nil {
			seat.Disconnected = true
		}
		if room.ConnectedCount("") == 0 {
			r.logger.Info("live game abandoned",
				zap.String("room_id", room.ID),
				zap.String("game_record_id", room.GameRecordID))
			r.destroy(room)
			return
		}
	}

	r.broadcast(room, protocol.Event{
		Type: protocol.EventPlayerLeft,
		Data: roomPayload(room, sess.userID),
	}, "")

	if !room.GameStarted {
		r.announceReady(room)
	}
}

// dropSession forgets a session entirely
func (r *Registry) dropSession(ctx context.Context, sessionID string) {
	sess, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	r.leaveCurrent(ctx, sess)
	delete(r.sessions, sessionID)
	if r.users[sess.userID] == sessionID {
		delete(r.users, sess.userID)
	}
}

func (r *Registry) announceReady(room *models.Room) {
	if len(room.Players) < 2 || !room.AllReady() || room.IsRandom {
		return
	}
	r.broadcast(room, protocol.Event{
		Type: protocol.EventReadyToStart,
		Data: protocol.ReadyToStartPayload{RoomID: room.ID},
	}, "")
}

// start freezes the seat order and tells every member the game is on.
// Turn order always begins at seat 0.
func (r *Registry) start(ctx context.Context, room *models.Room) {
	room.GameStarted = true
	r.removeFromQueue(room.ID)

	players := make([]models.RecordPlayer, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, models.RecordPlayer{UserID: p.UserID, Name: p.Name})
	}

	pctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
	out, err := r.gameRecordRepo.CreateGameRecord(pctx, &game_record.CreateGameRecordInput{
		Players: players,
	})
	cancel()
	if err != nil {
		r.logger.Error("failed to create game record",
			zap.String("room_id", room.ID),
			zap.Error(err))
	} else {
		room.GameRecordID = out.GameRecord.ID
	}

	r.logger.Info("game started",
		zap.String("room_id", room.ID),
		zap.Int("players", len(room.Players)),
		zap.Bool("random", room.IsRandom),
		zap.String("game_record_id", room.GameRecordID))

	r.broadcast(room, protocol.Event{
		Type: protocol.EventGameStarted,
		Data: protocol.GameStartedPayload{
			RoomID:             room.ID,
			Players:            clonePlayers(room),
			CurrentPlayerIndex: 0,
			ScoreGoal:          room.ScoreGoal,
			GameRecordID:       room.GameRecordID,
			IsRandom:           room.IsRandom,
		},
	}, "")
}

// finish closes out a game after game_over has been relayed
func (r *Registry) finish(ctx context.Context, room *models.Room, action protocol.Action) {
	result, err := action.GameOver()
	if err != nil {
		r.logger.Warn("unreadable game_over payload",
			zap.String("room_id", room.ID),
			zap.Error(err))
		result = &protocol.GameOverPayload{}
	}

	if room.GameRecordID != "" {
		final := make([]models.RecordPlayer, 0, len(result.FinalPlayers))
		for _, p := range result.FinalPlayers {
			final = append(final, models.RecordPlayer{UserID: p.ID, Name: p.Name, Score: p.Score})
		}

		pctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
		err := r.gameRecordRepo.EndGameRecord(pctx, &game_record.EndGameRecordInput{
			GameRecordID: room.GameRecordID,
			WinnerName:   result.WinnerName,
			FinalPlayers: final,
		})
		cancel()
		if err != nil {
			r.logger.Error("failed to end game record",
				zap.String("room_id", room.ID),
				zap.String("game_record_id", room.GameRecordID),
				zap.Error(err))
		}
	}

	if r.announcer != nil {
		pctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
		err := r.announcer.AnnounceGameOver(pctx, &AnnounceGameOverInput{
			RoomID:       room.ID,
			GameRecordID: room.GameRecordID,
			WinnerName:   result.WinnerName,
			FinalPlayers: result.FinalPlayers,
			ScoreGoal:    room.ScoreGoal,
		})
		cancel()
		if err != nil {
			r.logger.Error("failed to announce game over",
				zap.String("room_id", room.ID),
				zap.Error(err))
		}
	}

	r.logger.Info("game over",
		zap.String("room_id", room.ID),
		zap.String("winner", result.WinnerName))

	r.destroy(room)
}

// destroy deletes a room and unsubscribes everyone still in it
func (r *Registry) destroy(room *models.Room) {
	for _, p := range room.Players {
		if sess := r.subscriber(room, p.UserID); sess != nil {
			sess.roomID = ""
		}
	}
	delete(r.rooms, room.ID)
	r.removeFromQueue(room.ID)
}

// broadcast emits to every subscribed member except exceptUserID
func (r *Registry) broadcast(room *models.Room, event protocol.Event, exceptUserID string) {
	for _, p := range room.Players {
		if p.UserID == exceptUserID {
			continue
		}
		if sess := r.subscriber(room, p.UserID); sess != nil {
			r.notifier.Emit(sess.id, event)
		}
	}
}

// subscriber returns the session of userID if it is following room
func (r *Registry) subscriber(room *models.Room, userID string) *session {
	sess, ok := r.sessions[r.users[userID]]
	if !ok || sess.roomID != room.ID {
		return nil
	}
	return sess
}

func (r *Registry) openMatch(userID string) *models.Room {
	for _, id := range r.matchQueue {
		room, ok := r.rooms[id]
		if !ok || room.GameStarted || room.IsFull() || room.Seat(userID) >= 0 {
			continue
		}
		return room
	}
	return nil
}

func (r *Registry) removeFromQueue(roomID string) {
	for i, id := range r.matchQueue {
		if id == roomID {
			r.matchQueue = append(r.matchQueue[:i], r.matchQueue[i+1:]...)
			return
		}
	}
}

func (r *Registry) rejoinableRoom(userID string) *models.Room {
	for _, room := range r.rooms {
		if room.GameStarted && room.Seat(userID) >= 0 && room.ConnectedCount(userID) > 0 {
			return room
		}
	}
	return nil
}

func (r *Registry) newRoomID() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		id, err := r.codes.NewCode()
		if err != nil {
			r.logger.Error("failed to generate room code", zap.Error(err))
			return "", ErrRoomCodeExhausted
		}
		if _, taken := r.rooms[id]; !taken {
			return id, nil
		}
	}
	return "", ErrRoomCodeExhausted
}

func (r *Registry) createUser(ctx context.Context, userID string) {
	pctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
	defer cancel()
	if _, err := r.userRepo.CreateUser(pctx, &user.CreateUserInput{UserID: userID}); err != nil {
		r.logger.Error("failed to create user",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// touchUser rejects identities the store has never issued. Any other store
// failure is logged and the identity is accepted.
func (r *Registry) touchUser(ctx context.Context, userID string) error {
	pctx, cancel := context.WithTimeout(ctx, r.persistTimeout)
	defer cancel()
	err := r.userRepo.TouchUser(pctx, &user.TouchUserInput{UserID: userID})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, user.ErrUserNotFound):
		return ErrUnknownUser
	default:
		r.logger.Error("failed to touch user",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil
	}
}

func playerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrMissingPlayerName
	}
	return name, nil
}

func normaliseRoomID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func clonePlayers(room *models.Room) []*models.RoomPlayer {
	return room.Clone().Players
}

func roomPayload(room *models.Room, playerID string) protocol.RoomPayload {
	p := protocol.RoomPayload{
		RoomID:    room.ID,
		Players:   clonePlayers(room),
		ScoreGoal: room.ScoreGoal,
		IsRandom:  room.IsRandom,
		PlayerID:  playerID,
	}
	if len(room.Players) > 0 {
		p.HostID = room.Players[0].UserID
	}
	return p
}
