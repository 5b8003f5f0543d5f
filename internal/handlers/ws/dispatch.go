package ws

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"go.uber.org/zap"
)

// handle runs one client frame against the registry. Anything the registry
// rejects is reported to the sender only.
func (h *Hub) handle(ctx context.Context, registry Registry, c *Client, data []byte) {
	env, err := protocol.Parse(data)
	if err == nil {
		err = h.dispatch(ctx, registry, c.id, env)
	}
	if err == nil {
		return
	}

	h.logger.Debug("client event rejected",
		zap.String("session_id", c.id),
		zap.Error(err))
	h.reject(ctx, c.id, err)
}

func (h *Hub) dispatch(ctx context.Context, registry Registry, sessionID string, env *protocol.Envelope) error {
	switch env.Type {
	case protocol.EventIdentify:
		var p protocol.IdentifyPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		_, err := registry.Identify(ctx, &room.IdentifyInput{SessionID: sessionID, UserID: p.UserID})
		return err

	case protocol.EventCreateRoom:
		var p protocol.CreateRoomPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		_, err := registry.CreateRoom(ctx, &room.CreateRoomInput{
			SessionID:  sessionID,
			PlayerName: p.PlayerName,
			ScoreGoal:  p.ScoreGoal,
		})
		return err

	case protocol.EventFindMatch:
		var p protocol.FindMatchPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		_, err := registry.FindMatch(ctx, &room.FindMatchInput{SessionID: sessionID, PlayerName: p.PlayerName})
		return err

	case protocol.EventJoinRoom:
		var p protocol.JoinRoomPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		_, err := registry.JoinRoom(ctx, &room.JoinRoomInput{
			SessionID:  sessionID,
			RoomID:     p.RoomID,
			PlayerName: p.PlayerName,
		})
		return err

	case protocol.EventLeaveRoom:
		return registry.LeaveRoom(ctx, &room.LeaveRoomInput{SessionID: sessionID})

	case protocol.EventPlayerReady:
		var p protocol.PlayerReadyPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		return registry.SetReady(ctx, &room.SetReadyInput{
			SessionID: sessionID,
			RoomID:    p.RoomID,
			IsReady:   p.IsReady,
		})

	case protocol.EventStartGame:
		var p protocol.StartGamePayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		return registry.StartGame(ctx, &room.StartGameInput{SessionID: sessionID, RoomID: p.RoomID})

	case protocol.EventGameAction:
		var p protocol.GameActionPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		return registry.RelayAction(ctx, &room.RelayActionInput{
			SessionID: sessionID,
			RoomID:    p.RoomID,
			Action:    protocol.Action{Name: p.Action, Payload: p.Payload},
		})

	case protocol.EventRejoinGame:
		var p protocol.RejoinGamePayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		return registry.RejoinGame(ctx, &room.RejoinGameInput{SessionID: sessionID, RoomID: p.RoomID})

	case protocol.EventStateSync:
		var p protocol.StateSyncPayload
		if err := env.Decode(&p); err != nil {
			return err
		}
		return registry.StateSync(ctx, &room.StateSyncInput{
			SessionID: sessionID,
			RoomID:    p.RoomID,
			TargetID:  p.TargetID,
			State:     p.State,
		})

	default:
		return fmt.Errorf("%w: %q", protocol.ErrUnknownType, env.Type)
	}
}

// reject sends the friendly text for err to one session
func (h *Hub) reject(ctx context.Context, sessionID string, err error) {
	message := err.Error()
	out, msgErr := h.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: messaging.ErrorTypeOf(err),
	})
	if msgErr != nil {
		h.logger.Warn("failed to render error message", zap.Error(msgErr))
	} else {
		message = out.Message
	}

	h.Emit(sessionID, protocol.Event{
		Type: protocol.EventError,
		Data: protocol.ErrorPayload{Message: message},
	})
}
