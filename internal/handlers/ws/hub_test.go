package ws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/handlers/ws/mocks"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/hotdice/internal/services/messaging/mocks"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HubTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	registry  *mocks.MockRegistry
	messaging *messagingMocks.MockService
	hub       *Hub
	ctx       context.Context
}

func (s *HubTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = mocks.NewMockRegistry(s.ctrl)
	s.messaging = messagingMocks.NewMockService(s.ctrl)
	s.ctx = context.Background()

	hub, err := NewHub(&Config{
		Messaging: s.messaging,
		UUID:      uuid.New(),
	})
	s.Require().NoError(err)
	s.hub = hub
}

func (s *HubTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

// attach registers a client without a connection, as the loop would
func (s *HubTestSuite) attach(id string, buffer int) *Client {
	c := &Client{id: id, hub: s.hub, send: make(chan []byte, buffer)}
	s.hub.clients[id] = c
	return c
}

func (s *HubTestSuite) next(c *Client) *protocol.Envelope {
	select {
	case data := <-c.send:
		env, err := protocol.Parse(data)
		s.Require().NoError(err)
		return env
	default:
		s.FailNow("no frame queued")
		return nil
	}
}

func (s *HubTestSuite) expectError(errorType messaging.ErrorType, message string) {
	s.messaging.EXPECT().
		GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{ErrorType: errorType}).
		Return(&messaging.GetErrorMessageOutput{Message: message}, nil)
}

func (s *HubTestSuite) assertError(c *Client, message string) {
	env := s.next(c)
	s.Equal(protocol.EventError, env.Type)

	var p protocol.ErrorPayload
	s.Require().NoError(env.Decode(&p))
	s.Equal(message, p.Message)
}

func (s *HubTestSuite) TestNewHub_Validation() {
	_, err := NewHub(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewHub(&Config{UUID: uuid.New()})
	s.ErrorIs(err, ErrNilMessaging)

	_, err = NewHub(&Config{Messaging: s.messaging})
	s.ErrorIs(err, ErrNilUUID)
}

func (s *HubTestSuite) TestDispatch_Identify() {
	c := s.attach("s-1", 4)

	s.registry.EXPECT().
		Identify(gomock.Any(), &room.IdentifyInput{SessionID: "s-1", UserID: "u-1"}).
		Return(&room.IdentifyOutput{UserID: "u-1"}, nil)

	s.hub.handle(s.ctx, s.registry, c, []byte(`{"type":"identify","data":{"userId":"u-1"}}`))

	s.Empty(c.send)
}

func (s *HubTestSuite) TestDispatch_MapsPayloads() {
	c := s.attach("s-1", 4)

	gomock.InOrder(
		s.registry.EXPECT().CreateRoom(gomock.Any(), &room.CreateRoomInput{
			SessionID: "s-1", PlayerName: "Alice", ScoreGoal: 5000,
		}).Return(&room.CreateRoomOutput{}, nil),
		s.registry.EXPECT().FindMatch(gomock.Any(), &room.FindMatchInput{
			SessionID: "s-1", PlayerName: "Alice",
		}).Return(&room.FindMatchOutput{}, nil),
		s.registry.EXPECT().JoinRoom(gomock.Any(), &room.JoinRoomInput{
			SessionID: "s-1", RoomID: "ABC234", PlayerName: "Alice",
		}).Return(&room.JoinRoomOutput{}, nil),
		s.registry.EXPECT().SetReady(gomock.Any(), &room.SetReadyInput{
			SessionID: "s-1", RoomID: "ABC234", IsReady: true,
		}).Return(nil),
		s.registry.EXPECT().StartGame(gomock.Any(), &room.StartGameInput{
			SessionID: "s-1", RoomID: "ABC234",
		}).Return(nil),
		s.registry.EXPECT().RelayAction(gomock.Any(), &room.RelayActionInput{
			SessionID: "s-1",
			RoomID:    "ABC234",
			Action:    protocol.Action{Name: "roll", Payload: json.RawMessage(`{"indices":[0],"values":[5]}`)},
		}).Return(nil),
		s.registry.EXPECT().RejoinGame(gomock.Any(), &room.RejoinGameInput{
			SessionID: "s-1", RoomID: "ABC234",
		}).Return(nil),
		s.registry.EXPECT().StateSync(gomock.Any(), &room.StateSyncInput{
			SessionID: "s-1",
			RoomID:    "ABC234",
			TargetID:  "u-2",
			State:     json.RawMessage(`{"dice":[]}`),
		}).Return(nil),
		s.registry.EXPECT().LeaveRoom(gomock.Any(), &room.LeaveRoomInput{SessionID: "s-1"}).Return(nil),
	)

	frames := []string{
		`{"type":"create_room","data":{"playerName":"Alice","scoreGoal":5000}}`,
		`{"type":"find_match","data":{"playerName":"Alice"}}`,
		`{"type":"join_room","data":{"roomId":"ABC234","playerName":"Alice"}}`,
		`{"type":"player_ready","data":{"roomId":"ABC234","isReady":true}}`,
		`{"type":"start_game","data":{"roomId":"ABC234"}}`,
		`{"type":"game_action","data":{"roomId":"ABC234","action":"roll","payload":{"indices":[0],"values":[5]}}}`,
		`{"type":"rejoin_game","data":{"roomId":"ABC234"}}`,
		`{"type":"state_sync","data":{"targetId":"u-2","roomId":"ABC234","state":{"dice":[]}}}`,
		`{"type":"leave_room"}`,
	}
	for _, frame := range frames {
		s.hub.handle(s.ctx, s.registry, c, []byte(frame))
	}

	s.Empty(c.send)
}

func (s *HubTestSuite) TestDispatch_RegistryErrorGoesToSender() {
	c := s.attach("s-1", 4)
	other := s.attach("s-2", 4)

	s.registry.EXPECT().
		JoinRoom(gomock.Any(), gomock.Any()).
		Return(nil, room.ErrRoomFull)
	s.expectError(messaging.ErrorTypeRoomFull, "no seats left")

	s.hub.handle(s.ctx, s.registry, c, []byte(`{"type":"join_room","data":{"roomId":"ABC234","playerName":"Bob"}}`))

	s.assertError(c, "no seats left")
	s.Empty(other.send)
}

func (s *HubTestSuite) TestDispatch_MalformedFrame() {
	c := s.attach("s-1", 4)
	s.expectError(messaging.ErrorTypeBadRequest, "bad frame")

	s.hub.handle(s.ctx, s.registry, c, []byte(`not json`))

	s.assertError(c, "bad frame")
}

func (s *HubTestSuite) TestDispatch_MalformedPayload() {
	c := s.attach("s-1", 4)
	s.expectError(messaging.ErrorTypeBadRequest, "bad frame")

	s.hub.handle(s.ctx, s.registry, c, []byte(`{"type":"join_room","data":{"roomId":7}}`))

	s.assertError(c, "bad frame")
}

func (s *HubTestSuite) TestDispatch_ServerEventsAreRejected() {
	c := s.attach("s-1", 4)
	s.expectError(messaging.ErrorTypeBadRequest, "bad frame")

	s.hub.handle(s.ctx, s.registry, c, []byte(`{"type":"game_started","data":{}}`))

	s.assertError(c, "bad frame")
}

func (s *HubTestSuite) TestDispatch_MessagingFailureFallsBackToErrorText() {
	c := s.attach("s-1", 4)

	s.registry.EXPECT().
		StartGame(gomock.Any(), gomock.Any()).
		Return(room.ErrNotHost)
	s.messaging.EXPECT().
		GetErrorMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	s.hub.handle(s.ctx, s.registry, c, []byte(`{"type":"start_game","data":{"roomId":"ABC234"}}`))

	s.assertError(c, room.ErrNotHost.Error())
}

func (s *HubTestSuite) TestEmit_UnknownSessionIsIgnored() {
	s.NotPanics(func() {
		s.hub.Emit("nobody", protocol.Event{Type: protocol.EventIdentified})
	})
}

func (s *HubTestSuite) TestEmit_SlowClientIsDropped() {
	c := s.attach("s-1", 1)

	s.hub.Emit("s-1", protocol.Event{Type: protocol.EventPlayerJoined, Data: protocol.RoomPayload{RoomID: "ABC234"}})
	s.hub.Emit("s-1", protocol.Event{Type: protocol.EventPlayerUpdate, Data: protocol.RoomPayload{RoomID: "ABC234"}})

	s.NotContains(s.hub.clients, "s-1")
	s.Equal(protocol.EventPlayerJoined, s.next(c).Type)
	_, open := <-c.send
	s.False(open)

	// later events for the dropped session go nowhere
	s.hub.Emit("s-1", protocol.Event{Type: protocol.EventPlayerLeft})

	s.registry.EXPECT().Disconnect(gomock.Any(), &room.DisconnectInput{SessionID: "s-1"})
	s.hub.flushDropped(s.ctx, s.registry)
	s.Empty(s.hub.dropped)
}

func (s *HubTestSuite) TestRun_UnregisterAndStats() {
	ctx, cancel := context.WithCancel(s.ctx)
	go s.hub.Run(ctx, s.registry)

	c := &Client{id: "s-1", hub: s.hub, send: make(chan []byte, 1)}
	s.Require().True(s.hub.enqueue(ctx, register{client: c}))
	s.Require().True(s.hub.enqueue(ctx, unregister{client: c}))

	s.registry.EXPECT().Disconnect(gomock.Any(), &room.DisconnectInput{SessionID: "s-1"})
	s.registry.EXPECT().Stats().Return(room.Stats{Rooms: 2, Sessions: 1})

	// the inbox is FIFO, so the stats reply comes after the unregister
	stats, err := s.hub.Stats(ctx)
	s.Require().NoError(err)
	s.Equal(2, stats.Rooms)

	cancel()
	<-s.hub.done

	_, err = s.hub.Stats(s.ctx)
	s.ErrorIs(err, ErrHubStopped)
}

func (s *HubTestSuite) TestRun_ShutdownClosesQueues() {
	ctx, cancel := context.WithCancel(s.ctx)
	go s.hub.Run(ctx, s.registry)

	c := &Client{id: "s-1", hub: s.hub, send: make(chan []byte, 1)}
	s.Require().True(s.hub.enqueue(ctx, register{client: c}))

	s.registry.EXPECT().Stats().Return(room.Stats{})
	_, err := s.hub.Stats(ctx)
	s.Require().NoError(err)

	cancel()
	<-s.hub.done

	_, open := <-c.send
	s.False(open)
}
