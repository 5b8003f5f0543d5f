package replica

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/hotdice/internal/dice"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/stretchr/testify/suite"
)

type ReplicaTestSuite struct {
	suite.Suite
	players []models.Player
}

func (s *ReplicaTestSuite) SetupTest() {
	s.players = []models.Player{
		{ID: "user-a", Name: "Alice"},
		{ID: "user-b", Name: "Bob"},
	}
}

func (s *ReplicaTestSuite) newReplica(local string, goal int, faces ...int) *Replica {
	r, err := New(&Config{
		LocalPlayerID: local,
		Players:       s.players,
		ScoreGoal:     goal,
		DiceRoller:    dice.NewSequence(faces...),
	})
	s.Require().NoError(err)
	return r
}

// relay hands an action from one replica to another as the server would
func (s *ReplicaTestSuite) relay(to *Replica, senderID string, action protocol.Action) {
	raw, err := json.Marshal(protocol.RelayedActionPayload{Action: action.Name, Payload: action.Payload, SenderID: senderID})
	s.Require().NoError(err)

	var received protocol.RelayedActionPayload
	s.Require().NoError(json.Unmarshal(raw, &received))
	s.Require().NoError(to.Apply(received.SenderID, protocol.Action{Name: received.Action, Payload: received.Payload}))
}

func (s *ReplicaTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Players: s.players})
	s.ErrorIs(err, ErrMissingLocalID)

	_, err = New(&Config{LocalPlayerID: "user-z", Players: s.players})
	s.ErrorIs(err, ErrLocalNotSeated)

	r, err := New(&Config{LocalPlayerID: "user-a", Players: s.players})
	s.Require().NoError(err)
	s.True(r.IsMyTurn())
}

func (s *ReplicaTestSuite) TestRelayedTurnConverges() {
	alice := s.newReplica("user-a", 0,
		1, 2, 3, 4, 6, 6,
		5, 2, 3, 3, 6,
	)
	// bob's own roller must never be used for alice's rolls
	bob := s.newReplica("user-b", 0, 6, 6, 6, 6, 6, 6)
	s.False(bob.IsMyTurn())

	action, ok, err := alice.Roll()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.relay(bob, "user-a", action)
	s.Equal(alice.GameState(), bob.GameState())

	action, ok, err = alice.ToggleSelection(0)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.relay(bob, "user-a", action)

	action, ok, err = alice.Roll()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.relay(bob, "user-a", action)
	s.Equal(alice.GameState(), bob.GameState())

	action, ok, err = alice.ToggleSelection(1)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.relay(bob, "user-a", action)

	bank, over, ok, err := alice.Bank()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Nil(over)
	s.relay(bob, "user-a", bank)

	state := bob.GameState()
	s.Equal(alice.GameState(), state)
	s.Equal(150, state.Players[0].Score)
	s.Equal(1, state.CurrentPlayerIndex)
	s.True(bob.IsMyTurn())
}

func (s *ReplicaTestSuite) TestRoll_NotAllowedHasNothingToRelay() {
	alice := s.newReplica("user-a", 0, 2, 2, 3, 4, 6, 6)

	_, ok, err := alice.Roll()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.True(alice.GameState().IsFarkle)

	_, ok, err = alice.Roll()
	s.NoError(err)
	s.False(ok)
}

func (s *ReplicaTestSuite) TestBank_WinningBankReportsGameOver() {
	alice := s.newReplica("user-a", 500, 5, 5, 5, 2, 3, 4)

	_, _, err := alice.Roll()
	s.Require().NoError(err)
	for i := 0; i < 3; i++ {
		_, ok, err := alice.ToggleSelection(i)
		s.Require().NoError(err)
		s.Require().True(ok)
	}

	_, over, ok, err := alice.Bank()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().NotNil(over)
	s.True(over.IsGameOver())

	result, err := over.GameOver()
	s.Require().NoError(err)
	s.Equal("Alice", result.WinnerName)
	s.Equal([]models.Player{
		{ID: "user-a", Name: "Alice", Score: 500},
		{ID: "user-b", Name: "Bob", Score: 0},
	}, result.FinalPlayers)

	// the room is gone once game_over is relayed; a second tap sends nothing
	bank, over, ok, err := alice.Bank()
	s.NoError(err)
	s.False(ok)
	s.Nil(over)
	s.Empty(bank.Name)
}

func (s *ReplicaTestSuite) TestToggleSelection_NoChangeHasNothingToRelay() {
	alice := s.newReplica("user-a", 0, 1, 5, 2, 3, 4, 6, 3, 3, 4, 6, 5)

	// nothing is selectable before the first roll
	_, ok, err := alice.ToggleSelection(0)
	s.NoError(err)
	s.False(ok)

	_, ok, err = alice.Roll()
	s.Require().NoError(err)
	s.Require().True(ok)

	for _, index := range []int{-1, 6} {
		_, ok, err = alice.ToggleSelection(index)
		s.NoError(err)
		s.False(ok, "index %d", index)
	}

	_, ok, err = alice.ToggleSelection(0)
	s.Require().NoError(err)
	s.Require().True(ok)
	_, ok, err = alice.Roll()
	s.Require().NoError(err)
	s.Require().True(ok)

	// die 0 is locked now
	before := alice.GameState()
	_, ok, err = alice.ToggleSelection(0)
	s.NoError(err)
	s.False(ok)
	s.Equal(before, alice.GameState())
}

func (s *ReplicaTestSuite) TestApply_DivergedRoll() {
	bob := s.newReplica("user-b", 0)

	roll, err := protocol.NewAction(protocol.ActionRoll, protocol.RollPayload{
		Indices: []int{0, 1, 2, 3, 4, 5},
		Values:  []int{1, 2, 3, 4, 6, 6},
	})
	s.Require().NoError(err)
	s.Require().NoError(bob.Apply("user-a", roll))

	// a second full roll without a selection cannot happen on bob's machine
	err = bob.Apply("user-a", roll)
	s.ErrorIs(err, ErrRollMismatch)
}

func (s *ReplicaTestSuite) TestApply_ShortRollIsRejected() {
	bob := s.newReplica("user-b", 0)
	before := bob.GameState()

	roll, err := protocol.NewAction(protocol.ActionRoll, protocol.RollPayload{
		Indices: []int{0, 1, 2, 3, 4, 5},
		Values:  []int{2, 3},
	})
	s.Require().NoError(err)

	err = bob.Apply("user-a", roll)
	s.ErrorIs(err, ErrRollMismatch)
	s.Equal(before, bob.GameState())
}

func (s *ReplicaTestSuite) TestApply_OutOfRangeRollIsRejected() {
	bob := s.newReplica("user-b", 0)
	before := bob.GameState()

	roll, err := protocol.NewAction(protocol.ActionRoll, protocol.RollPayload{
		Indices: []int{0, 1, 2, 3, 4, 5},
		Values:  []int{9, 0, -4, 13, 2, 3},
	})
	s.Require().NoError(err)

	err = bob.Apply("user-a", roll)
	s.ErrorIs(err, ErrRollMismatch)
	s.Equal(before, bob.GameState())
}

func (s *ReplicaTestSuite) TestApply_IgnoresUnknownAndGameOver() {
	bob := s.newReplica("user-b", 0)
	before := bob.GameState()

	s.NoError(bob.Apply("user-a", protocol.Action{Name: "taunt", Payload: json.RawMessage(`{"emoji":"dice"}`)}))
	s.NoError(bob.Apply("user-a", protocol.Action{Name: protocol.ActionGameOver}))

	s.Equal(before, bob.GameState())
}

func (s *ReplicaTestSuite) TestApply_BadPayload() {
	bob := s.newReplica("user-b", 0)

	err := bob.Apply("user-a", protocol.Action{Name: protocol.ActionToggle, Payload: json.RawMessage(`"zero"`)})
	s.Error(err)
}

func (s *ReplicaTestSuite) TestStateSync_OnlyTargetRestores() {
	alice := s.newReplica("user-a", 0,
		1, 2, 3, 4, 6, 6,
	)
	_, _, err := alice.Roll()
	s.Require().NoError(err)
	_, ok, err := alice.ToggleSelection(0)
	s.Require().NoError(err)
	s.Require().True(ok)

	_, ok, err = alice.HandleSyncRequest(protocol.RequestStateSyncPayload{RequesterID: "user-a", RoomID: "ROOM01"})
	s.Require().NoError(err)
	s.False(ok)

	reply, ok, err := alice.HandleSyncRequest(protocol.RequestStateSyncPayload{RequesterID: "user-b", RoomID: "ROOM01"})
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("user-b", reply.TargetID)
	s.Equal("ROOM01", reply.RoomID)

	broadcast := protocol.StateSyncBroadcast{State: reply.State, TargetID: reply.TargetID}

	// alice receives her own broadcast and must ignore it
	applied, err := alice.HandleStateSync(broadcast)
	s.Require().NoError(err)
	s.False(applied)

	rejoined := s.newReplica("user-b", 0)
	applied, err = rejoined.HandleStateSync(broadcast)
	s.Require().NoError(err)
	s.True(applied)
	s.Equal(alice.GameState(), rejoined.GameState())
	s.Equal(100, rejoined.GameState().TurnScore)
}

func (s *ReplicaTestSuite) TestStateSync_BadState() {
	bob := s.newReplica("user-b", 0)
	before := bob.GameState()

	_, err := bob.HandleStateSync(protocol.StateSyncBroadcast{TargetID: "user-b", State: json.RawMessage(`{"dice":[]}`)})
	s.Error(err)

	_, err = bob.HandleStateSync(protocol.StateSyncBroadcast{TargetID: "user-b", State: json.RawMessage(`nope`)})
	s.Error(err)

	s.Equal(before, bob.GameState())
}

func TestReplicaSuite(t *testing.T) {
	suite.Run(t, new(ReplicaTestSuite))
}
