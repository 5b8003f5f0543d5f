package protocol

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    EventType
		wantErr error
	}{
		{name: "identify", raw: `{"type":"identify","data":{"userId":"abc"}}`, want: EventIdentify},
		{name: "no data", raw: `{"type":"leave_room"}`, want: EventLeaveRoom},
		{name: "missing type", raw: `{"data":{}}`, wantErr: ErrMissingType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, err := Parse([]byte(tc.raw))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, env.Type)
		})
	}

	_, err := Parse([]byte(`not json`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEnvelope_Decode(t *testing.T) {
	env, err := Parse([]byte(`{"type":"join_room","data":{"roomId":"ABC234","playerName":"Bob"}}`))
	require.NoError(t, err)

	var p JoinRoomPayload
	require.NoError(t, env.Decode(&p))
	assert.Equal(t, "ABC234", p.RoomID)
	assert.Equal(t, "Bob", p.PlayerName)

	empty := &Envelope{Type: EventLeaveRoom}
	assert.NoError(t, empty.Decode(&p))

	bad := &Envelope{Type: EventJoinRoom, Data: json.RawMessage(`{"roomId":5}`)}
	assert.ErrorIs(t, bad.Decode(&p), ErrMalformed)
}

func TestEvent_EncodeUsesCamelCaseKeys(t *testing.T) {
	raw, err := Event{
		Type: EventGameStarted,
		Data: GameStartedPayload{
			RoomID:             "ABC234",
			Players:            []*models.RoomPlayer{{UserID: "u1", Name: "Alice", Ready: true}},
			CurrentPlayerIndex: 0,
			ScoreGoal:          10000,
			GameRecordID:       "rec-1",
		},
	}.Encode()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "game_started",
		"data": {
			"roomId": "ABC234",
			"players": [{"id": "u1", "name": "Alice", "ready": true, "disconnected": false}],
			"currentPlayerIndex": 0,
			"scoreGoal": 10000,
			"gameRecordId": "rec-1",
			"isRandom": false
		}
	}`, string(raw))
}

func TestEvent_EncodeWithoutData(t *testing.T) {
	raw, err := Event{Type: EventReadyToStart}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ready_to_start"}`, string(raw))
}

func TestIsClientEvent(t *testing.T) {
	assert.True(t, IsClientEvent(EventIdentify))
	assert.True(t, IsClientEvent(EventStateSync))
	assert.False(t, IsClientEvent(EventIdentified))
	assert.False(t, IsClientEvent(EventType("rm -rf")))
}

func TestAction_GameOver(t *testing.T) {
	a := Action{
		Name:    ActionGameOver,
		Payload: json.RawMessage(`{"winnerName":"Alice","finalPlayers":[{"id":"u1","name":"Alice","score":10250},{"id":"u2","name":"Bob","score":7000}]}`),
	}
	require.True(t, a.IsGameOver())

	p, err := a.GameOver()
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.WinnerName)
	assert.Equal(t, []models.Player{
		{ID: "u1", Name: "Alice", Score: 10250},
		{ID: "u2", Name: "Bob", Score: 7000},
	}, p.FinalPlayers)
}

func TestAction_GameOverErrors(t *testing.T) {
	_, err := Action{Name: ActionRoll}.GameOver()
	assert.ErrorIs(t, err, ErrNotGameOver)

	_, err = Action{Name: ActionGameOver, Payload: json.RawMessage(`[1,2]`)}.GameOver()
	assert.Error(t, err)

	p, err := Action{Name: ActionGameOver}.GameOver()
	require.NoError(t, err)
	assert.Empty(t, p.WinnerName)
}

func TestNewAction(t *testing.T) {
	_, err := NewAction("", nil)
	assert.ErrorIs(t, err, ErrMissingAction)

	a, err := NewAction(ActionRoll, RollPayload{Indices: []int{0, 1}, Values: []int{5, 1}})
	require.NoError(t, err)
	assert.False(t, a.IsGameOver())

	var roll RollPayload
	require.NoError(t, a.Decode(&roll))
	assert.Equal(t, []int{5, 1}, roll.Values)

	bank, err := NewAction(ActionBank, nil)
	require.NoError(t, err)
	assert.Nil(t, bank.Payload)
}
