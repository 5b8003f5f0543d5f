// Package replica runs a client's own copy of the turn machine in an
// online game. Local actions are applied and turned into relayable
// actions; relayed actions from peers are applied to the same machine so
// every client converges on the same dice and totals.
//
// State sync is best effort. A replica answers request_state_sync with its
// snapshot and restores a state_sync addressed to it, with no attempt to
// arbitrate between peers that disagree.
package replica

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/KirkDiggler/hotdice/internal/dice"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/protocol"
	"github.com/KirkDiggler/hotdice/internal/services/turn"
	"go.uber.org/zap"
)

// Config holds what a replica needs to join a started game
type Config struct {
	// LocalPlayerID is the identity of the client running this replica
	LocalPlayerID string

	// Players in seat order as announced by game_started
	Players []models.Player

	// ScoreGoal as announced by game_started
	ScoreGoal int

	// DiceRoller drives local rolls; a time seeded roller when nil
	DiceRoller dice.Roller

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Replica is one client's view of a game. It is not safe for concurrent use.
type Replica struct {
	local   string
	machine *turn.Machine
	roller  *relayRoller
	logger  *zap.Logger
}

// relayRoller rolls locally unless a relayed roll has been queued
type relayRoller struct {
	own    dice.Roller
	queued *dice.SequenceRoller
	relay  bool
}

func (r *relayRoller) Roll(sides int) int {
	if r.relay {
		return r.queued.Roll(sides)
	}
	return r.own.Roll(sides)
}

// New creates a replica at the start of the game
func New(cfg *Config) (*Replica, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LocalPlayerID == "" {
		return nil, ErrMissingLocalID
	}
	if !slices.ContainsFunc(cfg.Players, func(p models.Player) bool { return p.ID == cfg.LocalPlayerID }) {
		return nil, ErrLocalNotSeated
	}

	own := cfg.DiceRoller
	if own == nil {
		own = dice.New(nil)
	}
	roller := &relayRoller{own: own, queued: dice.NewSequence()}

	machine, err := turn.New(&turn.Config{
		Players:    cfg.Players,
		ScoreGoal:  cfg.ScoreGoal,
		DiceRoller: roller,
	})
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Replica{
		local:   cfg.LocalPlayerID,
		machine: machine,
		roller:  roller,
		logger:  logger,
	}, nil
}

// GameState is the derived view for the UI
func (r *Replica) GameState() turn.GameState {
	return r.machine.GameState()
}

// IsMyTurn reports whether the local player is the active player
func (r *Replica) IsMyTurn() bool {
	return r.machine.CurrentPlayer().ID == r.local
}

// ToggleSelection toggles a die locally. ok is false when the die could
// not be toggled, in which case there is nothing to relay.
func (r *Replica) ToggleSelection(index int) (action protocol.Action, ok bool, err error) {
	before := r.machine.Dice()
	r.machine.ToggleSelection(index)
	if slices.Equal(before, r.machine.Dice()) {
		return protocol.Action{}, false, nil
	}

	action, err = protocol.NewAction(protocol.ActionToggle, protocol.TogglePayload{Index: index})
	if err != nil {
		return protocol.Action{}, false, err
	}
	return action, true, nil
}

// Roll rolls locally. ok is false when rolling was not allowed, in which
// case there is nothing to relay.
func (r *Replica) Roll() (action protocol.Action, ok bool, err error) {
	indices := r.machine.Roll()
	if indices == nil {
		return protocol.Action{}, false, nil
	}

	current := r.machine.Dice()
	values := make([]int, len(indices))
	for i, idx := range indices {
		values[i] = current[idx].Value
	}

	action, err = protocol.NewAction(protocol.ActionRoll, protocol.RollPayload{
		Indices: indices,
		Values:  values,
	})
	if err != nil {
		return protocol.Action{}, false, err
	}
	return action, true, nil
}

// Bank banks locally and returns the action to relay. When the bank won
// the game, a game_over action is returned as well. ok is false once the
// game is already over, in which case there is nothing to relay.
func (r *Replica) Bank() (bank protocol.Action, gameOver *protocol.Action, ok bool, err error) {
	if r.machine.GameState().GameOver {
		return protocol.Action{}, nil, false, nil
	}
	r.machine.Bank()

	bank, err = protocol.NewAction(protocol.ActionBank, nil)
	if err != nil {
		return protocol.Action{}, nil, false, err
	}

	winner, won := r.machine.Winner()
	if !won {
		return bank, nil, true, nil
	}

	over, err := protocol.NewAction(protocol.ActionGameOver, protocol.GameOverPayload{
		WinnerName:   winner.Name,
		FinalPlayers: r.machine.Players(),
	})
	if err != nil {
		return protocol.Action{}, nil, false, err
	}
	return bank, &over, true, nil
}

// Apply replays an action relayed from senderID. Unknown actions are
// ignored so newer clients can add actions without breaking older ones.
func (r *Replica) Apply(senderID string, action protocol.Action) error {
	switch action.Name {
	case protocol.ActionToggle:
		var p protocol.TogglePayload
		if err := action.Decode(&p); err != nil {
			return err
		}
		r.machine.ToggleSelection(p.Index)

	case protocol.ActionRoll:
		var p protocol.RollPayload
		if err := action.Decode(&p); err != nil {
			return err
		}
		return r.applyRoll(senderID, p)

	case protocol.ActionBank:
		r.machine.Bank()

	case protocol.ActionGameOver:
		// the server tears the room down; local state already shows the winner

	default:
		r.logger.Debug("ignoring unknown action",
			zap.String("action", action.Name),
			zap.String("sender_id", senderID))
	}
	return nil
}

func (r *Replica) applyRoll(senderID string, p protocol.RollPayload) error {
	if len(p.Values) != len(p.Indices) {
		return fmt.Errorf("%w: %d values for %d dice", ErrRollMismatch, len(p.Values), len(p.Indices))
	}
	for i, v := range p.Values {
		if v < 1 || v > dice.Sides {
			return fmt.Errorf("%w: die %d has value %d", ErrRollMismatch, p.Indices[i], v)
		}
	}

	r.roller.queued.Load(p.Values...)
	r.roller.relay = true
	indices := r.machine.Roll()
	r.roller.relay = false

	if !slices.Equal(indices, p.Indices) {
		r.logger.Warn("relayed roll diverged from local state",
			zap.String("sender_id", senderID),
			zap.Ints("expected", p.Indices),
			zap.Ints("rolled", indices))
		return fmt.Errorf("%w: rolled %v, sender rolled %v", ErrRollMismatch, indices, p.Indices)
	}
	return nil
}

// HandleSyncRequest answers a request_state_sync. ok is false when the
// request came from this replica's own player.
func (r *Replica) HandleSyncRequest(req protocol.RequestStateSyncPayload) (payload *protocol.StateSyncPayload, ok bool, err error) {
	if req.RequesterID == r.local {
		return nil, false, nil
	}

	state, err := json.Marshal(r.machine.Snapshot())
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return &protocol.StateSyncPayload{
		TargetID: req.RequesterID,
		RoomID:   req.RoomID,
		State:    state,
	}, true, nil
}

// HandleStateSync restores a broadcast snapshot when this replica is the
// target. applied is false for snapshots addressed to someone else.
func (r *Replica) HandleStateSync(msg protocol.StateSyncBroadcast) (applied bool, err error) {
	if msg.TargetID != r.local {
		return false, nil
	}

	var snap turn.Snapshot
	if err := json.Unmarshal(msg.State, &snap); err != nil {
		return false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := r.machine.Restore(snap); err != nil {
		return false, err
	}
	return true, nil
}
