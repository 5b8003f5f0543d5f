package turn

import (
	"fmt"

	"github.com/KirkDiggler/hotdice/internal/models"
)

// Snapshot captures the machine so a peer can hand it to a reconnecting
// client
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Dice:               m.Dice(),
		AccumulatedScore:   m.accumulated,
		IsFarkle:           m.farkle,
		HasRolled:          m.rolled,
		Players:            m.Players(),
		CurrentPlayerIndex: m.current,
		ScoreGoal:          m.scoreGoal,
	}
}

// Restore replaces the machine state with s. The machine is left untouched
// when s is malformed.
func (m *Machine) Restore(s Snapshot) error {
	if len(s.Dice) != models.DiceCount {
		return ErrSnapshotDiceSize
	}
	if len(s.Players) == 0 {
		return ErrNoPlayers
	}
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return fmt.Errorf("%w: current player %d out of range", ErrInvalidSnapshot, s.CurrentPlayerIndex)
	}
	if s.AccumulatedScore < 0 {
		return fmt.Errorf("%w: negative turn score", ErrInvalidSnapshot)
	}
	for i, d := range s.Dice {
		if d.Value < 1 || d.Value > 6 {
			return fmt.Errorf("%w: die %d has value %d", ErrInvalidSnapshot, i, d.Value)
		}
		if d.Selected && d.Locked {
			return fmt.Errorf("%w: die %d is both selected and locked", ErrInvalidSnapshot, i)
		}
	}

	copy(m.dice[:], s.Dice)
	m.accumulated = s.AccumulatedScore
	m.farkle = s.IsFarkle
	m.rolled = s.HasRolled
	m.players = append([]models.Player(nil), s.Players...)
	m.current = s.CurrentPlayerIndex
	if s.ScoreGoal > 0 {
		m.scoreGoal = s.ScoreGoal
	}
	return nil
}
