// Package turn runs one game of hot dice: six dice, the players' banked
// totals and whose turn it is. Every action that is not legal in the
// current state is a silent no-op; callers gate their UI on GameState.
package turn

import (
	"github.com/KirkDiggler/hotdice/internal/dice"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/services/scoring"
)

// Machine is the turn state machine. It is not safe for concurrent use.
type Machine struct {
	dice        [models.DiceCount]models.Die
	accumulated int
	farkle      bool
	rolled      bool
	players     []models.Player
	current     int
	scoreGoal   int
	roller      dice.Roller
}

// New creates a machine at the start of seat 0's turn
func New(cfg *Config) (*Machine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}

	goal := cfg.ScoreGoal
	if goal <= 0 {
		goal = models.DefaultScoreGoal
	}

	m := &Machine{
		players:   append([]models.Player(nil), cfg.Players...),
		scoreGoal: goal,
		roller:    cfg.DiceRoller,
	}
	for i := range m.dice {
		m.dice[i].Value = 1
	}
	return m, nil
}

// GameState derives the current view
func (m *Machine) GameState() GameState {
	over := m.isOver()
	return GameState{
		CurrentPlayerIndex: m.current,
		TurnScore:          m.accumulated + m.selectionScore().Score,
		IsFarkle:           m.farkle,
		CanRoll:            m.canRoll(),
		CanBank:            !m.farkle && !over,
		Dice:               m.Dice(),
		Players:            m.Players(),
		ScoreGoal:          m.scoreGoal,
		GameOver:           over,
	}
}

// Roll locks in the scoring selection and re-rolls every unlocked die. It
// returns the indices that were rolled, or nil when rolling is not allowed.
func (m *Machine) Roll() []int {
	if !m.canRoll() {
		return nil
	}

	if sel := m.selectionScore(); sel.Score > 0 {
		m.accumulated += sel.Score
		for i := range m.dice {
			if m.dice[i].Selected {
				m.dice[i].Selected = false
				m.dice[i].Locked = true
			}
		}
	}

	// hot dice: every die scored, the player gets all six back
	if m.lockedCount() == models.DiceCount {
		for i := range m.dice {
			m.dice[i].Locked = false
		}
	}

	rolled := make([]int, 0, models.DiceCount)
	fresh := make([]int, 0, models.DiceCount)
	for i := range m.dice {
		if m.dice[i].Locked {
			continue
		}
		m.dice[i].Value = face(m.roller.Roll(dice.Sides))
		m.dice[i].Selected = false
		rolled = append(rolled, i)
		fresh = append(fresh, m.dice[i].Value)
	}
	m.rolled = true

	if len(rolled) == 0 {
		return rolled
	}

	if scoring.Score(fresh).Score == 0 {
		m.accumulated = 0
		m.farkle = true
	} else {
		m.farkle = false
	}
	return rolled
}

// ToggleSelection flips the selected flag of an unlocked die. Nothing can
// be selected before the turn's first roll or after the game is over.
func (m *Machine) ToggleSelection(index int) {
	if index < 0 || index >= models.DiceCount {
		return
	}
	if !m.rolled || m.isOver() || m.dice[index].Locked {
		return
	}
	m.dice[index].Selected = !m.dice[index].Selected
}

// Bank credits the turn score to the active player and passes the turn.
// After a farkle it is the forced bank of zero.
func (m *Machine) Bank() {
	if m.isOver() {
		return
	}

	if !m.farkle {
		m.players[m.current].Score += m.accumulated + m.selectionScore().Score
	}

	m.accumulated = 0
	m.farkle = false
	m.rolled = false
	for i := range m.dice {
		m.dice[i].Selected = false
		m.dice[i].Locked = false
	}
	m.current = (m.current + 1) % len(m.players)
}

// Leader returns the player with the highest total; ties go to the lower seat
func (m *Machine) Leader() models.Player {
	best := 0
	for i, p := range m.players {
		if p.Score > m.players[best].Score {
			best = i
		}
	}
	return m.players[best]
}

// Winner returns the leader once someone has reached the score goal
func (m *Machine) Winner() (models.Player, bool) {
	leader := m.Leader()
	return leader, leader.Score >= m.scoreGoal
}

// CurrentPlayer returns the player whose turn it is
func (m *Machine) CurrentPlayer() models.Player {
	return m.players[m.current]
}

// Dice returns a copy of the six dice
func (m *Machine) Dice() []models.Die {
	out := make([]models.Die, models.DiceCount)
	copy(out, m.dice[:])
	return out
}

// Players returns a copy of the players in seat order
func (m *Machine) Players() []models.Player {
	return append([]models.Player(nil), m.players...)
}

// ScoreGoal is the total that wins the game
func (m *Machine) ScoreGoal() int {
	return m.scoreGoal
}

func (m *Machine) canRoll() bool {
	if m.farkle || m.isOver() {
		return false
	}
	sel := m.selectedValues()
	if !m.rolled && len(sel) == 0 && m.lockedCount() == 0 {
		return true
	}
	return scoring.Consumes(sel)
}

func (m *Machine) isOver() bool {
	_, ok := m.Winner()
	return ok
}

func (m *Machine) selectedValues() []int {
	var values []int
	for _, d := range m.dice {
		if d.Selected {
			values = append(values, d.Value)
		}
	}
	return values
}

func (m *Machine) selectionScore() scoring.Result {
	return scoring.Score(m.selectedValues())
}

func (m *Machine) lockedCount() int {
	n := 0
	for _, d := range m.dice {
		if d.Locked {
			n++
		}
	}
	return n
}

// face folds whatever the roller returned into 1..6
func face(v int) int {
	if v >= 1 && v <= dice.Sides {
		return v
	}
	return ((v-1)%dice.Sides+dice.Sides)%dice.Sides + 1
}
