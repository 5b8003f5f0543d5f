package turn

import (
	"testing"

	"github.com/KirkDiggler/hotdice/internal/dice"
	diceMocks "github.com/KirkDiggler/hotdice/internal/dice/mocks"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MachineTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller

	players []models.Player
	goal    int
	roller  *dice.SequenceRoller
}

func (s *MachineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)

	s.players = []models.Player{
		{ID: "user-a", Name: "Alice"},
		{ID: "user-b", Name: "Bob"},
	}
	s.goal = models.DefaultScoreGoal
}

func (s *MachineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// newMachine builds a machine whose rolls replay faces in order
func (s *MachineTestSuite) newMachine(faces ...int) *Machine {
	s.roller = dice.NewSequence(faces...)
	m, err := New(&Config{
		Players:    s.players,
		ScoreGoal:  s.goal,
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)
	return m
}

func (s *MachineTestSuite) values(m *Machine) []int {
	out := make([]int, 0, models.DiceCount)
	for _, d := range m.Dice() {
		out = append(out, d.Value)
	}
	return out
}

func (s *MachineTestSuite) assertPartition(m *Machine) {
	locked, selected, free := 0, 0, 0
	for i, d := range m.Dice() {
		s.False(d.Selected && d.Locked, "die %d selected and locked", i)
		switch {
		case d.Locked:
			locked++
		case d.Selected:
			selected++
		default:
			free++
		}
		s.GreaterOrEqual(d.Value, 1)
		s.LessOrEqual(d.Value, 6)
	}
	s.Equal(models.DiceCount, locked+selected+free)
}

func (s *MachineTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Players: s.players})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: dice.NewSequence()})
	s.ErrorIs(err, ErrNoPlayers)

	m, err := New(&Config{Players: s.players, DiceRoller: dice.NewSequence()})
	s.Require().NoError(err)
	s.Equal(models.DefaultScoreGoal, m.ScoreGoal())
}

func (s *MachineTestSuite) TestNew_CopiesPlayers() {
	m := s.newMachine()
	s.players[0].Name = "Mallory"
	s.Equal("Alice", m.CurrentPlayer().Name)
}

func (s *MachineTestSuite) TestStartOfTurn() {
	m := s.newMachine()

	state := m.GameState()
	s.Equal(0, state.CurrentPlayerIndex)
	s.Equal(0, state.TurnScore)
	s.True(state.CanRoll)
	s.True(state.CanBank)
	s.False(state.IsFarkle)
	s.False(state.GameOver)
	s.Len(state.Dice, models.DiceCount)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestToggleSelection_BeforeFirstRollIsNoOp() {
	m := s.newMachine()
	m.ToggleSelection(0)

	s.False(m.Dice()[0].Selected)
	s.True(m.GameState().CanRoll)
}

func (s *MachineTestSuite) TestToggleSelection_OutOfRange() {
	m := s.newMachine(1, 2, 3, 4, 6, 6)
	m.Roll()

	before := m.Dice()
	m.ToggleSelection(-1)
	m.ToggleSelection(models.DiceCount)
	s.Equal(before, m.Dice())
}

func (s *MachineTestSuite) TestRoll_FirstRollRollsEverything() {
	m := s.newMachine(1, 2, 3, 4, 6, 6)

	rolled := m.Roll()

	s.Equal([]int{0, 1, 2, 3, 4, 5}, rolled)
	s.Equal([]int{1, 2, 3, 4, 6, 6}, s.values(m))
	state := m.GameState()
	s.False(state.IsFarkle)
	s.Equal(0, state.TurnScore)
	s.False(state.CanRoll, "must select a scoring die before rolling again")
	s.True(state.CanBank)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestSelection_DrivesTurnScoreAndCanRoll() {
	m := s.newMachine(1, 2, 3, 4, 6, 6)
	m.Roll()

	m.ToggleSelection(0)
	state := m.GameState()
	s.Equal(100, state.TurnScore)
	s.True(state.CanRoll)

	// the 2 is not consumed by any combination
	m.ToggleSelection(1)
	state = m.GameState()
	s.Equal(100, state.TurnScore)
	s.False(state.CanRoll)
	s.Nil(m.Roll())
	s.Equal(0, s.roller.Remaining())

	m.ToggleSelection(1)
	s.True(m.GameState().CanRoll)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestRoll_LocksSelection() {
	m := s.newMachine(
		1, 2, 3, 4, 6, 6,
		5, 2, 3, 4, 6,
	)
	m.Roll()
	m.ToggleSelection(0)

	rolled := m.Roll()

	s.Equal([]int{1, 2, 3, 4, 5}, rolled)
	dice := m.Dice()
	s.True(dice[0].Locked)
	s.False(dice[0].Selected)
	s.Equal(1, dice[0].Value)
	s.Equal([]int{1, 5, 2, 3, 4, 6}, s.values(m))

	state := m.GameState()
	s.False(state.IsFarkle)
	s.Equal(100, state.TurnScore)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestToggleSelection_LockedDieIsNoOp() {
	m := s.newMachine(
		1, 2, 3, 4, 6, 6,
		5, 2, 3, 4, 6,
	)
	m.Roll()
	m.ToggleSelection(0)
	m.Roll()

	m.ToggleSelection(0)
	s.False(m.Dice()[0].Selected)
	s.True(m.Dice()[0].Locked)
}

func (s *MachineTestSuite) TestRoll_LockedDiceKeepTheirValues() {
	m := s.newMachine(
		1, 5, 2, 3, 4, 4,
		1, 2, 3, 6,
		1, 2, 6,
	)
	m.Roll()
	m.ToggleSelection(0)
	m.ToggleSelection(1)
	m.Roll()
	m.ToggleSelection(2)
	m.Roll()

	dice := m.Dice()
	s.Equal(1, dice[0].Value)
	s.Equal(5, dice[1].Value)
	s.Equal(1, dice[2].Value)
	s.True(dice[0].Locked)
	s.True(dice[1].Locked)
	s.True(dice[2].Locked)
	s.Equal(250, m.GameState().TurnScore)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestRoll_FarkleForfeitsTurnScore() {
	m := s.newMachine(
		1, 2, 3, 4, 6, 6,
		2, 3, 4, 6, 6,
	)
	m.Roll()
	m.ToggleSelection(0)

	rolled := m.Roll()

	s.Len(rolled, 5)
	state := m.GameState()
	s.True(state.IsFarkle)
	s.Equal(0, state.TurnScore)
	s.False(state.CanRoll)
	s.False(state.CanBank)
	s.Nil(m.Roll())
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestRoll_FarkleOnOpeningRoll() {
	m := s.newMachine(2, 3, 4, 6, 6, 2)

	m.Roll()

	state := m.GameState()
	s.True(state.IsFarkle)
	s.Equal(0, state.TurnScore)
}

func (s *MachineTestSuite) TestBank_AfterFarklePassesTurnWithNothing() {
	m := s.newMachine(
		1, 2, 3, 4, 6, 6,
		2, 3, 4, 6, 6,
	)
	m.Roll()
	m.ToggleSelection(0)
	m.Roll()

	m.Bank()

	state := m.GameState()
	s.Equal(1, state.CurrentPlayerIndex)
	s.False(state.IsFarkle)
	s.True(state.CanRoll)
	s.Equal(0, state.TurnScore)
	s.Equal(0, m.Players()[0].Score)
	for _, d := range m.Dice() {
		s.False(d.Locked)
		s.False(d.Selected)
	}
}

func (s *MachineTestSuite) TestRoll_HotDiceUnlocksAllSix() {
	m := s.newMachine(
		1, 1, 1, 5, 5, 5,
		2, 2, 2, 3, 4, 6,
	)
	m.Roll()
	for i := 0; i < models.DiceCount; i++ {
		m.ToggleSelection(i)
	}
	s.Equal(1500, m.GameState().TurnScore)
	s.True(m.GameState().CanRoll)

	rolled := m.Roll()

	s.Equal([]int{0, 1, 2, 3, 4, 5}, rolled)
	s.Equal([]int{2, 2, 2, 3, 4, 6}, s.values(m))
	for _, d := range m.Dice() {
		s.False(d.Locked)
		s.False(d.Selected)
	}
	state := m.GameState()
	s.False(state.IsFarkle)
	s.Equal(1500, state.TurnScore)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestBank_CreditsAccumulatedPlusSelection() {
	m := s.newMachine(
		1, 2, 3, 4, 6, 6,
		5, 2, 3, 3, 6,
	)
	m.Roll()
	m.ToggleSelection(0)
	m.Roll()
	m.ToggleSelection(1)
	s.Equal(150, m.GameState().TurnScore)

	m.Bank()

	s.Equal(150, m.Players()[0].Score)
	state := m.GameState()
	s.Equal(1, state.CurrentPlayerIndex)
	s.Equal(0, state.TurnScore)
	s.True(state.CanRoll)
	s.assertPartition(m)
}

func (s *MachineTestSuite) TestBank_ZeroScorePassesTurn() {
	m := s.newMachine()

	m.Bank()

	s.Equal(1, m.GameState().CurrentPlayerIndex)
	s.Equal(0, m.Players()[0].Score)
}

func (s *MachineTestSuite) TestBank_AdvancesCircularly() {
	s.players = append(s.players, models.Player{ID: "user-c", Name: "Carol"})
	m := s.newMachine()

	for _, want := range []int{1, 2, 0, 1} {
		m.Bank()
		s.Equal(want, m.GameState().CurrentPlayerIndex)
	}
}

func (s *MachineTestSuite) TestWinner_StopsTheGame() {
	s.goal = 500
	m := s.newMachine(5, 5, 5, 2, 3, 4)
	m.Roll()
	m.ToggleSelection(0)
	m.ToggleSelection(1)
	m.ToggleSelection(2)

	m.Bank()

	winner, ok := m.Winner()
	s.True(ok)
	s.Equal("Alice", winner.Name)
	s.Equal(500, winner.Score)

	state := m.GameState()
	s.True(state.GameOver)
	s.False(state.CanRoll)
	s.False(state.CanBank)
	s.Equal(1, state.CurrentPlayerIndex)

	s.Nil(m.Roll())
	m.Bank()
	s.Equal(1, m.GameState().CurrentPlayerIndex)
}

func (s *MachineTestSuite) TestLeader_TiesGoToLowerSeat() {
	m := s.newMachine()
	s.Equal("Alice", m.Leader().Name)

	_, ok := m.Winner()
	s.False(ok)
}

func (s *MachineTestSuite) TestRoll_UsesInjectedRoller() {
	s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(0)
	s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(7)
	s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(1).Times(4)

	m, err := New(&Config{Players: s.players, DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)

	m.Roll()

	s.Equal([]int{6, 1, 1, 1, 1, 1}, s.values(m))
	s.assertPartition(m)
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineTestSuite))
}
