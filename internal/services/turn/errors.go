package turn

// TurnError is a custom error type for turn machine construction and
// restore failures. Game actions never return errors.
type TurnError string

// Error implements the error interface
func (e TurnError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        TurnError = "config cannot be nil"
	ErrNilDiceRoller    TurnError = "dice roller cannot be nil"
	ErrNoPlayers        TurnError = "at least one player is required"
	ErrInvalidSnapshot  TurnError = "invalid snapshot"
	ErrSnapshotDiceSize TurnError = "snapshot must hold exactly six dice"
)
