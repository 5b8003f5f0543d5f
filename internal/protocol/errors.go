package protocol

// ProtocolError is a malformed frame or payload
type ProtocolError string

// Error implements the error interface
func (e ProtocolError) Error() string {
	return string(e)
}

const (
	ErrMissingType   ProtocolError = "message type is required"
	ErrUnknownType   ProtocolError = "unknown message type"
	ErrNotGameOver   ProtocolError = "action is not game_over"
	ErrMissingAction ProtocolError = "action is required"
	ErrMalformed     ProtocolError = "malformed message"
)
