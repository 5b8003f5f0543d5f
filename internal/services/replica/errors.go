package replica

// ReplicaError is a custom error type for replica errors
type ReplicaError string

// Error implements the error interface
func (e ReplicaError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      ReplicaError = "config cannot be nil"
	ErrMissingLocalID ReplicaError = "local player ID is required"
	ErrLocalNotSeated ReplicaError = "local player is not in the player list"
	ErrRollMismatch   ReplicaError = "relayed roll does not match local dice"
)
