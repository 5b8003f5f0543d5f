package ws

// HubError is a custom error type for hub errors
type HubError string

// Error implements the error interface
func (e HubError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    HubError = "config cannot be nil"
	ErrNilMessaging HubError = "messaging service cannot be nil"
	ErrNilUUID      HubError = "UUID generator cannot be nil"
	ErrHubStopped   HubError = "hub is not running"
)
