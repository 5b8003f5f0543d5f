package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/hotdice/internal/common/uuid UUID

// UUID mints opaque identifiers for users, sessions and game records
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random (v4) UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// IsValid reports whether id parses as a UUID. Identities presented by
// clients are checked with this before touching the identity store.
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
