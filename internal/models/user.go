package models

import "time"

// User is an identity known to the identity store
type User struct {
	// ID is the persistent identity handed to the client at first identify
	ID string `json:"id"`

	// CreatedAt is when the identity was minted
	CreatedAt time.Time `json:"createdAt"`

	// LastSeenAt is the last successful identify
	LastSeenAt time.Time `json:"lastSeenAt"`
}
