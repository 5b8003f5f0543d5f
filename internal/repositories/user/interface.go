package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hotdice/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/hotdice/internal/models"
)

// Repository is the identity store consulted when a connection identifies
type Repository interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// CreateUser persists a freshly minted identity
	CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error)

	// TouchUser bumps the last seen time of an existing user
	TouchUser(ctx context.Context, input *TouchUserInput) error

	// CountUsers returns how many identities have been issued
	CountUsers(ctx context.Context, input *CountUsersInput) (*CountUsersOutput, error)
}
