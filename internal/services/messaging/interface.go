package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hotdice/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetGameOverMessage returns the announcement for a finished game
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
