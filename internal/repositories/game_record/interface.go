package game_record

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hotdice/internal/repositories/game_record Repository

import (
	"context"

	"github.com/KirkDiggler/hotdice/internal/models"
)

// Repository persists one record per started game
type Repository interface {
	// CreateGameRecord opens a record when a room starts its game
	CreateGameRecord(ctx context.Context, input *CreateGameRecordInput) (*CreateGameRecordOutput, error)

	// EndGameRecord closes a record with the winner and final totals
	EndGameRecord(ctx context.Context, input *EndGameRecordInput) error

	// GetGameRecord retrieves a record by ID
	GetGameRecord(ctx context.Context, input *GetGameRecordInput) (*models.GameRecord, error)

	// GetRecentGameRecords lists finished records, newest first
	GetRecentGameRecords(ctx context.Context, input *GetRecentGameRecordsInput) (*GetRecentGameRecordsOutput, error)
}
