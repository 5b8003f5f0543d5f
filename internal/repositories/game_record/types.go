package game_record

import "github.com/KirkDiggler/hotdice/internal/models"

type CreateGameRecordInput struct {
	Players []models.RecordPlayer
}

type CreateGameRecordOutput struct {
	GameRecord *models.GameRecord
}

type EndGameRecordInput struct {
	GameRecordID string
	WinnerName   string
	FinalPlayers []models.RecordPlayer
}

type GetGameRecordInput struct {
	GameRecordID string
}

type GetRecentGameRecordsInput struct {
	// Limit caps the number of records, 10 when zero
	Limit int
}

type GetRecentGameRecordsOutput struct {
	GameRecords []*models.GameRecord
}
