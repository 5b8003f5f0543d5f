package game_record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hotdice/internal/common/clock"
	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameRecordKeyPrefix = "game_record:"
	finishedRecordsKey  = "game_records:finished"

	defaultRecentLimit = 10
)

var (
	// ErrGameRecordNotFound is returned when a record is not found
	ErrGameRecordNotFound = errors.New("game record not found")

	// ErrGameRecordFinished is returned when ending a record twice
	ErrGameRecordFinished = errors.New("game record already finished")
)

// Config holds configuration for the Redis game record repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps start and end times
	Clock clock.Clock

	// UUID generates record IDs
	UUID uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed game record repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	repo := &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
		uuid:   cfg.UUID,
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}
	if repo.uuid == nil {
		repo.uuid = uuid.New()
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return repo, nil
}

// CreateGameRecord stores a new in-progress record
func (r *redisRepository) CreateGameRecord(ctx context.Context, input *CreateGameRecordInput) (*CreateGameRecordOutput, error) {
	if input == nil || len(input.Players) == 0 {
		return nil, errors.New("input and players cannot be empty")
	}

	record := &models.GameRecord{
		ID:        r.uuid.NewUUID(),
		Players:   append([]models.RecordPlayer(nil), input.Players...),
		StartedAt: r.clock.Now(),
	}

	if err := r.save(ctx, record); err != nil {
		return nil, err
	}

	return &CreateGameRecordOutput{
		GameRecord: record,
	}, nil
}

// EndGameRecord stamps the winner and final totals on an open record
func (r *redisRepository) EndGameRecord(ctx context.Context, input *EndGameRecordInput) error {
	if input == nil || input.GameRecordID == "" {
		return errors.New("input and game record ID cannot be empty")
	}

	record, err := r.GetGameRecord(ctx, &GetGameRecordInput{
		GameRecordID: input.GameRecordID,
	})
	if err != nil {
		return err
	}

	if record.IsFinished() {
		return ErrGameRecordFinished
	}

	endedAt := r.clock.Now()
	record.WinnerName = input.WinnerName
	record.EndedAt = &endedAt
	if len(input.FinalPlayers) > 0 {
		record.Players = append([]models.RecordPlayer(nil), input.FinalPlayers...)
	}

	return r.save(ctx, record)
}

// GetGameRecord retrieves a record by ID from Redis
func (r *redisRepository) GetGameRecord(ctx context.Context, input *GetGameRecordInput) (*models.GameRecord, error) {
	if input == nil || input.GameRecordID == "" {
		return nil, errors.New("input and game record ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, gameRecordKey(input.GameRecordID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameRecordNotFound
		}
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	var record models.GameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

// GetRecentGameRecords reads the finished index newest first
func (r *redisRepository) GetRecentGameRecords(ctx context.Context, input *GetRecentGameRecordsInput) (*GetRecentGameRecordsOutput, error) {
	limit := defaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	ids, err := r.client.ZRevRange(ctx, finishedRecordsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game records: %w", err)
	}

	records := make([]*models.GameRecord, 0, len(ids))
	for _, id := range ids {
		record, err := r.GetGameRecord(ctx, &GetGameRecordInput{
			GameRecordID: id,
		})
		if err != nil {
			if errors.Is(err, ErrGameRecordNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}

	return &GetRecentGameRecordsOutput{
		GameRecords: records,
	}, nil
}

func (r *redisRepository) save(ctx context.Context, record *models.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()
	pipe.Set(ctx, gameRecordKey(record.ID), recordJSON, 0)

	// Finished records are indexed by end time for the recent list
	if record.EndedAt != nil {
		pipe.ZAdd(ctx, finishedRecordsKey, redis.Z{
			Score:  float64(record.EndedAt.UnixNano()),
			Member: record.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}

func gameRecordKey(id string) string {
	return fmt.Sprintf("%s%s", gameRecordKeyPrefix, id)
}
