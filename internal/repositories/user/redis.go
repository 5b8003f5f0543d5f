package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hotdice/internal/common/clock"
	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix = "user:"
	usersKey      = "users"
)

var (
	// ErrUserNotFound is returned when an identity was never issued
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when creating an identity that is taken
	ErrUserExists = errors.New("user already exists")
)

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps created and last seen times
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  c,
	}, nil
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// CreateUser stores a new identity. It fails if the ID is already taken.
func (r *redisRepository) CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	now := r.clock.Now()
	user := &models.User{
		ID:         input.UserID,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	created, err := r.client.SetNX(ctx, userKey(user.ID), userJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if !created {
		return nil, ErrUserExists
	}

	if err := r.client.SAdd(ctx, usersKey, user.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to index user: %w", err)
	}

	return user, nil
}

// TouchUser records that the user identified just now
func (r *redisRepository) TouchUser(ctx context.Context, input *TouchUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	user, err := r.GetUser(ctx, &GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return err
	}

	user.LastSeenAt = r.clock.Now()

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), userJSON, 0)
	pipe.SAdd(ctx, usersKey, user.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to touch user: %w", err)
	}

	return nil
}

// CountUsers returns the size of the user index
func (r *redisRepository) CountUsers(ctx context.Context, input *CountUsersInput) (*CountUsersOutput, error) {
	count, err := r.client.SCard(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return &CountUsersOutput{
		Count: count,
	}, nil
}

func userKey(id string) string {
	return fmt.Sprintf("%s%s", userKeyPrefix, id)
}
