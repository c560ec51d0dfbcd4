package poll

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
)

const (
	// Key patterns: polls:{pollID}, polls:index
	pollKeyPrefix = "polls:"
	indexKey      = "polls:index"

	errPollNil     = "poll cannot be nil"
	errPollIDEmpty = "poll ID cannot be empty"
)

// Config holds the configuration for the Redis poll repository.
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed poll repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Poll == nil {
		return nil, errors.InvalidArgument(errPollNil)
	}
	if input.Poll.ID == "" {
		return nil, errors.InvalidArgument(errPollIDEmpty)
	}
	if input.Poll.Title == "" {
		return nil, errors.InvalidArgument("poll title cannot be empty")
	}

	key := pollKeyPrefix + input.Poll.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check poll existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("poll %s already exists", input.Poll.ID)
	}

	data, err := json.Marshal(input.Poll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal poll")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, input.Poll.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create poll")
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPollIDEmpty)
	}

	result, err := r.client.Get(ctx, pollKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("poll %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get poll")
	}

	var p community.Poll
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal poll")
	}

	return &GetOutput{Poll: &p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Poll == nil {
		return nil, errors.InvalidArgument(errPollNil)
	}
	if input.Poll.ID == "" {
		return nil, errors.InvalidArgument(errPollIDEmpty)
	}

	// Ensure the document exists before replacing it.
	if _, err := r.Get(ctx, GetInput{ID: input.Poll.ID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Poll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal poll")
	}

	if err := r.client.Set(ctx, pollKeyPrefix+input.Poll.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save poll")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPollIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, pollKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete poll")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read poll index")
	}

	polls := make([]*community.Poll, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, clean it up.
				slog.WarnContext(ctx, "removing stale poll index entry", "poll_id", id)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get poll %s", id)
		}
		polls = append(polls, got.Poll)
	}

	sort.Slice(polls, func(i, j int) bool {
		return polls[i].CreatedAt > polls[j].CreatedAt
	})

	return &ListOutput{Polls: polls}, nil
}
