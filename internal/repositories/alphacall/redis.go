package alphacall

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
	// Key patterns: alphaCalls:{callID}, alphaCalls:index
	callKeyPrefix = "alphaCalls:"
	indexKey      = "alphaCalls:index"

	errCallNil     = "call cannot be nil"
	errCallIDEmpty = "call ID cannot be empty"
)

// Config holds the configuration for the Redis alpha call repository.
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

// NewRedis creates a new Redis-backed alpha call repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Call == nil {
		return nil, errors.InvalidArgument(errCallNil)
	}
	if input.Call.ID == "" {
		return nil, errors.InvalidArgument(errCallIDEmpty)
	}
	if input.Call.Wallet == "" {
		return nil, errors.InvalidArgument("call wallet cannot be empty")
	}

	key := callKeyPrefix + input.Call.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check call existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("alpha call %s already exists", input.Call.ID)
	}

	data, err := json.Marshal(input.Call)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal call")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, input.Call.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create call")
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCallIDEmpty)
	}

	result, err := r.client.Get(ctx, callKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("alpha call %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get call")
	}

	var call community.AlphaCall
	if err := json.Unmarshal([]byte(result), &call); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal call")
	}

	return &GetOutput{Call: &call}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Call == nil {
		return nil, errors.InvalidArgument(errCallNil)
	}
	if input.Call.ID == "" {
		return nil, errors.InvalidArgument(errCallIDEmpty)
	}

	// Ensure the document exists before replacing it.
	if _, err := r.Get(ctx, GetInput{ID: input.Call.ID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Call)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal call")
	}

	if err := r.client.Set(ctx, callKeyPrefix+input.Call.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save call")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read call index")
	}

	calls := make([]*community.AlphaCall, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, clean it up.
				slog.WarnContext(ctx, "removing stale alpha call index entry", "call_id", id)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get call %s", id)
		}
		calls = append(calls, got.Call)
	}

	sort.Slice(calls, func(i, j int) bool {
		return calls[i].CreatedAt > calls[j].CreatedAt
	})

	return &ListOutput{Calls: calls}, nil
}
