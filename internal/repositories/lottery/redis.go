package lottery

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
)

const (
	// Key patterns: lotteryEntries:{entryID}, lotteryEntries:draw:{drawDate}
	entryKeyPrefix = "lotteryEntries:"
	drawKeyPrefix  = "lotteryEntries:draw:"

	errEntryNil     = "entry cannot be nil"
	errEntryIDEmpty = "entry ID cannot be empty"
)

func drawKey(drawDate int64) string {
	return drawKeyPrefix + strconv.FormatInt(drawDate, 10)
}

// Config holds the configuration for the Redis lottery repository.
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

// NewRedis creates a new Redis-backed lottery repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}
	if input.Entry.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}
	if input.Entry.DiscordUsername == "" {
		return nil, errors.InvalidArgument("entry discord username cannot be empty")
	}
	if input.Entry.NumberOfTickets < 1 {
		return nil, errors.InvalidArgument("entry needs at least one ticket")
	}

	key := entryKeyPrefix + input.Entry.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check entry existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("lottery entry %s already exists", input.Entry.ID)
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal entry")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, drawKey(input.Entry.DrawDate), input.Entry.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create entry")
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}

	result, err := r.client.Get(ctx, entryKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("lottery entry %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get entry")
	}

	var entry community.LotteryEntry
	if err := json.Unmarshal([]byte(result), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entry")
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}
	if input.Entry.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}

	// Ensure the document exists before replacing it. The draw index is
	// keyed by draw date, which never changes after creation.
	if _, err := r.Get(ctx, GetInput{ID: input.Entry.ID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal entry")
	}

	if err := r.client.Set(ctx, entryKeyPrefix+input.Entry.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save entry")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) ListByDraw(ctx context.Context, input ListByDrawInput) (*ListByDrawOutput, error) {
	if input.DrawDate == 0 {
		return nil, errors.InvalidArgument("draw date is required")
	}

	ids, err := r.client.SMembers(ctx, drawKey(input.DrawDate)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read draw index")
	}

	entries := make([]*community.LotteryEntry, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, clean it up.
				slog.WarnContext(ctx, "removing stale lottery index entry", "entry_id", id)
				r.client.SRem(ctx, drawKey(input.DrawDate), id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get entry %s", id)
		}
		entries = append(entries, got.Entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt < entries[j].CreatedAt
	})

	return &ListByDrawOutput{Entries: entries}, nil
}
