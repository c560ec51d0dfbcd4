package profile

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
)

const (
	// Key pattern: users:{wallet}
	userKeyPrefix  = "users:"
	walletIndexKey = "users:index"
	leaderboardKey = "leaderboard:gold"

	// Error messages
	errProfileNil  = "profile cannot be nil"
	errWalletEmpty = "wallet cannot be empty"
)

// record is the wire document stored at users:{wallet}.
type record struct {
	Password string              `json:"password"`
	GameData *realm.PlayerProfile `json:"gameData"`
}

// Config holds the configuration for the Redis profile repository.
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
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
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed profile repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.Wallet == "" {
		return nil, errors.InvalidArgument(errWalletEmpty)
	}

	key := userKeyPrefix + input.Profile.Wallet

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("profile for wallet %s already exists", input.Profile.Wallet)
	}

	now := r.clock.Now()
	input.Profile.CreatedAt = now.Unix()
	input.Profile.UpdatedAt = now.Unix()

	data, err := json.Marshal(&record{Password: input.Password, GameData: input.Profile})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // save documents never expire
	pipe.SAdd(ctx, walletIndexKey, input.Profile.Wallet)
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(input.Profile.Gold),
		Member: input.Profile.Wallet,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create profile")
	}

	return &CreateOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Wallet == "" {
		return nil, errors.InvalidArgument(errWalletEmpty)
	}

	rec, err := r.getRecord(ctx, input.Wallet)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Profile: rec.GameData, Password: rec.Password}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if input.Profile.Wallet == "" {
		return nil, errors.InvalidArgument(errWalletEmpty)
	}

	// Read the existing record to carry the stored password forward.
	rec, err := r.getRecord(ctx, input.Profile.Wallet)
	if err != nil {
		return nil, err
	}

	input.Profile.UpdatedAt = r.clock.Now().Unix()
	rec.GameData = input.Profile

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	key := userKeyPrefix + input.Profile.Wallet
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(input.Profile.Gold),
		Member: input.Profile.Wallet,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}

	return &SaveOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	wallets, err := r.client.SMembers(ctx, walletIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read wallet index")
	}

	profiles := make([]*realm.PlayerProfile, 0, len(wallets))
	for _, wallet := range wallets {
		rec, err := r.getRecord(ctx, wallet)
		if err != nil {
			// Stale index entries are cleaned up rather than failing
			// the whole listing.
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "profile missing, cleaning up wallet index",
					"wallet", wallet)
				r.client.SRem(ctx, walletIndexKey, wallet)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get profile %s", wallet)
		}
		profiles = append(profiles, rec.GameData)
	}

	return &ListOutput{Profiles: profiles}, nil
}

func (r *redisRepository) Top(ctx context.Context, input TopInput) (*TopOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	wallets, err := r.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read leaderboard")
	}

	profiles := make([]*realm.PlayerProfile, 0, len(wallets))
	for _, wallet := range wallets {
		rec, err := r.getRecord(ctx, wallet)
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.ZRem(ctx, leaderboardKey, wallet)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get profile %s", wallet)
		}
		profiles = append(profiles, rec.GameData)
	}

	return &TopOutput{Profiles: profiles}, nil
}

func (r *redisRepository) getRecord(ctx context.Context, wallet string) (*record, error) {
	key := userKeyPrefix + wallet
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile for wallet %s not found", wallet)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	var rec record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}
	if rec.GameData == nil {
		return nil, errors.Internalf("profile for wallet %s has no game data", wallet)
	}

	return &rec, nil
}
