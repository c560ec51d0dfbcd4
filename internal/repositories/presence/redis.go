package presence

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
)

const (
	// Key pattern: players:{wallet}
	playerKeyPrefix = "players:"
	playerIndexKey  = "players:index"
)

// Config holds the configuration for the Redis presence repository.
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

// NewRedis creates a new Redis-backed presence repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Publish(ctx context.Context, input PublishInput) (*PublishOutput, error) {
	if input.Wallet == "" {
		return nil, errors.InvalidArgument("wallet cannot be empty")
	}

	p := &realm.Presence{
		Wallet:     input.Wallet,
		Name:       input.Name,
		District:   input.District,
		LastActive: r.clock.Now().Unix(),
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal heartbeat")
	}

	// The TTL doubles as the online classification: an expired key simply
	// stops showing up in listings.
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKeyPrefix+input.Wallet, data, realm.OnlineWindow)
	pipe.SAdd(ctx, playerIndexKey, input.Wallet)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to publish heartbeat")
	}

	return &PublishOutput{Presence: p}, nil
}

func (r *redisRepository) ListOnline(ctx context.Context, input ListOnlineInput) (*ListOnlineOutput, error) {
	wallets, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read player index")
	}

	players := make([]*realm.Presence, 0, len(wallets))
	for _, wallet := range wallets {
		if wallet == input.ExcludeWallet {
			continue
		}
		result, err := r.client.Get(ctx, playerKeyPrefix+wallet).Result()
		if err != nil {
			if err == redis.Nil {
				// Heartbeat expired; drop the index entry.
				r.client.SRem(ctx, playerIndexKey, wallet)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get heartbeat for %s", wallet)
		}

		var p realm.Presence
		if err := json.Unmarshal([]byte(result), &p); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal heartbeat")
		}
		if !p.Online(r.clock.Now()) {
			continue
		}
		players = append(players, &p)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Wallet < players[j].Wallet
	})

	return &ListOnlineOutput{Players: players}, nil
}
