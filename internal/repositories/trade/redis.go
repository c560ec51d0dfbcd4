package trade

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
)

const (
	// Key patterns: trades:{tradeID}, trades:wallet:{wallet}
	tradeKeyPrefix  = "trades:"
	walletKeyPrefix = "trades:wallet:"

	// Error messages
	errOfferNil    = "offer cannot be nil"
	errOfferIDEmpty = "offer ID cannot be empty"
	errWalletEmpty = "wallet cannot be empty"
)

// Config holds the configuration for the Redis trade repository.
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

// NewRedis creates a new Redis-backed trade repository.
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Offer == nil {
		return nil, errors.InvalidArgument(errOfferNil)
	}
	if input.Offer.ID == "" {
		return nil, errors.InvalidArgument(errOfferIDEmpty)
	}
	if input.Offer.From == "" || input.Offer.To == "" {
		return nil, errors.InvalidArgument("offer requires both parties")
	}

	data, err := json.Marshal(input.Offer)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal offer")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tradeKeyPrefix+input.Offer.ID, data, 0)
	pipe.SAdd(ctx, walletKeyPrefix+input.Offer.From, input.Offer.ID)
	pipe.SAdd(ctx, walletKeyPrefix+input.Offer.To, input.Offer.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create offer")
	}

	return &CreateOutput{Offer: input.Offer}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errOfferIDEmpty)
	}

	result, err := r.client.Get(ctx, tradeKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("trade offer %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get offer")
	}

	var offer realm.TradeOffer
	if err := json.Unmarshal([]byte(result), &offer); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal offer")
	}

	return &GetOutput{Offer: &offer}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Offer == nil {
		return nil, errors.InvalidArgument(errOfferNil)
	}
	if input.Offer.ID == "" {
		return nil, errors.InvalidArgument(errOfferIDEmpty)
	}

	// Ensure the document exists before replacing it.
	if _, err := r.Get(ctx, GetInput{ID: input.Offer.ID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Offer)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal offer")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tradeKeyPrefix+input.Offer.ID, data, 0)
	if input.Offer.Status != realm.TradeStatusPending {
		// Resolved offers drop out of both parties' pending indexes.
		pipe.SRem(ctx, walletKeyPrefix+input.Offer.From, input.Offer.ID)
		pipe.SRem(ctx, walletKeyPrefix+input.Offer.To, input.Offer.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update offer")
	}

	return &UpdateOutput{Offer: input.Offer}, nil
}

func (r *redisRepository) ListPending(ctx context.Context, input ListPendingInput) (*ListPendingOutput, error) {
	if input.Wallet == "" {
		return nil, errors.InvalidArgument(errWalletEmpty)
	}

	ids, err := r.client.SMembers(ctx, walletKeyPrefix+input.Wallet).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read trade index")
	}

	offers := make([]*realm.TradeOffer, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, walletKeyPrefix+input.Wallet, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get offer %s", id)
		}
		if got.Offer.Status != realm.TradeStatusPending {
			r.client.SRem(ctx, walletKeyPrefix+input.Wallet, id)
			continue
		}
		offers = append(offers, got.Offer)
	}

	sort.Slice(offers, func(i, j int) bool {
		return offers[i].CreatedAt < offers[j].CreatedAt
	})

	return &ListPendingOutput{Offers: offers}, nil
}
