package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cryptoconquerors/realm-api/internal/clients/discord"
	"github.com/cryptoconquerors/realm-api/internal/clients/jupiter"
	"github.com/cryptoconquerors/realm-api/internal/content"
	"github.com/cryptoconquerors/realm-api/internal/orchestrators/community"
	"github.com/cryptoconquerors/realm-api/internal/orchestrators/game"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	"github.com/cryptoconquerors/realm-api/internal/pkg/dice"
	"github.com/cryptoconquerors/realm-api/internal/pkg/idgen"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
	"github.com/cryptoconquerors/realm-api/internal/repositories/alphacall"
	"github.com/cryptoconquerors/realm-api/internal/repositories/lottery"
	"github.com/cryptoconquerors/realm-api/internal/repositories/poll"
	"github.com/cryptoconquerors/realm-api/internal/repositories/presence"
	"github.com/cryptoconquerors/realm-api/internal/repositories/profile"
	"github.com/cryptoconquerors/realm-api/internal/repositories/trade"
)

const httpTimeout = 10 * time.Second

func newGameService() (game.Service, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	profileRepo, err := profile.NewRedis(&profile.Config{Client: client, Clock: clock.New()})
	if err != nil {
		return nil, err
	}
	tradeRepo, err := trade.NewRedis(&trade.Config{Client: client})
	if err != nil {
		return nil, err
	}
	presenceRepo, err := presence.NewRedis(&presence.Config{Client: client, Clock: clock.New()})
	if err != nil {
		return nil, err
	}
	tables, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content tables: %w", err)
	}

	return game.New(&game.Config{
		ProfileRepo:  profileRepo,
		TradeRepo:    tradeRepo,
		PresenceRepo: presenceRepo,
		Content:      tables,
		Roller:       dice.New(),
		Clock:        clock.New(),
		IDGenerator:  idgen.NewUUID("trade"),
	})
}

func newCommunityService(webhookURL string) (community.Service, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	pollRepo, err := poll.NewRedis(&poll.Config{Client: client})
	if err != nil {
		return nil, err
	}
	callRepo, err := alphacall.NewRedis(&alphacall.Config{Client: client})
	if err != nil {
		return nil, err
	}
	lotteryRepo, err := lottery.NewRedis(&lottery.Config{Client: client})
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: httpTimeout}
	price, err := jupiter.New(&jupiter.Config{HTTPClient: httpClient, Clock: clock.New()})
	if err != nil {
		return nil, err
	}

	var announcer discord.Announcer
	if webhookURL != "" {
		announcer, err = discord.NewWebhook(&discord.Config{
			WebhookURL: webhookURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
	}

	return community.New(&community.Config{
		PollRepo:    pollRepo,
		CallRepo:    callRepo,
		LotteryRepo: lotteryRepo,
		Price:       price,
		Announcer:   announcer,
		Clock:       clock.New(),
		Roller:      dice.New(),
		IDGenerator: idgen.NewUUID("cc"),
	})
}
