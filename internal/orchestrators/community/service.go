// Package community implements the $MINE community surfaces around the
// game: admin-curated polls, crowd-sourced alpha calls with voting and
// price-based resolution, and the weekly lottery with its Discord
// announcement. Admin gating happens at the CLI surface; callers of the
// admin operations are trusted.
package community

import (
	"github.com/cryptoconquerors/realm-api/internal/clients/discord"
	"github.com/cryptoconquerors/realm-api/internal/clients/jupiter"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	"github.com/cryptoconquerors/realm-api/internal/pkg/dice"
	"github.com/cryptoconquerors/realm-api/internal/pkg/idgen"
	"github.com/cryptoconquerors/realm-api/internal/repositories/alphacall"
	"github.com/cryptoconquerors/realm-api/internal/repositories/lottery"
	"github.com/cryptoconquerors/realm-api/internal/repositories/poll"
)

// Config holds the dependencies for the community orchestrator.
type Config struct {
	PollRepo    poll.Repository
	CallRepo    alphacall.Repository
	LotteryRepo lottery.Repository
	Price       jupiter.Client
	Announcer   discord.Announcer
	Clock       clock.Clock
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided. The announcer is
// optional; without one, draws are performed silently.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.PollRepo == nil {
		vb.RequiredField("PollRepo")
	}
	if c.CallRepo == nil {
		vb.RequiredField("CallRepo")
	}
	if c.LotteryRepo == nil {
		vb.RequiredField("LotteryRepo")
	}
	if c.Price == nil {
		vb.RequiredField("Price")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	pollRepo    poll.Repository
	callRepo    alphacall.Repository
	lotteryRepo lottery.Repository
	price       jupiter.Client
	announcer   discord.Announcer
	clock       clock.Clock
	roller      dice.Roller
	idgen       idgen.Generator
}

// New creates the community orchestrator.
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &orchestrator{
		pollRepo:    cfg.PollRepo,
		callRepo:    cfg.CallRepo,
		lotteryRepo: cfg.LotteryRepo,
		price:       cfg.Price,
		announcer:   cfg.Announcer,
		clock:       cfg.Clock,
		roller:      cfg.Roller,
		idgen:       cfg.IDGenerator,
	}, nil
}

var _ Service = (*orchestrator)(nil)
