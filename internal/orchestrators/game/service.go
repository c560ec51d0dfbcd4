// Package game implements the text-adventure session engine: login and
// character creation, district progression, combat, the shop, trades, and
// presence. All randomness goes through an injected dice roller and all
// persistence through the repository interfaces, so the rules are fully
// deterministic under test.
package game

import (
	"context"
	"log/slog"

	"github.com/cryptoconquerors/realm-api/internal/content"
	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	"github.com/cryptoconquerors/realm-api/internal/pkg/dice"
	"github.com/cryptoconquerors/realm-api/internal/pkg/idgen"
	"github.com/cryptoconquerors/realm-api/internal/repositories/presence"
	"github.com/cryptoconquerors/realm-api/internal/repositories/profile"
	"github.com/cryptoconquerors/realm-api/internal/repositories/trade"
)

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock -source=service.go

// Game rule constants. The content tables carry per-district numbers; these
// are the global ones.
const (
	progressStep       = 5
	encounterChancePct = 30

	npcCheckpoint     = 10
	exploreCheckpoint = 25

	npcRewardMin     = 20
	npcRewardMax     = 50
	exploreRewardMin = 50
	exploreRewardMax = 100

	playerHitMin = 10
	playerHitMax = 29

	defaultEnemyAttack = 20
	defaultKillGold    = 50

	fleeChancePct        = 25
	fleeGoldPenaltyPct   = 5
	deathGoldPenaltyPct  = 10
	fleeProgressLoss     = 10
	bossFleeProgressLoss = 25

	// Death restores HP to this fixed value, not to maxHp.
	deathRestoreHP = 100

	healAmount = 50

	nameMinLen     = 2
	nameMaxLen     = 20
	passwordMinLen = 6

	leaderboardSize = 10
)

// ExecuteInput carries one line of player input for a session.
type ExecuteInput struct {
	Session *Session
	Line    string
}

// ExecuteOutput carries the log lines produced by a command. Store failures
// surface here as lines too; the session always returns to the prompt.
type ExecuteOutput struct {
	Lines []string
	Quit  bool
}

// HeartbeatInput identifies the session to publish presence for.
type HeartbeatInput struct {
	Session *Session
}

// HeartbeatOutput contains the refreshed online-player snapshot.
type HeartbeatOutput struct {
	Players []*realm.Presence
}

// Service is the game session engine.
type Service interface {
	// NewSession starts a fresh unauthenticated session.
	NewSession() *Session

	// Execute interprets one line of input against the session.
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error)

	// Heartbeat publishes the session's presence and refreshes its cached
	// online-player list. It never touches profile or trade documents.
	Heartbeat(ctx context.Context, input *HeartbeatInput) (*HeartbeatOutput, error)
}

// Config holds the dependencies for the game orchestrator.
type Config struct {
	ProfileRepo  profile.Repository
	TradeRepo    trade.Repository
	PresenceRepo presence.Repository
	Content      *content.Tables
	Roller       dice.Roller
	Clock        clock.Clock
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.TradeRepo == nil {
		vb.RequiredField("TradeRepo")
	}
	if c.PresenceRepo == nil {
		vb.RequiredField("PresenceRepo")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	profileRepo  profile.Repository
	tradeRepo    trade.Repository
	presenceRepo presence.Repository
	content      *content.Tables
	roller       dice.Roller
	clock        clock.Clock
	idgen        idgen.Generator
}

// New creates the game orchestrator.
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &orchestrator{
		profileRepo:  cfg.ProfileRepo,
		tradeRepo:    cfg.TradeRepo,
		presenceRepo: cfg.PresenceRepo,
		content:      cfg.Content,
		roller:       cfg.Roller,
		clock:        cfg.Clock,
		idgen:        cfg.IDGenerator,
	}, nil
}

var _ Service = (*orchestrator)(nil)

func (o *orchestrator) NewSession() *Session {
	return &Session{
		auth: phaseAwaitingWallet,
		mode: modeIdle{},
	}
}

func (o *orchestrator) Heartbeat(ctx context.Context, input *HeartbeatInput) (*HeartbeatOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	s := input.Session
	if !s.Ready() {
		return &HeartbeatOutput{}, nil
	}

	if _, err := o.presenceRepo.Publish(ctx, presence.PublishInput{
		Wallet:   s.wallet,
		Name:     s.profile.Name,
		District: s.profile.CurrentDistrict,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to publish heartbeat")
	}

	online, err := o.presenceRepo.ListOnline(ctx, presence.ListOnlineInput{
		ExcludeWallet: s.wallet,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list online players")
	}
	s.setOnline(online.Players)

	return &HeartbeatOutput{Players: online.Players}, nil
}

// saveProfile persists the session profile, clamping invariants first. Store
// failures are reported as a log line; the in-memory state stands.
func (o *orchestrator) saveProfile(ctx context.Context, s *Session, lines []string) []string {
	s.profile.Clamp()
	if _, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: s.profile}); err != nil {
		slog.WarnContext(ctx, "failed to save profile", "wallet", s.wallet, "error", err)
		return append(lines, "Failed to save your progress. The realm may be unreachable.")
	}
	return lines
}
