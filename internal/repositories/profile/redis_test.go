package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
	"github.com/cryptoconquerors/realm-api/internal/repositories/profile"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	clock     *clock.Fixed
	repo      profile.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)
	s.client = client

	s.clock = &clock.Fixed{Time: time.Unix(1700000000, 0)}

	repo, err := profile.NewRedis(&profile.Config{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisRepositoryTestSuite) newProfile(wallet string, gold int) *realm.PlayerProfile {
	return &realm.PlayerProfile{
		Wallet:    wallet,
		Name:      "Bob",
		House:     realm.HouseDragon,
		Level:     1,
		Gold:      gold,
		HP:        200,
		MaxHP:     200,
		Attack:    6,
		Defense:   4,
		Inventory: []string{"Health Potion", "Health Potion"},
	}
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("successful create", func() {
		out, err := s.repo.Create(s.ctx, profile.CreateInput{
			Password: "secret",
			Profile:  s.newProfile("wallet-1", 100),
		})
		s.Require().NoError(err)
		s.Equal(int64(1700000000), out.Profile.CreatedAt)

		got, err := s.repo.Get(s.ctx, profile.GetInput{Wallet: "wallet-1"})
		s.Require().NoError(err)
		s.Equal("secret", got.Password)
		s.Equal("Bob", got.Profile.Name)
		s.Equal(realm.HouseDragon, got.Profile.House)
	})

	s.Run("duplicate wallet is rejected", func() {
		_, err := s.repo.Create(s.ctx, profile.CreateInput{
			Password: "secret",
			Profile:  s.newProfile("wallet-1", 100),
		})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("nil profile is rejected", func() {
		_, err := s.repo.Create(s.ctx, profile.CreateInput{Password: "x"})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, profile.GetInput{Wallet: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSave() {
	_, err := s.repo.Create(s.ctx, profile.CreateInput{
		Password: "secret",
		Profile:  s.newProfile("wallet-1", 100),
	})
	s.Require().NoError(err)

	s.Run("save preserves the stored password", func() {
		p := s.newProfile("wallet-1", 350)
		p.Level = 2
		s.clock.Advance(time.Minute)

		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
		s.Require().NoError(err)

		got, err := s.repo.Get(s.ctx, profile.GetInput{Wallet: "wallet-1"})
		s.Require().NoError(err)
		s.Equal("secret", got.Password)
		s.Equal(2, got.Profile.Level)
		s.Equal(350, got.Profile.Gold)
		s.Equal(int64(1700000060), got.Profile.UpdatedAt)
	})

	s.Run("save of unknown wallet fails", func() {
		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: s.newProfile("ghost", 0)})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestList() {
	for _, w := range []string{"a", "b", "c"} {
		_, err := s.repo.Create(s.ctx, profile.CreateInput{
			Password: "pw",
			Profile:  s.newProfile(w, 10),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, profile.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Profiles, 3)
}

func (s *RedisRepositoryTestSuite) TestTop() {
	golds := map[string]int{"poor": 5, "middle": 500, "rich": 5000}
	for w, g := range golds {
		_, err := s.repo.Create(s.ctx, profile.CreateInput{
			Password: "pw",
			Profile:  s.newProfile(w, g),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.Top(s.ctx, profile.TopInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Profiles, 2)
	s.Equal("rich", out.Profiles[0].Wallet)
	s.Equal("middle", out.Profiles[1].Wallet)
}

func (s *RedisRepositoryTestSuite) TestTopTracksGoldChanges() {
	_, err := s.repo.Create(s.ctx, profile.CreateInput{
		Password: "pw",
		Profile:  s.newProfile("a", 100),
	})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, profile.CreateInput{
		Password: "pw",
		Profile:  s.newProfile("b", 200),
	})
	s.Require().NoError(err)

	p := s.newProfile("a", 1000)
	_, err = s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)

	out, err := s.repo.Top(s.ctx, profile.TopInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(out.Profiles, 2)
	s.Equal("a", out.Profiles[0].Wallet)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
