package poll_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	redisclient "github.com/cryptoconquerors/realm-api/internal/redis"
	"github.com/cryptoconquerors/realm-api/internal/repositories/poll"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	repo      poll.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)

	repo, err := poll.NewRedis(&poll.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisRepositoryTestSuite) testPoll(id string, createdAt int64) *community.Poll {
	return &community.Poll{
		ID:          id,
		Title:       "Should we burn the treasury?",
		Description: "One-time burn of 10% of the community wallet.",
		EndDate:     createdAt + 86400,
		CreatedAt:   createdAt,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	p := s.testPoll("poll-1", 1700000000)
	_, err := s.repo.Create(s.ctx, poll.CreateInput{Poll: p})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, poll.GetInput{ID: "poll-1"})
	s.Require().NoError(err)
	s.Equal(p.Title, got.Poll.Title)
	s.Equal(p.EndDate, got.Poll.EndDate)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	p := s.testPoll("poll-1", 1700000000)
	_, err := s.repo.Create(s.ctx, poll.CreateInput{Poll: p})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, poll.CreateInput{Poll: p})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, poll.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSavePersistsVotes() {
	p := s.testPoll("poll-1", 1700000000)
	_, err := s.repo.Create(s.ctx, poll.CreateInput{Poll: p})
	s.Require().NoError(err)

	p.YesVotes = map[string]bool{"walletA": true}
	p.NoVotes = map[string]bool{"walletB": true}
	_, err = s.repo.Save(s.ctx, poll.SaveInput{Poll: p})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, poll.GetInput{ID: "poll-1"})
	s.Require().NoError(err)
	s.Equal(1, got.Poll.YesCount())
	s.Equal(1, got.Poll.NoCount())
	s.True(got.Poll.HasVoted("walletA"))
	s.False(got.Poll.HasVoted("walletC"))
}

func (s *RedisRepositoryTestSuite) TestSaveUnknownPoll() {
	p := s.testPoll("poll-9", 1700000000)
	_, err := s.repo.Save(s.ctx, poll.SaveInput{Poll: p})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	p := s.testPoll("poll-1", 1700000000)
	_, err := s.repo.Create(s.ctx, poll.CreateInput{Poll: p})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, poll.DeleteInput{ID: "poll-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, poll.GetInput{ID: "poll-1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, poll.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Polls)
}

func (s *RedisRepositoryTestSuite) TestListNewestFirst() {
	older := s.testPoll("poll-old", 1700000000)
	newer := s.testPoll("poll-new", 1700005000)
	_, err := s.repo.Create(s.ctx, poll.CreateInput{Poll: older})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, poll.CreateInput{Poll: newer})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, poll.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Polls, 2)
	s.Equal("poll-new", list.Polls[0].ID)
	s.Equal("poll-old", list.Polls[1].ID)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
