package community_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	discordmock "github.com/cryptoconquerors/realm-api/internal/clients/discord/mock"
	jupitermock "github.com/cryptoconquerors/realm-api/internal/clients/jupiter/mock"
	entities "github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/orchestrators/community"
	"github.com/cryptoconquerors/realm-api/internal/pkg/clock"
	"github.com/cryptoconquerors/realm-api/internal/pkg/dice"
	"github.com/cryptoconquerors/realm-api/internal/pkg/idgen"
	"github.com/cryptoconquerors/realm-api/internal/repositories/alphacall"
	"github.com/cryptoconquerors/realm-api/internal/repositories/lottery"
	"github.com/cryptoconquerors/realm-api/internal/repositories/poll"
	"github.com/cryptoconquerors/realm-api/internal/testutils"
)

type CommunityTestSuite struct {
	suite.Suite
	cleanup     func()
	pollRepo    poll.Repository
	callRepo    alphacall.Repository
	lotteryRepo lottery.Repository
	clock       *clock.Fixed
	ctrl        *gomock.Controller
	price       *jupitermock.MockClient
	announcer   *discordmock.MockAnnouncer
	ctx         context.Context
}

func (s *CommunityTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.pollRepo, err = poll.NewRedis(&poll.Config{Client: client})
	s.Require().NoError(err)
	s.callRepo, err = alphacall.NewRedis(&alphacall.Config{Client: client})
	s.Require().NoError(err)
	s.lotteryRepo, err = lottery.NewRedis(&lottery.Config{Client: client})
	s.Require().NoError(err)

	// Tuesday, 2023-11-14 22:13:20 UTC.
	s.clock = &clock.Fixed{Time: time.Unix(1700000000, 0)}
	s.ctrl = gomock.NewController(s.T())
	s.price = jupitermock.NewMockClient(s.ctrl)
	s.announcer = discordmock.NewMockAnnouncer(s.ctrl)
	s.ctx = context.Background()
}

func (s *CommunityTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *CommunityTestSuite) newService(roller dice.Roller) community.Service {
	svc, err := community.New(&community.Config{
		PollRepo:    s.pollRepo,
		CallRepo:    s.callRepo,
		LotteryRepo: s.lotteryRepo,
		Price:       s.price,
		Announcer:   s.announcer,
		Clock:       s.clock,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("cc"),
	})
	s.Require().NoError(err)
	return svc
}

func (s *CommunityTestSuite) TestCreateAndListPolls() {
	svc := s.newService(dice.NewFixed(1))

	first, err := svc.CreatePoll(s.ctx, &community.CreatePollInput{Title: "Burn more supply?"})
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := svc.CreatePoll(s.ctx, &community.CreatePollInput{Title: "New district next?"})
	s.Require().NoError(err)

	listed, err := svc.ListPolls(s.ctx, &community.ListPollsInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Polls, 2)
	s.Equal(second.Poll.ID, listed.Polls[0].ID)
	s.Equal(first.Poll.ID, listed.Polls[1].ID)
}

func (s *CommunityTestSuite) TestCreatePollRejectsPastEndDate() {
	svc := s.newService(dice.NewFixed(1))

	_, err := svc.CreatePoll(s.ctx, &community.CreatePollInput{
		Title:   "Too late",
		EndDate: s.clock.Now().Add(-time.Hour).Unix(),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommunityTestSuite) TestCastVoteOncePerWallet() {
	svc := s.newService(dice.NewFixed(1))

	created, err := svc.CreatePoll(s.ctx, &community.CreatePollInput{Title: "Burn more supply?"})
	s.Require().NoError(err)

	voted, err := svc.CastVote(s.ctx, &community.CastVoteInput{
		PollID: created.Poll.ID, Wallet: "walletA", Yes: true,
	})
	s.Require().NoError(err)
	s.Equal(1, voted.Poll.YesCount())

	_, err = svc.CastVote(s.ctx, &community.CastVoteInput{
		PollID: created.Poll.ID, Wallet: "walletA", Yes: false,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	voted, err = svc.CastVote(s.ctx, &community.CastVoteInput{
		PollID: created.Poll.ID, Wallet: "walletB", Yes: false,
	})
	s.Require().NoError(err)
	s.Equal(1, voted.Poll.YesCount())
	s.Equal(1, voted.Poll.NoCount())
}

func (s *CommunityTestSuite) TestCastVoteOnEndedPoll() {
	svc := s.newService(dice.NewFixed(1))

	created, err := svc.CreatePoll(s.ctx, &community.CreatePollInput{
		Title:   "Burn more supply?",
		EndDate: s.clock.Now().Add(time.Hour).Unix(),
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	_, err = svc.CastVote(s.ctx, &community.CastVoteInput{
		PollID: created.Poll.ID, Wallet: "walletA", Yes: true,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CommunityTestSuite) TestDeletePoll() {
	svc := s.newService(dice.NewFixed(1))

	created, err := svc.CreatePoll(s.ctx, &community.CreatePollInput{Title: "Burn more supply?"})
	s.Require().NoError(err)

	_, err = svc.DeletePoll(s.ctx, &community.DeletePollInput{ID: created.Poll.ID})
	s.Require().NoError(err)

	listed, err := svc.ListPolls(s.ctx, &community.ListPollsInput{})
	s.Require().NoError(err)
	s.Empty(listed.Polls)
}

func (s *CommunityTestSuite) submitCall(svc community.Service, mint, timeframe string, entry, target float64) *entities.AlphaCall {
	out, err := svc.SubmitCall(s.ctx, &community.SubmitCallInput{
		Wallet:      "walletA",
		TokenMint:   mint,
		EntryPrice:  entry,
		TargetPrice: target,
		Timeframe:   timeframe,
	})
	s.Require().NoError(err)
	return out.Call
}

func (s *CommunityTestSuite) TestSubmitCallValidation() {
	svc := s.newService(dice.NewFixed(1))

	_, err := svc.SubmitCall(s.ctx, &community.SubmitCallInput{
		Wallet:      "walletA",
		TokenMint:   "mintA",
		EntryPrice:  1.0,
		TargetPrice: 1.5,
		Timeframe:   "12h",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.SubmitCall(s.ctx, &community.SubmitCallInput{
		Wallet:      "walletA",
		TokenMint:   "mintA",
		EntryPrice:  1.5,
		TargetPrice: 1.0,
		Timeframe:   "24h",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommunityTestSuite) TestSubmitCallSetsExpiry() {
	svc := s.newService(dice.NewFixed(1))

	call := s.submitCall(svc, "mintA", "48h", 1.0, 1.5)
	s.Equal(entities.CallStatusPending, call.Status)
	s.Equal(s.clock.Now().Add(48*time.Hour).Unix(), call.ExpiresAt)
}

func (s *CommunityTestSuite) TestThirdDownvoteHidesCall() {
	svc := s.newService(dice.NewFixed(1))

	call := s.submitCall(svc, "mintA", "24h", 1.0, 1.5)

	for i := 0; i < 2; i++ {
		voted, err := svc.VoteCall(s.ctx, &community.VoteCallInput{CallID: call.ID, Up: false})
		s.Require().NoError(err)
		s.False(voted.Call.Hidden)
	}

	voted, err := svc.VoteCall(s.ctx, &community.VoteCallInput{CallID: call.ID, Up: false})
	s.Require().NoError(err)
	s.True(voted.Call.Hidden)

	listed, err := svc.ListCalls(s.ctx, &community.ListCallsInput{})
	s.Require().NoError(err)
	s.Empty(listed.Calls)
}

func (s *CommunityTestSuite) TestUpvotesNeverHide() {
	svc := s.newService(dice.NewFixed(1))

	call := s.submitCall(svc, "mintA", "24h", 1.0, 1.5)
	for i := 0; i < 5; i++ {
		voted, err := svc.VoteCall(s.ctx, &community.VoteCallInput{CallID: call.ID, Up: true})
		s.Require().NoError(err)
		s.False(voted.Call.Hidden)
	}

	listed, err := svc.ListCalls(s.ctx, &community.ListCallsInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Calls, 1)
	s.Equal(5, listed.Calls[0].Upvotes)
}

func (s *CommunityTestSuite) TestResolveCalls() {
	svc := s.newService(dice.NewFixed(1))

	hit := s.submitCall(svc, "mintHit", "48h", 1.0, 1.5)
	expired := s.submitCall(svc, "mintMiss", "24h", 1.0, 1.5)
	open := s.submitCall(svc, "mintOpen", "72h", 1.0, 1.5)

	s.clock.Advance(25 * time.Hour)
	s.price.EXPECT().Price(gomock.Any(), "mintHit").Return(2.0, nil)
	s.price.EXPECT().Price(gomock.Any(), "mintMiss").Return(1.1, nil)
	s.price.EXPECT().Price(gomock.Any(), "mintOpen").Return(1.1, nil)

	out, err := svc.ResolveCalls(s.ctx, &community.ResolveCallsInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Successful)
	s.Equal(1, out.Failed)
	s.Equal(1, out.Pending)

	got, err := s.callRepo.Get(s.ctx, alphacall.GetInput{ID: hit.ID})
	s.Require().NoError(err)
	s.Equal(entities.CallStatusSuccessful, got.Call.Status)

	got, err = s.callRepo.Get(s.ctx, alphacall.GetInput{ID: expired.ID})
	s.Require().NoError(err)
	s.Equal(entities.CallStatusFailed, got.Call.Status)

	got, err = s.callRepo.Get(s.ctx, alphacall.GetInput{ID: open.ID})
	s.Require().NoError(err)
	s.Equal(entities.CallStatusPending, got.Call.Status)
}

func (s *CommunityTestSuite) TestResolveCallsQuoteFailureLeavesPending() {
	svc := s.newService(dice.NewFixed(1))

	call := s.submitCall(svc, "mintA", "24h", 1.0, 1.5)
	s.price.EXPECT().Price(gomock.Any(), "mintA").Return(0.0, errors.Unavailable("jupiter down"))

	out, err := svc.ResolveCalls(s.ctx, &community.ResolveCallsInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Pending)
	s.Equal(0, out.Successful)
	s.Equal(0, out.Failed)

	got, err := s.callRepo.Get(s.ctx, alphacall.GetInput{ID: call.ID})
	s.Require().NoError(err)
	s.Equal(entities.CallStatusPending, got.Call.Status)
}

func (s *CommunityTestSuite) TestNextDrawDateIsUpcomingFriday() {
	svc := s.newService(dice.NewFixed(1))

	out, err := svc.NextDrawDate(s.ctx, &community.NextDrawDateInput{})
	s.Require().NoError(err)
	want := time.Date(2023, time.November, 17, 20, 0, 0, 0, time.UTC)
	s.Equal(want.Unix(), out.DrawDate)

	// At the draw moment itself the next one is a week out.
	s.clock.Time = want
	out, err = svc.NextDrawDate(s.ctx, &community.NextDrawDateInput{})
	s.Require().NoError(err)
	s.Equal(want.AddDate(0, 0, 7).Unix(), out.DrawDate)
}

// addEntry advances the clock first so creation order is unambiguous.
func (s *CommunityTestSuite) addEntry(svc community.Service, discord string, tickets int) *entities.LotteryEntry {
	s.clock.Advance(time.Minute)
	out, err := svc.AddEntry(s.ctx, &community.AddEntryInput{
		DiscordUsername: discord,
		NumberOfTickets: tickets,
		SolscanLink:     "https://solscan.io/tx/abc",
	})
	s.Require().NoError(err)
	return out.Entry
}

func (s *CommunityTestSuite) TestAddEntryValidation() {
	svc := s.newService(dice.NewFixed(1))

	_, err := svc.AddEntry(s.ctx, &community.AddEntryInput{NumberOfTickets: 1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.AddEntry(s.ctx, &community.AddEntryInput{DiscordUsername: "alice#1", NumberOfTickets: 0})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommunityTestSuite) TestAddEntryTargetsNextDraw() {
	svc := s.newService(dice.NewFixed(1))

	entry := s.addEntry(svc, "alice#1", 3)
	want := time.Date(2023, time.November, 17, 20, 0, 0, 0, time.UTC)
	s.Equal(want.Unix(), entry.DrawDate)
	s.Equal(entities.EntryStatusPending, entry.Status)
	s.False(entry.Verified)
}

func (s *CommunityTestSuite) TestVerifyEntry() {
	svc := s.newService(dice.NewFixed(1))

	entry := s.addEntry(svc, "alice#1", 3)
	verified, err := svc.VerifyEntry(s.ctx, &community.VerifyEntryInput{ID: entry.ID})
	s.Require().NoError(err)
	s.True(verified.Entry.Verified)
}

func (s *CommunityTestSuite) TestPerformDrawPicksByTicketCount() {
	// Slot 4 of 5 lands in bob's two tickets, after alice's three.
	svc := s.newService(dice.NewFixed(4))

	alice := s.addEntry(svc, "alice#1", 3)
	bob := s.addEntry(svc, "bob#2", 2)
	s.addEntry(svc, "carol#3", 5) // never verified, stays out of the draw

	for _, id := range []string{alice.ID, bob.ID} {
		_, err := svc.VerifyEntry(s.ctx, &community.VerifyEntryInput{ID: id})
		s.Require().NoError(err)
	}

	var announced string
	s.announcer.EXPECT().Announce(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, content string) error {
			announced = content
			return nil
		})

	out, err := svc.PerformDraw(s.ctx, &community.PerformDrawInput{})
	s.Require().NoError(err)
	s.Equal(bob.ID, out.Winner.ID)
	s.Equal(5, out.TotalTickets)
	s.Contains(out.Announcement, "bob#2")
	s.Equal(out.Announcement, announced)

	got, err := s.lotteryRepo.Get(s.ctx, lottery.GetInput{ID: bob.ID})
	s.Require().NoError(err)
	s.Equal(entities.EntryStatusWinner, got.Entry.Status)
}

func (s *CommunityTestSuite) TestPerformDrawRequiresVerifiedEntries() {
	svc := s.newService(dice.NewFixed(1))

	s.addEntry(svc, "alice#1", 3)
	_, err := svc.PerformDraw(s.ctx, &community.PerformDrawInput{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CommunityTestSuite) TestPerformDrawWithoutAnnouncer() {
	svc, err := community.New(&community.Config{
		PollRepo:    s.pollRepo,
		CallRepo:    s.callRepo,
		LotteryRepo: s.lotteryRepo,
		Price:       s.price,
		Clock:       s.clock,
		Roller:      dice.NewFixed(1),
		IDGenerator: idgen.NewSequential("cc"),
	})
	s.Require().NoError(err)

	entry := s.addEntry(svc, "alice#1", 1)
	_, err = svc.VerifyEntry(s.ctx, &community.VerifyEntryInput{ID: entry.ID})
	s.Require().NoError(err)

	out, err := svc.PerformDraw(s.ctx, &community.PerformDrawInput{})
	s.Require().NoError(err)
	s.Equal(entry.ID, out.Winner.ID)
}

func (s *CommunityTestSuite) TestExportEntriesCSV() {
	svc := s.newService(dice.NewFixed(1))

	alice := s.addEntry(svc, "alice#1", 3)
	s.addEntry(svc, "bob#2", 2)
	_, err := svc.VerifyEntry(s.ctx, &community.VerifyEntryInput{ID: alice.ID})
	s.Require().NoError(err)

	out, err := svc.ExportEntries(s.ctx, &community.ExportEntriesInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Entries)

	lines := strings.Split(strings.TrimSpace(out.Content), "\n")
	s.Require().Len(lines, 3)
	s.Equal("discord,x,tickets,solscan,verified,status", lines[0])
	s.Contains(lines[1], "alice#1")
	s.Contains(lines[1], "true")
	s.Contains(lines[2], "bob#2")
	s.Contains(lines[2], "false")
}

func (s *CommunityTestSuite) TestExportEntriesWheel() {
	svc := s.newService(dice.NewFixed(1))

	alice := s.addEntry(svc, "alice#1", 3)
	s.addEntry(svc, "bob#2", 2) // unverified, excluded from the wheel
	_, err := svc.VerifyEntry(s.ctx, &community.VerifyEntryInput{ID: alice.ID})
	s.Require().NoError(err)

	out, err := svc.ExportEntries(s.ctx, &community.ExportEntriesInput{Wheel: true})
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out.Content), "\n")
	s.Require().Len(lines, 3)
	for _, line := range lines {
		s.Equal("alice#1", line)
	}
}

func TestCommunityTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityTestSuite))
}
