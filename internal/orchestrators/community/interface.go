package community

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
)

//go:generate mockgen -destination=mock/mock_service.go -package=communitymock -source=interface.go

// Service is the community surface: polls, alpha calls, and the lottery.
type Service interface {
	// CreatePoll opens a new yes/no poll. Admin operation.
	CreatePoll(ctx context.Context, input *CreatePollInput) (*CreatePollOutput, error)

	// DeletePoll removes a poll. Admin operation.
	DeletePoll(ctx context.Context, input *DeletePollInput) (*DeletePollOutput, error)

	// ListPolls returns every poll, newest first.
	ListPolls(ctx context.Context, input *ListPollsInput) (*ListPollsOutput, error)

	// CastVote records a wallet's yes/no vote; one vote per wallet.
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// SubmitCall records a new alpha call with an expiry from its timeframe.
	SubmitCall(ctx context.Context, input *SubmitCallInput) (*SubmitCallOutput, error)

	// ListCalls returns the visible calls, newest first.
	ListCalls(ctx context.Context, input *ListCallsInput) (*ListCallsOutput, error)

	// VoteCall records an up or down vote; the third downvote hides the call.
	VoteCall(ctx context.Context, input *VoteCallInput) (*VoteCallOutput, error)

	// ResolveCalls settles pending calls against current prices: target
	// reached marks a call successful, an expired call failed.
	ResolveCalls(ctx context.Context, input *ResolveCallsInput) (*ResolveCallsOutput, error)

	// AddEntry signs a community member up for the next weekly draw.
	AddEntry(ctx context.Context, input *AddEntryInput) (*AddEntryOutput, error)

	// VerifyEntry marks an entry's burn transaction as checked. Admin
	// operation; only verified entries take part in the draw.
	VerifyEntry(ctx context.Context, input *VerifyEntryInput) (*VerifyEntryOutput, error)

	// NextDrawDate returns the upcoming Friday 20:00 UTC draw date.
	NextDrawDate(ctx context.Context, input *NextDrawDateInput) (*NextDrawDateOutput, error)

	// PerformDraw picks a winner for a draw, one slot per ticket, marks
	// the entry, and announces the result when an announcer is configured.
	PerformDraw(ctx context.Context, input *PerformDrawInput) (*PerformDrawOutput, error)

	// ExportEntries renders a draw's entries as CSV, or as one wheel line
	// per ticket.
	ExportEntries(ctx context.Context, input *ExportEntriesInput) (*ExportEntriesOutput, error)
}

// CreatePollInput describes the poll to open.
type CreatePollInput struct {
	Title       string
	Description string
	EndDate     int64
}

// CreatePollOutput contains the stored poll.
type CreatePollOutput struct {
	Poll *community.Poll
}

// DeletePollInput identifies the poll to remove.
type DeletePollInput struct {
	ID string
}

// DeletePollOutput is empty but exists for future expansion.
type DeletePollOutput struct{}

// ListPollsInput is empty but exists for future expansion.
type ListPollsInput struct{}

// ListPollsOutput contains all polls, newest first.
type ListPollsOutput struct {
	Polls []*community.Poll
}

// CastVoteInput records one wallet's vote.
type CastVoteInput struct {
	PollID string
	Wallet string
	Yes    bool
}

// CastVoteOutput contains the poll after the vote.
type CastVoteOutput struct {
	Poll *community.Poll
}

// SubmitCallInput describes a new alpha call.
type SubmitCallInput struct {
	Wallet      string
	TokenMint   string
	Description string
	EntryPrice  float64
	TargetPrice float64
	Timeframe   string
}

// SubmitCallOutput contains the stored call.
type SubmitCallOutput struct {
	Call *community.AlphaCall
}

// ListCallsInput is empty but exists for future expansion.
type ListCallsInput struct{}

// ListCallsOutput contains the visible calls, newest first.
type ListCallsOutput struct {
	Calls []*community.AlphaCall
}

// VoteCallInput records one vote on a call.
type VoteCallInput struct {
	CallID string
	Up     bool
}

// VoteCallOutput contains the call after the vote.
type VoteCallOutput struct {
	Call *community.AlphaCall
}

// ResolveCallsInput is empty but exists for future expansion.
type ResolveCallsInput struct{}

// ResolveCallsOutput summarizes a resolution sweep.
type ResolveCallsOutput struct {
	Successful int
	Failed     int
	Pending    int
}

// AddEntryInput describes a lottery signup.
type AddEntryInput struct {
	DiscordUsername string
	XUsername       string
	NumberOfTickets int
	SolscanLink     string
}

// AddEntryOutput contains the stored entry.
type AddEntryOutput struct {
	Entry *community.LotteryEntry
}

// VerifyEntryInput identifies the entry to verify.
type VerifyEntryInput struct {
	ID string
}

// VerifyEntryOutput contains the verified entry.
type VerifyEntryOutput struct {
	Entry *community.LotteryEntry
}

// NextDrawDateInput is empty but exists for future expansion.
type NextDrawDateInput struct{}

// NextDrawDateOutput contains the upcoming draw date as a Unix timestamp.
type NextDrawDateOutput struct {
	DrawDate int64
}

// PerformDrawInput identifies the draw. A zero DrawDate means the next
// scheduled one.
type PerformDrawInput struct {
	DrawDate int64
}

// PerformDrawOutput contains the winner and the announcement text.
type PerformDrawOutput struct {
	Winner       *community.LotteryEntry
	TotalTickets int
	Announcement string
}

// ExportEntriesInput identifies the draw to export. A zero DrawDate means
// the next scheduled one.
type ExportEntriesInput struct {
	DrawDate int64

	// Wheel renders one line per ticket instead of CSV.
	Wheel bool
}

// ExportEntriesOutput contains the rendered export.
type ExportEntriesOutput struct {
	Content string
	Entries int
}
