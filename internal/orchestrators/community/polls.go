package community

import (
	"context"

	entities "github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/repositories/poll"
)

func (o *orchestrator) CreatePoll(ctx context.Context, input *CreatePollInput) (*CreatePollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Title == "" {
		return nil, errors.InvalidArgument("poll title is required")
	}
	now := o.clock.Now().Unix()
	if input.EndDate != 0 && input.EndDate <= now {
		return nil, errors.InvalidArgument("poll end date must be in the future")
	}

	p := &entities.Poll{
		ID:          o.idgen.Generate(),
		Title:       input.Title,
		Description: input.Description,
		EndDate:     input.EndDate,
		CreatedAt:   now,
	}
	if _, err := o.pollRepo.Create(ctx, poll.CreateInput{Poll: p}); err != nil {
		return nil, errors.Wrapf(err, "failed to create poll")
	}
	return &CreatePollOutput{Poll: p}, nil
}

func (o *orchestrator) DeletePoll(ctx context.Context, input *DeletePollInput) (*DeletePollOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("poll ID is required")
	}
	if _, err := o.pollRepo.Delete(ctx, poll.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete poll")
	}
	return &DeletePollOutput{}, nil
}

func (o *orchestrator) ListPolls(ctx context.Context, input *ListPollsInput) (*ListPollsOutput, error) {
	listed, err := o.pollRepo.List(ctx, poll.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list polls")
	}
	return &ListPollsOutput{Polls: listed.Polls}, nil
}

func (o *orchestrator) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PollID == "" {
		return nil, errors.InvalidArgument("poll ID is required")
	}
	if input.Wallet == "" {
		return nil, errors.InvalidArgument("wallet is required")
	}

	got, err := o.pollRepo.Get(ctx, poll.GetInput{ID: input.PollID})
	if err != nil {
		return nil, err
	}
	p := got.Poll

	if p.EndDate != 0 && o.clock.Now().Unix() > p.EndDate {
		return nil, errors.FailedPrecondition("poll has ended")
	}
	if p.HasVoted(input.Wallet) {
		return nil, errors.FailedPreconditionf("wallet %s has already voted", input.Wallet)
	}

	if input.Yes {
		if p.YesVotes == nil {
			p.YesVotes = make(map[string]bool)
		}
		p.YesVotes[input.Wallet] = true
	} else {
		if p.NoVotes == nil {
			p.NoVotes = make(map[string]bool)
		}
		p.NoVotes[input.Wallet] = true
	}

	if _, err := o.pollRepo.Save(ctx, poll.SaveInput{Poll: p}); err != nil {
		return nil, errors.Wrapf(err, "failed to save vote")
	}
	return &CastVoteOutput{Poll: p}, nil
}
