package community

import (
	"context"
	"log/slog"
	"time"

	entities "github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/repositories/alphacall"
)

// Allowed call timeframes, mapped to their durations.
var callTimeframes = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"48h": 48 * time.Hour,
	"72h": 72 * time.Hour,
}

func (o *orchestrator) SubmitCall(ctx context.Context, input *SubmitCallInput) (*SubmitCallOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if input.Wallet == "" {
		vb.RequiredField("Wallet")
	}
	if input.TokenMint == "" {
		vb.RequiredField("TokenMint")
	}
	if input.EntryPrice <= 0 {
		vb.Field("EntryPrice", "must be positive")
	}
	if input.TargetPrice <= input.EntryPrice {
		vb.Field("TargetPrice", "must be above the entry price")
	}
	duration, ok := callTimeframes[input.Timeframe]
	if !ok {
		vb.Field("Timeframe", "must be one of 24h, 48h, 72h")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	call := &entities.AlphaCall{
		ID:          o.idgen.Generate(),
		Wallet:      input.Wallet,
		TokenMint:   input.TokenMint,
		Description: input.Description,
		EntryPrice:  input.EntryPrice,
		TargetPrice: input.TargetPrice,
		Timeframe:   input.Timeframe,
		ExpiresAt:   now.Add(duration).Unix(),
		Status:      entities.CallStatusPending,
		CreatedAt:   now.Unix(),
	}
	if _, err := o.callRepo.Create(ctx, alphacall.CreateInput{Call: call}); err != nil {
		return nil, errors.Wrapf(err, "failed to create call")
	}
	return &SubmitCallOutput{Call: call}, nil
}

func (o *orchestrator) ListCalls(ctx context.Context, input *ListCallsInput) (*ListCallsOutput, error) {
	listed, err := o.callRepo.List(ctx, alphacall.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list calls")
	}
	visible := make([]*entities.AlphaCall, 0, len(listed.Calls))
	for _, call := range listed.Calls {
		if call.Visible() {
			visible = append(visible, call)
		}
	}
	return &ListCallsOutput{Calls: visible}, nil
}

func (o *orchestrator) VoteCall(ctx context.Context, input *VoteCallInput) (*VoteCallOutput, error) {
	if input == nil || input.CallID == "" {
		return nil, errors.InvalidArgument("call ID is required")
	}

	got, err := o.callRepo.Get(ctx, alphacall.GetInput{ID: input.CallID})
	if err != nil {
		return nil, err
	}
	call := got.Call

	if input.Up {
		call.Upvotes++
	} else {
		call.Downvotes++
		if call.Downvotes >= entities.HideDownvoteThreshold {
			call.Hidden = true
		}
	}

	if _, err := o.callRepo.Save(ctx, alphacall.SaveInput{Call: call}); err != nil {
		return nil, errors.Wrapf(err, "failed to save vote")
	}
	return &VoteCallOutput{Call: call}, nil
}

func (o *orchestrator) ResolveCalls(ctx context.Context, input *ResolveCallsInput) (*ResolveCallsOutput, error) {
	listed, err := o.callRepo.List(ctx, alphacall.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list calls")
	}

	now := o.clock.Now().Unix()
	out := &ResolveCallsOutput{}
	for _, call := range listed.Calls {
		if call.Status != entities.CallStatusPending {
			continue
		}

		price, err := o.price.Price(ctx, call.TokenMint)
		if err != nil {
			// Leave the call pending; a later sweep will retry it.
			slog.WarnContext(ctx, "failed to quote call token",
				"call_id", call.ID, "mint", call.TokenMint, "error", err)
			out.Pending++
			continue
		}

		switch {
		case price >= call.TargetPrice:
			call.Status = entities.CallStatusSuccessful
		case now > call.ExpiresAt:
			call.Status = entities.CallStatusFailed
		default:
			out.Pending++
			continue
		}

		if _, err := o.callRepo.Save(ctx, alphacall.SaveInput{Call: call}); err != nil {
			return nil, errors.Wrapf(err, "failed to resolve call %s", call.ID)
		}
		if call.Status == entities.CallStatusSuccessful {
			out.Successful++
		} else {
			out.Failed++
		}
	}
	return out, nil
}
