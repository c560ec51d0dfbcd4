package community

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	entities "github.com/cryptoconquerors/realm-api/internal/entities/community"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/repositories/lottery"
)

// drawHourUTC is the hour of day, UTC, at which the weekly draw happens.
const drawHourUTC = 20

// nextDrawDate returns the upcoming Friday 20:00 UTC. If that moment has
// already passed this week, the Friday after.
func nextDrawDate(now time.Time) time.Time {
	now = now.UTC()
	daysAhead := (int(time.Friday) - int(now.Weekday()) + 7) % 7
	draw := time.Date(now.Year(), now.Month(), now.Day(), drawHourUTC, 0, 0, 0, time.UTC)
	draw = draw.AddDate(0, 0, daysAhead)
	if !draw.After(now) {
		draw = draw.AddDate(0, 0, 7)
	}
	return draw
}

func (o *orchestrator) drawDateOrNext(requested int64) int64 {
	if requested != 0 {
		return requested
	}
	return nextDrawDate(o.clock.Now()).Unix()
}

func (o *orchestrator) AddEntry(ctx context.Context, input *AddEntryInput) (*AddEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if input.DiscordUsername == "" {
		vb.RequiredField("DiscordUsername")
	}
	if input.NumberOfTickets < 1 {
		vb.Field("NumberOfTickets", "must be at least 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	entry := &entities.LotteryEntry{
		ID:              o.idgen.Generate(),
		DiscordUsername: input.DiscordUsername,
		XUsername:       input.XUsername,
		NumberOfTickets: input.NumberOfTickets,
		SolscanLink:     input.SolscanLink,
		DrawDate:        nextDrawDate(now).Unix(),
		Status:          entities.EntryStatusPending,
		CreatedAt:       now.Unix(),
	}
	if _, err := o.lotteryRepo.Create(ctx, lottery.CreateInput{Entry: entry}); err != nil {
		return nil, errors.Wrapf(err, "failed to create entry")
	}
	return &AddEntryOutput{Entry: entry}, nil
}

func (o *orchestrator) VerifyEntry(ctx context.Context, input *VerifyEntryInput) (*VerifyEntryOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("entry ID is required")
	}
	got, err := o.lotteryRepo.Get(ctx, lottery.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	entry := got.Entry
	entry.Verified = true
	if _, err := o.lotteryRepo.Save(ctx, lottery.SaveInput{Entry: entry}); err != nil {
		return nil, errors.Wrapf(err, "failed to save entry")
	}
	return &VerifyEntryOutput{Entry: entry}, nil
}

func (o *orchestrator) NextDrawDate(ctx context.Context, input *NextDrawDateInput) (*NextDrawDateOutput, error) {
	return &NextDrawDateOutput{DrawDate: nextDrawDate(o.clock.Now()).Unix()}, nil
}

func (o *orchestrator) PerformDraw(ctx context.Context, input *PerformDrawInput) (*PerformDrawOutput, error) {
	if input == nil {
		input = &PerformDrawInput{}
	}
	drawDate := o.drawDateOrNext(input.DrawDate)

	listed, err := o.lotteryRepo.ListByDraw(ctx, lottery.ListByDrawInput{DrawDate: drawDate})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load draw entries")
	}

	eligible := make([]*entities.LotteryEntry, 0, len(listed.Entries))
	totalTickets := 0
	for _, entry := range listed.Entries {
		if !entry.Verified || entry.Status != entities.EntryStatusPending {
			continue
		}
		eligible = append(eligible, entry)
		totalTickets += entry.NumberOfTickets
	}
	if len(eligible) == 0 {
		return nil, errors.FailedPrecondition("no verified entries for this draw")
	}

	// One slot per ticket, so more tickets means better odds.
	slot := o.roller.RollRange(1, totalTickets)
	var winner *entities.LotteryEntry
	for _, entry := range eligible {
		slot -= entry.NumberOfTickets
		if slot <= 0 {
			winner = entry
			break
		}
	}

	winner.Status = entities.EntryStatusWinner
	if _, err := o.lotteryRepo.Save(ctx, lottery.SaveInput{Entry: winner}); err != nil {
		return nil, errors.Wrapf(err, "failed to save winner")
	}

	announcement := fmt.Sprintf(
		"🎉 **Weekly Lottery Draw** 🎉\nWinner: **%s**\nTickets held: %d of %d\nCongratulations! Reach out to claim your prize.",
		winner.DiscordUsername, winner.NumberOfTickets, totalTickets)
	if o.announcer != nil {
		if err := o.announcer.Announce(ctx, announcement); err != nil {
			return nil, errors.Wrapf(err, "failed to announce winner")
		}
	}

	return &PerformDrawOutput{
		Winner:       winner,
		TotalTickets: totalTickets,
		Announcement: announcement,
	}, nil
}

func (o *orchestrator) ExportEntries(ctx context.Context, input *ExportEntriesInput) (*ExportEntriesOutput, error) {
	if input == nil {
		input = &ExportEntriesInput{}
	}
	drawDate := o.drawDateOrNext(input.DrawDate)

	listed, err := o.lotteryRepo.ListByDraw(ctx, lottery.ListByDrawInput{DrawDate: drawDate})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load draw entries")
	}

	if input.Wheel {
		// One line per ticket, ready to paste into a spinner wheel.
		var sb strings.Builder
		for _, entry := range listed.Entries {
			if !entry.Verified {
				continue
			}
			for i := 0; i < entry.NumberOfTickets; i++ {
				sb.WriteString(entry.DiscordUsername)
				sb.WriteByte('\n')
			}
		}
		return &ExportEntriesOutput{Content: sb.String(), Entries: len(listed.Entries)}, nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"discord", "x", "tickets", "solscan", "verified", "status"})
	for _, entry := range listed.Entries {
		_ = w.Write([]string{
			entry.DiscordUsername,
			entry.XUsername,
			strconv.Itoa(entry.NumberOfTickets),
			entry.SolscanLink,
			strconv.FormatBool(entry.Verified),
			string(entry.Status),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrapf(err, "failed to render export")
	}
	return &ExportEntriesOutput{Content: sb.String(), Entries: len(listed.Entries)}, nil
}
