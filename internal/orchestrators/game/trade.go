package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/repositories/profile"
	"github.com/cryptoconquerors/realm-api/internal/repositories/trade"
)

func tradeMenuLines() []string {
	return []string{
		"What would you like to do?",
		"  1. Visit the store",
		"  2. Browse other players",
		"  3. Search for a player",
		"Type a number, or 'cancel'.",
	}
}

func (o *orchestrator) executeTradeMenu(ctx context.Context, s *Session, lower string) *ExecuteOutput {
	switch lower {
	case "1":
		s.mode = modeIdle{}
		return &ExecuteOutput{Lines: storeLines()}
	case "2":
		return o.executeTradeBrowseList(ctx, s)
	case "3":
		s.mode = modeTradeSearch{}
		return &ExecuteOutput{Lines: []string{"Use 'search <wallet>' or 'search_player <name>', or 'back'."}}
	case "cancel":
		s.mode = modeIdle{}
		return &ExecuteOutput{Lines: []string{"Maybe another time."}}
	}
	return &ExecuteOutput{Lines: []string{"Pick 1, 2 or 3, or 'cancel'."}}
}

func (o *orchestrator) executeTradeBrowseList(ctx context.Context, s *Session) *ExecuteOutput {
	listed, err := o.profileRepo.List(ctx, profile.ListInput{})
	if err != nil {
		slog.WarnContext(ctx, "failed to list players", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to fetch the player list. Try again."}}
	}

	players := make([]*realm.PlayerProfile, 0, len(listed.Profiles))
	for _, p := range listed.Profiles {
		if p.Wallet == s.wallet || p.Name == "" {
			continue
		}
		players = append(players, p)
	}
	if len(players) == 0 {
		s.mode = modeTradeMenu{}
		return &ExecuteOutput{Lines: []string{"No other conquerors found yet."}}
	}

	s.mode = modeTradeBrowse{players: players}
	lines := []string{"Conquerors of the realm:"}
	for i, p := range players {
		status := ""
		if s.isOnline(p.Wallet) {
			status = " [online]"
		}
		lines = append(lines, fmt.Sprintf("  %d. %s (level %d)%s", i+1, p.Name, p.Level, status))
	}
	lines = append(lines, "Use 'select <n>' to trade, or 'back'.")
	return &ExecuteOutput{Lines: lines}
}

func (o *orchestrator) executeTradeBrowse(ctx context.Context, s *Session, mode modeTradeBrowse, fields []string) *ExecuteOutput {
	switch fields[0] {
	case "select":
		if len(fields) != 2 {
			return &ExecuteOutput{Lines: []string{"Use 'select <n>'."}}
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > len(mode.players) {
			return &ExecuteOutput{Lines: []string{fmt.Sprintf("Pick a number between 1 and %d.", len(mode.players))}}
		}
		return o.enterNegotiation(s, mode.players[n-1])
	case "back", "cancel":
		s.mode = modeTradeMenu{}
		return &ExecuteOutput{Lines: tradeMenuLines()}
	}
	return &ExecuteOutput{Lines: []string{"Use 'select <n>' to trade, or 'back'."}}
}

func (o *orchestrator) executeTradeSearch(ctx context.Context, s *Session, line string, fields []string) *ExecuteOutput {
	switch fields[0] {
	case "search":
		if len(fields) < 2 {
			return &ExecuteOutput{Lines: []string{"Use 'search <wallet>'."}}
		}
		// Wallet keys are case-sensitive, so take the raw argument.
		wallet := strings.TrimSpace(line[len("search"):])
		if wallet == s.wallet {
			return &ExecuteOutput{Lines: []string{"That's your own wallet."}}
		}
		got, err := o.profileRepo.Get(ctx, profile.GetInput{Wallet: wallet})
		if err != nil {
			if errors.IsNotFound(err) {
				return &ExecuteOutput{Lines: []string{"No conqueror at that address."}}
			}
			slog.WarnContext(ctx, "failed to look up player", "error", err)
			return &ExecuteOutput{Lines: []string{"Failed to search. Try again."}}
		}
		return o.enterNegotiation(s, got.Profile)

	case "search_player":
		if len(fields) < 2 {
			return &ExecuteOutput{Lines: []string{"Use 'search_player <name>'."}}
		}
		term := strings.ToLower(strings.TrimSpace(line[len("search_player"):]))
		listed, err := o.profileRepo.List(ctx, profile.ListInput{})
		if err != nil {
			slog.WarnContext(ctx, "failed to list players", "error", err)
			return &ExecuteOutput{Lines: []string{"Failed to search. Try again."}}
		}
		var matches []*realm.PlayerProfile
		for _, p := range listed.Profiles {
			if p.Wallet == s.wallet {
				continue
			}
			if strings.Contains(strings.ToLower(p.Name), term) {
				matches = append(matches, p)
			}
		}
		if len(matches) == 0 {
			return &ExecuteOutput{Lines: []string{"No conqueror by that name."}}
		}
		s.mode = modeTradeBrowse{players: matches}
		lines := []string{"Found:"}
		for i, p := range matches {
			lines = append(lines, fmt.Sprintf("  %d. %s (level %d)", i+1, p.Name, p.Level))
		}
		lines = append(lines, "Use 'select <n>' to trade, or 'back'.")
		return &ExecuteOutput{Lines: lines}

	case "back", "cancel":
		s.mode = modeTradeMenu{}
		return &ExecuteOutput{Lines: tradeMenuLines()}
	}
	return &ExecuteOutput{Lines: []string{"Use 'search <wallet>' or 'search_player <name>', or 'back'."}}
}

func (o *orchestrator) enterNegotiation(s *Session, partner *realm.PlayerProfile) *ExecuteOutput {
	s.mode = modeTradeNegotiate{partner: partner}
	lines := []string{fmt.Sprintf("Trading with %s (%s).", partner.Name, partner.Wallet)}
	lines = append(lines, inventoryLines(s.profile)...)
	lines = append(lines, "Use 'offer <item#> <gold>' (item# 0 for gold only), or 'cancel'.")
	return &ExecuteOutput{Lines: lines}
}

func (o *orchestrator) executeTradeNegotiate(ctx context.Context, s *Session, mode modeTradeNegotiate, fields []string) *ExecuteOutput {
	switch fields[0] {
	case "offer":
		if len(fields) != 3 {
			return &ExecuteOutput{Lines: []string{"Use 'offer <item#> <gold>'."}}
		}
		itemNo, err1 := strconv.Atoi(fields[1])
		gold, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			return &ExecuteOutput{Lines: []string{"Use 'offer <item#> <gold>'."}}
		}
		return o.executeOffer(ctx, s, mode.partner, itemNo, gold)
	case "cancel", "back":
		s.mode = modeIdle{}
		return &ExecuteOutput{Lines: []string{"Trade abandoned."}}
	}
	return &ExecuteOutput{Lines: []string{"Use 'offer <item#> <gold>', or 'cancel'."}}
}

func (o *orchestrator) executeOffer(ctx context.Context, s *Session, partner *realm.PlayerProfile, itemNo, gold int) *ExecuteOutput {
	p := s.profile

	itemIndex := -1
	itemName := ""
	if itemNo != 0 {
		itemIndex = itemNo - 1
		if itemIndex < 0 || itemIndex >= len(p.Inventory) {
			return &ExecuteOutput{Lines: []string{fmt.Sprintf("You don't have an item number %d.", itemNo)}}
		}
		itemName = p.Inventory[itemIndex]
	}
	if gold < 0 || gold > p.Gold {
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("You only have %d gold.", p.Gold)}}
	}
	if itemIndex == -1 && gold == 0 {
		return &ExecuteOutput{Lines: []string{"Offer something: an item, gold, or both."}}
	}

	offer := &realm.TradeOffer{
		ID:         o.idgen.Generate(),
		From:       s.wallet,
		To:         partner.Wallet,
		ItemIndex:  itemIndex,
		ItemName:   itemName,
		GoldAmount: gold,
		Status:     realm.TradeStatusPending,
		CreatedAt:  o.clock.Now().Unix(),
	}
	if _, err := o.tradeRepo.Create(ctx, trade.CreateInput{Offer: offer}); err != nil {
		slog.WarnContext(ctx, "failed to create trade offer", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to send the offer. Try again."}}
	}

	s.mode = modeIdle{}
	return &ExecuteOutput{Lines: []string{fmt.Sprintf("Offer sent to %s: %s.", partner.Name, describeOfferContents(offer))}}
}

func describeOfferContents(t *realm.TradeOffer) string {
	switch {
	case t.ItemIndex >= 0 && t.GoldAmount > 0:
		return fmt.Sprintf("%s + %d gold", t.ItemName, t.GoldAmount)
	case t.ItemIndex >= 0:
		return t.ItemName
	default:
		return fmt.Sprintf("%d gold", t.GoldAmount)
	}
}

func (o *orchestrator) executeTrades(ctx context.Context, s *Session) *ExecuteOutput {
	listed, err := o.tradeRepo.ListPending(ctx, trade.ListPendingInput{Wallet: s.wallet})
	if err != nil {
		slog.WarnContext(ctx, "failed to list trades", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to fetch your trades. Try again."}}
	}
	if len(listed.Offers) == 0 {
		s.pendingTradeIDs = nil
		return &ExecuteOutput{Lines: []string{"No pending trades."}}
	}

	s.pendingTradeIDs = make([]string, len(listed.Offers))
	lines := []string{"Pending trades:"}
	for i, t := range listed.Offers {
		s.pendingTradeIDs[i] = t.ID
		if t.To == s.wallet {
			lines = append(lines, fmt.Sprintf("  %d. from %s: %s", i+1, t.From, describeOfferContents(t)))
		} else {
			lines = append(lines, fmt.Sprintf("  %d. to %s: %s", i+1, t.To, describeOfferContents(t)))
		}
	}
	lines = append(lines, "Use 'accept <n>' or 'decline <n>'.")
	return &ExecuteOutput{Lines: lines}
}

func (s *Session) pendingTradeID(fields []string) (string, bool) {
	if len(fields) != 2 {
		return "", false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(s.pendingTradeIDs) {
		return "", false
	}
	return s.pendingTradeIDs[n-1], true
}

func (o *orchestrator) executeAccept(ctx context.Context, s *Session, fields []string) *ExecuteOutput {
	id, ok := s.pendingTradeID(fields)
	if !ok {
		return &ExecuteOutput{Lines: []string{"No such trade. Use 'trades' to list them first."}}
	}

	got, err := o.tradeRepo.Get(ctx, trade.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ExecuteOutput{Lines: []string{"That trade no longer exists."}}
		}
		slog.WarnContext(ctx, "failed to load trade", "trade_id", id, "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to load the trade. Try again."}}
	}
	offer := got.Offer

	if offer.Status != realm.TradeStatusPending {
		return &ExecuteOutput{Lines: []string{"That trade was already resolved."}}
	}
	if offer.To != s.wallet {
		return &ExecuteOutput{Lines: []string{"You can only accept trades sent to you."}}
	}

	// Re-read both parties at acceptance time; the sender's inventory and
	// purse may have moved since the offer was made.
	senderGot, err := o.profileRepo.Get(ctx, profile.GetInput{Wallet: offer.From})
	if err != nil {
		slog.WarnContext(ctx, "failed to load sender profile", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to load the sender's profile. Try again."}}
	}
	receiverGot, err := o.profileRepo.Get(ctx, profile.GetInput{Wallet: s.wallet})
	if err != nil {
		slog.WarnContext(ctx, "failed to load profile", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to load your profile. Try again."}}
	}
	sender, receiver := senderGot.Profile, receiverGot.Profile

	itemIdx := -1
	if offer.ItemIndex >= 0 {
		itemIdx = sender.IndexOfItem(offer.ItemName)
		if itemIdx < 0 {
			return &ExecuteOutput{Lines: []string{fmt.Sprintf("%s no longer has the %s.", senderName(sender), offer.ItemName)}}
		}
	}
	if sender.Gold < offer.GoldAmount {
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("%s can no longer cover the %d gold.", senderName(sender), offer.GoldAmount)}}
	}

	sender.Gold -= offer.GoldAmount
	receiver.Gold += offer.GoldAmount
	if itemIdx >= 0 {
		sender.RemoveItem(itemIdx)
		receiver.Inventory = append(receiver.Inventory, offer.ItemName)
	}

	// Best effort across two documents; there is no transaction here.
	if _, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: sender}); err != nil {
		slog.WarnContext(ctx, "failed to save sender profile", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to complete the trade. Try again."}}
	}
	if _, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: receiver}); err != nil {
		slog.WarnContext(ctx, "failed to save profile", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to complete the trade. Try again."}}
	}

	offer.Status = realm.TradeStatusCompleted
	offer.CompletedAt = o.clock.Now().Unix()
	if _, err := o.tradeRepo.Update(ctx, trade.UpdateInput{Offer: offer}); err != nil {
		slog.WarnContext(ctx, "failed to resolve trade", "trade_id", offer.ID, "error", err)
	}

	s.profile = receiver
	return &ExecuteOutput{Lines: []string{fmt.Sprintf("Trade complete! You receive %s from %s.", describeOfferContents(offer), senderName(sender))}}
}

func (o *orchestrator) executeDecline(ctx context.Context, s *Session, fields []string) *ExecuteOutput {
	id, ok := s.pendingTradeID(fields)
	if !ok {
		return &ExecuteOutput{Lines: []string{"No such trade. Use 'trades' to list them first."}}
	}

	got, err := o.tradeRepo.Get(ctx, trade.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ExecuteOutput{Lines: []string{"That trade no longer exists."}}
		}
		slog.WarnContext(ctx, "failed to load trade", "trade_id", id, "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to load the trade. Try again."}}
	}
	offer := got.Offer

	if offer.Status != realm.TradeStatusPending {
		return &ExecuteOutput{Lines: []string{"That trade was already resolved."}}
	}
	if !offer.Involves(s.wallet) {
		return &ExecuteOutput{Lines: []string{"That's not your trade."}}
	}

	offer.Status = realm.TradeStatusDeclined
	offer.CompletedAt = o.clock.Now().Unix()
	if _, err := o.tradeRepo.Update(ctx, trade.UpdateInput{Offer: offer}); err != nil {
		slog.WarnContext(ctx, "failed to decline trade", "trade_id", offer.ID, "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to decline the trade. Try again."}}
	}

	return &ExecuteOutput{Lines: []string{"Trade declined."}}
}

func senderName(p *realm.PlayerProfile) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Wallet
}
