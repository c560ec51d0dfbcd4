package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cryptoconquerors/realm-api/internal/content"
	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
	"github.com/cryptoconquerors/realm-api/internal/errors"
	"github.com/cryptoconquerors/realm-api/internal/repositories/profile"
)

var travelFlavor = []string{
	"The tunnels echo with distant pickaxes.",
	"A cold draft carries the smell of ore and old coin.",
	"You step over rubble left by earlier conquerors.",
	"Faded $MINE banners flutter from the support beams.",
}

func (o *orchestrator) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	s := input.Session
	line := strings.TrimSpace(input.Line)

	if s.auth != phaseReady {
		return o.executeAuth(ctx, s, line), nil
	}

	lower := strings.ToLower(line)
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return &ExecuteOutput{}, nil
	}
	cmd := fields[0]

	switch mode := s.mode.(type) {
	case modeDistrictChoice:
		return o.executeDistrictChoice(ctx, s, mode, lower), nil
	case modeBattle:
		return o.executeBattle(ctx, s, mode, cmd), nil
	case modeTradeMenu:
		return o.executeTradeMenu(ctx, s, lower), nil
	case modeTradeBrowse:
		return o.executeTradeBrowse(ctx, s, mode, fields), nil
	case modeTradeSearch:
		return o.executeTradeSearch(ctx, s, line, fields), nil
	case modeTradeNegotiate:
		return o.executeTradeNegotiate(ctx, s, mode, fields), nil
	}

	switch cmd {
	case "help":
		return &ExecuteOutput{Lines: helpLines()}, nil
	case "stats":
		return &ExecuteOutput{Lines: statsLines(s.profile)}, nil
	case "inventory":
		return &ExecuteOutput{Lines: inventoryLines(s.profile)}, nil
	case "leaderboard":
		return o.executeLeaderboard(ctx), nil
	case "start":
		return o.executeStart(s), nil
	case "run":
		return o.executeRun(ctx, s), nil
	case "look":
		return o.executeLook(s), nil
	case "talk":
		return o.executeTalk(ctx, s), nil
	case "explore":
		return o.executeExplore(ctx, s), nil
	case "heal":
		return o.executeHeal(ctx, s), nil
	case "store":
		return &ExecuteOutput{Lines: storeLines()}, nil
	case "buy":
		return o.executeBuy(ctx, s, strings.TrimSpace(line[len("buy"):])), nil
	case "trade":
		s.mode = modeTradeMenu{}
		return &ExecuteOutput{Lines: tradeMenuLines()}, nil
	case "trades":
		return o.executeTrades(ctx, s), nil
	case "accept":
		return o.executeAccept(ctx, s, fields), nil
	case "decline":
		return o.executeDecline(ctx, s, fields), nil
	case "attack", "flee":
		return &ExecuteOutput{Lines: []string{"There's nothing to fight here."}}, nil
	case "quit":
		name := s.profile.Name
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("Farewell, %s. The realm awaits your return.", name)}, Quit: true}, nil
	}

	return unknownCommand(), nil
}

func unknownCommand() *ExecuteOutput {
	return &ExecuteOutput{Lines: []string{"Unknown command. Type 'help' to see what you can do."}}
}

// --- authentication and character creation ---

func (o *orchestrator) executeAuth(ctx context.Context, s *Session, line string) *ExecuteOutput {
	switch s.auth {
	case phaseAwaitingWallet:
		if line == "" {
			return &ExecuteOutput{Lines: []string{"Enter your wallet address to begin."}}
		}
		s.wallet = line
		s.auth = phaseAwaitingPassword
		return &ExecuteOutput{Lines: []string{"Enter your password."}}

	case phaseAwaitingPassword:
		return o.executePassword(ctx, s, line)

	case phaseNeedsName:
		n := utf8.RuneCountInString(line)
		if n < nameMinLen || n > nameMaxLen {
			return &ExecuteOutput{Lines: []string{fmt.Sprintf("Your name must be %d to %d characters.", nameMinLen, nameMaxLen)}}
		}
		s.profile.Name = line
		s.auth = phaseNeedsHouse
		lines := o.saveProfile(ctx, s, []string{fmt.Sprintf("Well met, %s.", line)})
		return &ExecuteOutput{Lines: append(lines, houseChoiceLines()...)}

	case phaseNeedsHouse:
		house, ok := realm.ParseHouse(line)
		if !ok {
			return &ExecuteOutput{Lines: []string{"Choose one of: Dragon, Phoenix, Griffin, Serpent."}}
		}
		p := s.profile
		bonus := content.BonusForHouse(house)
		p.House = house
		p.Attack += bonus.Attack
		p.MaxHP += bonus.MaxHP
		p.Defense += bonus.Defense
		p.HP = p.MaxHP
		p.Gold += content.StartingGold
		p.Inventory = content.StartingInventory()
		s.auth = phaseReady
		lines := []string{
			fmt.Sprintf("House %s welcomes you!", house),
			fmt.Sprintf("You receive %d gold and a starter kit.", content.StartingGold),
			"Type 'help' to see what you can do, or 'start' to enter a district.",
		}
		return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
	}

	return unknownCommand()
}

func (o *orchestrator) executePassword(ctx context.Context, s *Session, password string) *ExecuteOutput {
	got, err := o.profileRepo.Get(ctx, profile.GetInput{Wallet: s.wallet})
	if err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to load profile", "wallet", s.wallet, "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to reach the realm. Try again."}}
	}

	if err == nil {
		if got.Password != password {
			return &ExecuteOutput{Lines: []string{"Incorrect password."}}
		}
		s.profile = got.Profile
		switch {
		case s.profile.Name == "":
			s.auth = phaseNeedsName
			return &ExecuteOutput{Lines: []string{fmt.Sprintf("Choose your name (%d-%d characters).", nameMinLen, nameMaxLen)}}
		case s.profile.House == "":
			s.auth = phaseNeedsHouse
			return &ExecuteOutput{Lines: houseChoiceLines()}
		default:
			s.auth = phaseReady
			return &ExecuteOutput{Lines: []string{
				fmt.Sprintf("Welcome back, %s of House %s!", s.profile.Name, s.profile.House),
				"Type 'help' to see what you can do.",
			}}
		}
	}

	// New wallet: the entered line becomes the stored password.
	if utf8.RuneCountInString(password) < passwordMinLen {
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("Choose a password of at least %d characters.", passwordMinLen)}}
	}
	now := o.clock.Now().Unix()
	p := &realm.PlayerProfile{
		Wallet:    s.wallet,
		Level:     1,
		HP:        content.BaseMaxHP,
		MaxHP:     content.BaseMaxHP,
		Attack:    content.BaseAttack,
		Defense:   content.BaseDefense,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := o.profileRepo.Create(ctx, profile.CreateInput{Password: password, Profile: p}); err != nil {
		slog.WarnContext(ctx, "failed to create profile", "wallet", s.wallet, "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to create your profile. Try again."}}
	}
	s.profile = p
	s.auth = phaseNeedsName
	return &ExecuteOutput{Lines: []string{
		"A new conqueror rises!",
		fmt.Sprintf("Choose your name (%d-%d characters).", nameMinLen, nameMaxLen),
	}}
}

func houseChoiceLines() []string {
	return []string{
		"Choose your house:",
		"  Dragon  - fierce attackers",
		"  Phoenix - reborn in flame",
		"  Griffin - unmatched endurance",
		"  Serpent - strike first, strike hard",
	}
}

// --- districts and exploration ---

func (o *orchestrator) executeStart(s *Session) *ExecuteOutput {
	p := s.profile
	if p.CurrentDistrict != "" {
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("You're already conquering %s. Use 'run' to push deeper.", p.CurrentDistrict)}}
	}
	options := o.content.Unlockable(p.CompletedDistricts)
	s.mode = modeDistrictChoice{options: options}
	lines := []string{"Choose a district to conquer:"}
	for i, d := range options {
		marker := ""
		if p.HasCompleted(d.Name) {
			marker = " (conquered)"
		}
		lines = append(lines, fmt.Sprintf("  %d. %s%s", i+1, d.Name, marker))
	}
	lines = append(lines, "Type a number, or 'cancel'.")
	return &ExecuteOutput{Lines: lines}
}

func (o *orchestrator) executeDistrictChoice(ctx context.Context, s *Session, mode modeDistrictChoice, lower string) *ExecuteOutput {
	if lower == "cancel" {
		s.mode = modeIdle{}
		return &ExecuteOutput{Lines: []string{"Maybe another time."}}
	}
	n, err := strconv.Atoi(lower)
	if err != nil || n < 1 || n > len(mode.options) {
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("Pick a number between 1 and %d, or 'cancel'.", len(mode.options))}}
	}
	d := mode.options[n-1]
	p := s.profile
	p.CurrentDistrict = d.Name
	p.DistrictProgress = 0
	p.HP = p.MaxHP
	s.mode = modeIdle{}
	s.npc = nil
	s.explorationSpot = ""
	lines := []string{
		fmt.Sprintf("You enter %s.", d.Name),
		d.Description,
		"Use 'run' to advance.",
	}
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

func (o *orchestrator) executeRun(ctx context.Context, s *Session) *ExecuteOutput {
	p := s.profile
	if p.CurrentDistrict == "" {
		return &ExecuteOutput{Lines: []string{"You're not in a district. Use 'start' first."}}
	}
	d, ok := o.content.DistrictByName(p.CurrentDistrict)
	if !ok {
		// Save data referencing a district that no longer exists.
		p.CurrentDistrict = ""
		p.DistrictProgress = 0
		return &ExecuteOutput{Lines: o.saveProfile(ctx, s, []string{"This district has collapsed. Use 'start' to pick another."})}
	}

	p.DistrictProgress += progressStep
	if p.DistrictProgress > 100 {
		p.DistrictProgress = 100
	}
	lines := []string{fmt.Sprintf("You press deeper into %s. Progress: %d%%.", d.Name, p.DistrictProgress)}

	if p.DistrictProgress == 100 {
		// The boss always blocks the final stretch.
		s.mode = modeBattle{enemy: battleEnemy{
			name:   d.Boss.Name,
			hp:     d.Boss.HP,
			attack: d.Boss.Attack,
			gold:   d.Boss.Gold,
			boss:   true,
		}}
		lines = append(lines, fmt.Sprintf("%s, ruler of %s, blocks your path!", d.Boss.Name, d.Name))
		for _, say := range d.Boss.Dialogue {
			lines = append(lines, fmt.Sprintf("%s: \"%s\"", d.Boss.Name, say))
		}
		lines = append(lines, "Fight with 'attack' or try to 'flee'.")
		return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
	}

	if o.roller.Chance(encounterChancePct) {
		e := d.Enemies[o.roller.RollRange(0, len(d.Enemies)-1)]
		s.mode = modeBattle{enemy: battleEnemy{
			name:   e.Name,
			hp:     e.HP,
			attack: e.Attack,
			gold:   e.Gold,
		}}
		lines = append(lines, fmt.Sprintf("A %s lunges at you! Fight with 'attack' or try to 'flee'.", e.Name))
	} else {
		lines = append(lines, travelFlavor[o.roller.RollRange(0, len(travelFlavor)-1)])
	}

	if p.DistrictProgress%npcCheckpoint == 0 && len(d.NPCs) > 0 {
		npc := d.NPCs[o.roller.RollRange(0, len(d.NPCs)-1)]
		s.npc = &npc
		lines = append(lines, fmt.Sprintf("%s waves you over. Use 'talk'.", npc.Name))
	}
	if p.DistrictProgress%exploreCheckpoint == 0 && len(d.Exploration) > 0 {
		s.explorationSpot = d.Exploration[o.roller.RollRange(0, len(d.Exploration)-1)]
		lines = append(lines, fmt.Sprintf("You notice %s. Use 'explore'.", s.explorationSpot))
	}

	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

func (o *orchestrator) executeLook(s *Session) *ExecuteOutput {
	p := s.profile
	if p.CurrentDistrict == "" {
		return &ExecuteOutput{Lines: []string{"You're at the realm gates. Use 'start' to enter a district."}}
	}
	d, _ := o.content.DistrictByName(p.CurrentDistrict)
	lines := []string{
		fmt.Sprintf("%s - progress %d%%.", d.Name, p.DistrictProgress),
		d.Description,
	}
	if s.npc != nil {
		lines = append(lines, fmt.Sprintf("%s is waiting to 'talk'.", s.npc.Name))
	}
	if s.explorationSpot != "" {
		lines = append(lines, fmt.Sprintf("%s looks worth an 'explore'.", s.explorationSpot))
	}
	return &ExecuteOutput{Lines: lines}
}

func (o *orchestrator) executeTalk(ctx context.Context, s *Session) *ExecuteOutput {
	if s.npc == nil {
		return &ExecuteOutput{Lines: []string{"There's no one to talk to right now."}}
	}
	npc := s.npc
	s.npc = nil
	say := npc.Dialogue[o.roller.RollRange(0, len(npc.Dialogue)-1)]
	reward := o.roller.RollRange(npcRewardMin, npcRewardMax)
	s.profile.Gold += reward
	lines := []string{
		fmt.Sprintf("%s: \"%s\"", npc.Name, say),
		fmt.Sprintf("%s slips you %d gold.", npc.Name, reward),
	}
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

func (o *orchestrator) executeExplore(ctx context.Context, s *Session) *ExecuteOutput {
	if s.explorationSpot == "" {
		return &ExecuteOutput{Lines: []string{"Nothing worth exploring right now."}}
	}
	spot := s.explorationSpot
	s.explorationSpot = ""
	reward := o.roller.RollRange(exploreRewardMin, exploreRewardMax)
	s.profile.Gold += reward
	lines := []string{fmt.Sprintf("You search %s and find %d gold!", spot, reward)}
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

// --- shop and healing ---

func (o *orchestrator) executeHeal(ctx context.Context, s *Session) *ExecuteOutput {
	p := s.profile
	idx := p.IndexOfItem(content.ItemHealthPotion)
	if idx < 0 {
		return &ExecuteOutput{Lines: []string{"You have no Health Potion. Buy one at the 'store'."}}
	}
	if p.HP >= p.MaxHP {
		return &ExecuteOutput{Lines: []string{"You're already at full health."}}
	}
	p.RemoveItem(idx)
	p.HP += healAmount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	lines := []string{fmt.Sprintf("You drink a Health Potion. HP: %d/%d.", p.HP, p.MaxHP)}
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

func storeLines() []string {
	lines := []string{"The store offers:"}
	for _, it := range content.Shop() {
		lines = append(lines, fmt.Sprintf("  %s - %d gold (%s)", it.Name, it.Price, it.Description))
	}
	lines = append(lines, "Use 'buy <item name>'.")
	return lines
}

func (o *orchestrator) executeBuy(ctx context.Context, s *Session, itemName string) *ExecuteOutput {
	if itemName == "" {
		return &ExecuteOutput{Lines: []string{"Buy what? Use 'buy <item name>'."}}
	}
	item, ok := content.ShopItemByName(itemName)
	if !ok {
		return &ExecuteOutput{Lines: []string{"The store doesn't sell that."}}
	}
	p := s.profile
	if p.Gold < item.Price {
		return &ExecuteOutput{Lines: []string{fmt.Sprintf("You can't afford the %s (%d gold).", item.Name, item.Price)}}
	}
	p.Gold -= item.Price
	p.Inventory = append(p.Inventory, item.Name)
	lines := []string{fmt.Sprintf("You buy a %s. Gold left: %d.", item.Name, p.Gold)}
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

// --- informational renders ---

func helpLines() []string {
	return []string{
		"Commands:",
		"  start            choose a district to conquer",
		"  run              advance through the district",
		"  look             survey your surroundings",
		"  talk / explore   claim checkpoint rewards",
		"  attack / flee    resolve a battle",
		"  heal             drink a Health Potion",
		"  store / buy      shop for potions",
		"  trade / trades   deal with other players",
		"  accept <n> / decline <n>   resolve a pending trade",
		"  stats / inventory / leaderboard",
		"  quit             leave the realm",
	}
}

func statsLines(p *realm.PlayerProfile) []string {
	lines := []string{
		fmt.Sprintf("%s of House %s (level %d)", p.Name, p.House, p.Level),
		fmt.Sprintf("HP %d/%d  ATK %d  DEF %d", p.HP, p.MaxHP, p.Attack, p.Defense),
		fmt.Sprintf("Gold: %d", p.Gold),
	}
	if p.CurrentDistrict != "" {
		lines = append(lines, fmt.Sprintf("District: %s (%d%%)", p.CurrentDistrict, p.DistrictProgress))
	}
	lines = append(lines, fmt.Sprintf("Districts conquered: %d", len(p.CompletedDistricts)))
	return lines
}

func inventoryLines(p *realm.PlayerProfile) []string {
	if len(p.Inventory) == 0 {
		return []string{"Your pack is empty."}
	}
	lines := []string{"Your pack:"}
	for i, it := range p.Inventory {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, it))
	}
	return lines
}

func (o *orchestrator) executeLeaderboard(ctx context.Context) *ExecuteOutput {
	top, err := o.profileRepo.Top(ctx, profile.TopInput{Limit: leaderboardSize})
	if err != nil {
		slog.WarnContext(ctx, "failed to load leaderboard", "error", err)
		return &ExecuteOutput{Lines: []string{"Failed to load the leaderboard. Try again."}}
	}
	if len(top.Profiles) == 0 {
		return &ExecuteOutput{Lines: []string{"The leaderboard is empty. Be the first!"}}
	}
	lines := []string{"Richest conquerors:"}
	for i, p := range top.Profiles {
		name := p.Name
		if name == "" {
			name = p.Wallet
		}
		lines = append(lines, fmt.Sprintf("  %d. %s - %d gold", i+1, name, p.Gold))
	}
	return &ExecuteOutput{Lines: lines}
}
