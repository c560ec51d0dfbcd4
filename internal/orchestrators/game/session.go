package game

import (
	"sync"

	"github.com/cryptoconquerors/realm-api/internal/content"
	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
)

// authPhase tracks where a session is in the login and creation flow.
type authPhase int

const (
	phaseAwaitingWallet authPhase = iota
	phaseAwaitingPassword
	phaseNeedsName
	phaseNeedsHouse
	phaseReady
)

// sessionMode is what the interpreter is currently waiting on. Exactly one
// mode is active at a time, which keeps contradictory sub-states (in a
// battle while browsing trades, say) unrepresentable.
type sessionMode interface{ isMode() }

type modeIdle struct{}

type modeDistrictChoice struct {
	options []content.District
}

type modeBattle struct {
	enemy battleEnemy
}

type modeTradeMenu struct{}

type modeTradeBrowse struct {
	players []*realm.PlayerProfile
}

type modeTradeSearch struct{}

type modeTradeNegotiate struct {
	partner *realm.PlayerProfile
}

func (modeIdle) isMode()           {}
func (modeDistrictChoice) isMode() {}
func (modeBattle) isMode()         {}
func (modeTradeMenu) isMode()      {}
func (modeTradeBrowse) isMode()    {}
func (modeTradeSearch) isMode()    {}
func (modeTradeNegotiate) isMode() {}

// battleEnemy is a session-local copy of an enemy or boss template. Its HP
// is tracked here; the content tables stay immutable.
type battleEnemy struct {
	name   string
	hp     int
	attack int
	gold   int
	boss   bool
}

// Session is the ephemeral per-connection state for one player. It is
// mutated only by Execute, which the caller drives one command at a time;
// the online-player cache is the sole field shared with the presence
// publisher goroutine.
type Session struct {
	wallet  string
	profile *realm.PlayerProfile

	auth authPhase
	mode sessionMode

	// One-shot checkpoint rewards, consumed by talk / explore.
	npc             *content.NPC
	explorationSpot string

	// Small-integer index for accept <n> / decline <n>, rebuilt by the
	// trades command.
	pendingTradeIDs []string

	mu     sync.Mutex
	online []*realm.Presence
}

// Greeting returns the lines shown when the session opens.
func (s *Session) Greeting() []string {
	return []string{
		"Welcome to Crypto Conquerors, the realm of the $MINE faithful.",
		"Enter your wallet address to begin.",
	}
}

// Ready reports whether login and character creation are complete.
func (s *Session) Ready() bool {
	return s.auth == phaseReady
}

// Wallet returns the wallet key entered at login, or "" before that.
func (s *Session) Wallet() string {
	return s.wallet
}

// Profile returns the player's save state, or nil before authentication.
func (s *Session) Profile() *realm.PlayerProfile {
	return s.profile
}

// Battle returns the current enemy's name and remaining HP when a battle is
// active.
func (s *Session) Battle() (name string, hp int, ok bool) {
	b, isBattle := s.mode.(modeBattle)
	if !isBattle {
		return "", 0, false
	}
	return b.enemy.name, b.enemy.hp, true
}

// OnlinePlayers returns the latest presence snapshot from the heartbeat
// loop.
func (s *Session) OnlinePlayers() []*realm.Presence {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*realm.Presence, len(s.online))
	copy(out, s.online)
	return out
}

func (s *Session) setOnline(players []*realm.Presence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = players
}

func (s *Session) isOnline(wallet string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.online {
		if p.Wallet == wallet {
			return true
		}
	}
	return false
}
