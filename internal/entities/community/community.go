// Package community implements the entities behind the $MINE community
// surfaces: admin-curated polls, crowd-sourced alpha calls, and the weekly
// lottery.
package community

// Poll is an admin-created yes/no vote. Wallet keys in the vote maps record
// who voted which way; a wallet may appear in at most one of the two maps.
type Poll struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	EndDate     int64           `json:"endDate"`
	CreatedAt   int64           `json:"createdAt"`
	YesVotes    map[string]bool `json:"yesVotes,omitempty"`
	NoVotes     map[string]bool `json:"noVotes,omitempty"`
}

// HasVoted reports whether the wallet has already voted either way.
func (p *Poll) HasVoted(wallet string) bool {
	return p.YesVotes[wallet] || p.NoVotes[wallet]
}

// YesCount returns the number of yes votes.
func (p *Poll) YesCount() int { return len(p.YesVotes) }

// NoCount returns the number of no votes.
func (p *Poll) NoCount() int { return len(p.NoVotes) }

// CallStatus tracks the outcome of an alpha call.
type CallStatus string

// Alpha call statuses.
const (
	CallStatusPending    CallStatus = "pending"
	CallStatusSuccessful CallStatus = "successful"
	CallStatusFailed     CallStatus = "failed"
)

// HideDownvoteThreshold is the downvote count at which a call is hidden
// from listings (but kept in the store).
const HideDownvoteThreshold = 3

// AlphaCall is a community price call on a token, open for up/down voting
// until it resolves or is hidden.
type AlphaCall struct {
	ID          string     `json:"id"`
	Wallet      string     `json:"wallet"`
	TokenMint   string     `json:"tokenMint"`
	Description string     `json:"description"`
	EntryPrice  float64    `json:"entryPrice"`
	TargetPrice float64    `json:"targetPrice"`
	Timeframe   string     `json:"timeframe"`
	ExpiresAt   int64      `json:"expiresAt"`
	Status      CallStatus `json:"status"`
	Upvotes     int        `json:"upvotes"`
	Downvotes   int        `json:"downvotes"`
	Hidden      bool       `json:"hidden"`
	CreatedAt   int64      `json:"createdAt"`
}

// Visible reports whether the call should appear in listings.
func (c *AlphaCall) Visible() bool {
	return !c.Hidden && c.Downvotes < HideDownvoteThreshold
}

// EntryStatus tracks a lottery entry through the draw.
type EntryStatus string

// Lottery entry statuses.
const (
	EntryStatusPending EntryStatus = "pending"
	EntryStatusWinner  EntryStatus = "winner"
)

// LotteryEntry is one signup for the weekly draw. Each ticket is one slot in
// the uniform-weighted draw.
type LotteryEntry struct {
	ID              string      `json:"id"`
	DiscordUsername string      `json:"discordUsername"`
	XUsername       string      `json:"xUsername"`
	NumberOfTickets int         `json:"numberOfTickets"`
	SolscanLink     string      `json:"solscanLink"`
	DrawDate        int64       `json:"drawDate"`
	Verified        bool        `json:"verified"`
	Status          EntryStatus `json:"status"`
	CreatedAt       int64       `json:"createdAt"`
}
