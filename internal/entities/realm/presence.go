package realm

import "time"

// OnlineWindow is how recent a heartbeat must be for a player to count as
// online.
const OnlineWindow = 5 * time.Minute

// Presence is the lightweight heartbeat document written for each active
// session. It only feeds the "who's online" list offered during trade
// browsing and is never authoritative for gameplay.
type Presence struct {
	Wallet     string `json:"wallet"`
	Name       string `json:"name"`
	District   string `json:"district,omitempty"`
	LastActive int64  `json:"lastActive"`
}

// Online reports whether the heartbeat is within the online window as of now.
func (p *Presence) Online(now time.Time) bool {
	return now.Unix()-p.LastActive <= int64(OnlineWindow/time.Second)
}
