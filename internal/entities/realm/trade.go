package realm

// TradeStatus tracks the lifecycle of a trade offer.
type TradeStatus string

// Trade offer statuses. Offers only ever move from pending to one of the
// resolved states.
const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusCompleted TradeStatus = "completed"
	TradeStatusDeclined  TradeStatus = "declined"
)

// TradeOffer is an asynchronous proposal to exchange an inventory item
// and/or gold between two profiles. It is owned jointly by the two parties
// until resolved.
type TradeOffer struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`

	// ItemIndex is the 0-based index into the sender's inventory at offer
	// time, or -1 for a gold-only offer.
	ItemIndex int    `json:"itemIndex"`
	ItemName  string `json:"itemName,omitempty"`

	GoldAmount int `json:"goldAmount"`

	Status      TradeStatus `json:"status"`
	CreatedAt   int64       `json:"createdAt"`
	CompletedAt int64       `json:"completedAt,omitempty"`
}

// Involves reports whether wallet is a party to the offer.
func (t *TradeOffer) Involves(wallet string) bool {
	return t.From == wallet || t.To == wallet
}
