// Package trade provides the repository for asynchronous trade offers
// between two player profiles.
package trade

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=trademock -source=repository.go

// CreateInput contains parameters for creating a trade offer. The ID and
// timestamps are assigned by the repository's caller.
type CreateInput struct {
	Offer *realm.TradeOffer
}

// CreateOutput contains the result of creating a trade offer.
type CreateOutput struct {
	Offer *realm.TradeOffer
}

// GetInput contains parameters for retrieving a trade offer.
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved trade offer.
type GetOutput struct {
	Offer *realm.TradeOffer
}

// UpdateInput contains parameters for resolving a trade offer.
type UpdateInput struct {
	Offer *realm.TradeOffer
}

// UpdateOutput contains the result of updating a trade offer.
type UpdateOutput struct {
	Offer *realm.TradeOffer
}

// ListPendingInput contains parameters for listing pending offers that
// involve a wallet as sender or receiver.
type ListPendingInput struct {
	Wallet string
}

// ListPendingOutput contains the pending offers, oldest first.
type ListPendingOutput struct {
	Offers []*realm.TradeOffer
}

// Repository defines storage operations for trade offers.
//
// There is no locking or versioning across resolve operations: two racing
// accepts can both observe a pending offer. Callers treat the store as
// last-write-wins.
type Repository interface {
	// Create stores a new offer and indexes it for both parties.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an offer by ID.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an offer document, typically to resolve it.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListPending returns the still-pending offers where the wallet is
	// either party, oldest first.
	ListPending(ctx context.Context, input ListPendingInput) (*ListPendingOutput, error)
}
