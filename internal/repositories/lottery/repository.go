// Package lottery stores entries for the weekly community draw, indexed by
// draw date so a whole draw can be loaded at once.
package lottery

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=lotterymock -source=repository.go

// Repository manages lottery entry persistence.
type Repository interface {
	// Create stores a new entry. Returns an error if the ID already exists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an entry by ID.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the current state of an existing entry.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// ListByDraw returns all entries for a draw date, oldest first.
	ListByDraw(ctx context.Context, input ListByDrawInput) (*ListByDrawOutput, error)
}

// CreateInput holds the entry to store.
type CreateInput struct {
	Entry *community.LotteryEntry
}

// CreateOutput is empty but exists for future expansion.
type CreateOutput struct{}

// GetInput identifies the entry to fetch.
type GetInput struct {
	ID string
}

// GetOutput contains the fetched entry.
type GetOutput struct {
	Entry *community.LotteryEntry
}

// SaveInput holds the entry to persist.
type SaveInput struct {
	Entry *community.LotteryEntry
}

// SaveOutput is empty but exists for future expansion.
type SaveOutput struct{}

// ListByDrawInput identifies the draw to load.
type ListByDrawInput struct {
	DrawDate int64
}

// ListByDrawOutput contains the draw's entries.
type ListByDrawOutput struct {
	Entries []*community.LotteryEntry
}
