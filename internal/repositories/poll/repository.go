// Package poll stores community polls and their per-wallet votes.
package poll

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=pollmock -source=repository.go

// Repository manages poll persistence.
type Repository interface {
	// Create stores a new poll. Returns an error if the ID already exists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a poll by ID.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the current vote state of an existing poll.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a poll and its index entry.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns all polls, newest first.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput holds the poll to store.
type CreateInput struct {
	Poll *community.Poll
}

// CreateOutput is empty but exists for future expansion.
type CreateOutput struct{}

// GetInput identifies the poll to fetch.
type GetInput struct {
	ID string
}

// GetOutput contains the fetched poll.
type GetOutput struct {
	Poll *community.Poll
}

// SaveInput holds the poll to persist.
type SaveInput struct {
	Poll *community.Poll
}

// SaveOutput is empty but exists for future expansion.
type SaveOutput struct{}

// DeleteInput identifies the poll to remove.
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty but exists for future expansion.
type DeleteOutput struct{}

// ListInput is empty but exists for future expansion.
type ListInput struct{}

// ListOutput contains all stored polls.
type ListOutput struct {
	Polls []*community.Poll
}
