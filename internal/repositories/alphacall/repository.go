// Package alphacall stores community alpha calls and their vote tallies.
package alphacall

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/community"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=alphacallmock -source=repository.go

// Repository manages alpha call persistence.
type Repository interface {
	// Create stores a new call. Returns an error if the ID already exists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a call by ID.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the current state of an existing call.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns all calls, hidden ones included, newest first. Callers
	// filter on visibility themselves.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput holds the call to store.
type CreateInput struct {
	Call *community.AlphaCall
}

// CreateOutput is empty but exists for future expansion.
type CreateOutput struct{}

// GetInput identifies the call to fetch.
type GetInput struct {
	ID string
}

// GetOutput contains the fetched call.
type GetOutput struct {
	Call *community.AlphaCall
}

// SaveInput holds the call to persist.
type SaveInput struct {
	Call *community.AlphaCall
}

// SaveOutput is empty but exists for future expansion.
type SaveOutput struct{}

// ListInput is empty but exists for future expansion.
type ListInput struct{}

// ListOutput contains all stored calls.
type ListOutput struct {
	Calls []*community.AlphaCall
}
