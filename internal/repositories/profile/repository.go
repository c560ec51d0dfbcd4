// Package profile provides the repository for player save documents, keyed
// by wallet address.
package profile

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock -source=repository.go

// CreateInput contains parameters for creating a player profile.
type CreateInput struct {
	Password string
	Profile  *realm.PlayerProfile
}

// CreateOutput contains the result of creating a player profile.
type CreateOutput struct {
	Profile *realm.PlayerProfile
}

// GetInput contains parameters for retrieving a player profile.
type GetInput struct {
	Wallet string
}

// GetOutput contains the retrieved profile plus the stored password, which
// the login flow compares directly.
type GetOutput struct {
	Profile  *realm.PlayerProfile
	Password string
}

// SaveInput contains parameters for persisting a mutated profile. The
// stored password is preserved; writes are last-write-wins.
type SaveInput struct {
	Profile *realm.PlayerProfile
}

// SaveOutput contains the result of saving a profile.
type SaveOutput struct {
	Profile *realm.PlayerProfile
}

// ListInput contains parameters for listing profiles.
type ListInput struct{}

// ListOutput contains every known profile.
type ListOutput struct {
	Profiles []*realm.PlayerProfile
}

// TopInput contains parameters for the gold leaderboard.
type TopInput struct {
	Limit int
}

// TopOutput contains the leaderboard entries, richest first.
type TopOutput struct {
	Profiles []*realm.PlayerProfile
}

// Repository defines storage operations for player profiles.
type Repository interface {
	// Create stores a brand-new profile; it fails with AlreadyExists if
	// the wallet already has a save document.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a profile by wallet key.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists a mutated profile and refreshes the gold leaderboard.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every profile, for trade browsing and search.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Top returns the richest profiles in descending gold order.
	Top(ctx context.Context, input TopInput) (*TopOutput, error)
}
