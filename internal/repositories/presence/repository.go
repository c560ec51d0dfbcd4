// Package presence provides the repository for player heartbeat documents.
package presence

import (
	"context"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=presencemock -source=repository.go

// PublishInput contains a heartbeat to write. LastActive is stamped by the
// repository.
type PublishInput struct {
	Wallet   string
	Name     string
	District string
}

// PublishOutput contains the written heartbeat.
type PublishOutput struct {
	Presence *realm.Presence
}

// ListOnlineInput contains parameters for listing online players.
type ListOnlineInput struct {
	// ExcludeWallet omits the caller's own heartbeat from the listing.
	ExcludeWallet string
}

// ListOnlineOutput contains heartbeats within the online window.
type ListOnlineOutput struct {
	Players []*realm.Presence
}

// Repository defines storage operations for presence heartbeats.
type Repository interface {
	// Publish upserts the caller's heartbeat with the online-window TTL.
	Publish(ctx context.Context, input PublishInput) (*PublishOutput, error)

	// ListOnline returns every heartbeat still within the online window.
	ListOnline(ctx context.Context, input ListOnlineInput) (*ListOnlineOutput, error)
}
