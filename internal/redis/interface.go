package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers can swap in miniredis-backed
// or mocked clients in tests.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations.
type Pipeliner interface {
	redis.Pipeliner
}
