package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be handed either a
// real connection or a miniredis-backed one in tests
type Client interface {
	redis.UniversalClient
}

// Nil is returned by GET-style commands when the key does not exist
const Nil = redis.Nil
