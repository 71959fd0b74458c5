package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers depend on our package
// and tests can substitute miniredis-backed clients
type Client interface {
	redis.UniversalClient
}
