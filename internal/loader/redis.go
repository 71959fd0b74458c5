package loader

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
	redisclient "github.com/KirkDiggler/talent-api/internal/redis"
)

// DefaultRedisKey is where the tree document is stored when no key is configured
const DefaultRedisKey = "talent_trees:config"

// RedisConfig holds the configuration for the Redis source
type RedisConfig struct {
	Client redisclient.Client
	Key    string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

// RedisSource reads the tree document stored as a single string value
type RedisSource struct {
	client redisclient.Client
	key    string
}

// NewRedisSource creates a Redis-backed source
func NewRedisSource(cfg *RedisConfig) (*RedisSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	return &RedisSource{
		client: cfg.Client,
		key:    key,
	}, nil
}

// Load fetches and decodes the document
func (s *RedisSource) Load(ctx context.Context) (map[string]entities.TreeDefinition, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no tree document at redis key %s", s.key).WithMeta("key", s.key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read tree document from redis")
	}

	defs, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode redis key %s", s.key)
	}
	return defs, nil
}

// Store checks that a raw document would load and writes it to the configured key
func (s *RedisSource) Store(ctx context.Context, data []byte) (int, error) {
	defs, err := Decode(data)
	if err != nil {
		return 0, err
	}
	if _, err := engine.New(nil).LoadTrees(defs); err != nil {
		return 0, err
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store tree document in redis")
	}
	return len(defs), nil
}

var _ Source = (*RedisSource)(nil)
