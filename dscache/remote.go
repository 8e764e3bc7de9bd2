package dscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Remote abstracts the minimal surface Cache needs from a shared cache
// backend: a Get/Set pair over strings. Mirrors the RedisEvaler shape in
// etalazz-vsa's persistence package, for the same reason -- Cache's public
// API never forces a go-redis import on callers that only want the
// in-process tier, and tests can supply a fake.
type Remote interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// LoggingRemote is a dependency-free stand-in that logs every call and
// always misses, so a Cache built with it transparently falls back to
// recomputation plus its in-process tier. Not for production use.
type LoggingRemote struct{}

func (LoggingRemote) Get(ctx context.Context, key string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	fmt.Printf("[dscache-demo] GET %s (miss)\n", key)
	return "", ErrMiss
}

func (LoggingRemote) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	fmt.Printf("[dscache-demo] SET %s (ttl=%s, %d bytes)\n", key, ttl, len(value))
	return nil
}

// GoRedisRemote wraps a github.com/redis/go-redis/v9 Ring client, sharding
// keys with rendezvous hashing (github.com/dgryski/go-rendezvous, pulled in
// transitively by redis.NewRing) across every configured address.
type GoRedisRemote struct{ ring *redis.Ring }

// NewGoRedisRemote builds a Ring client over addrs, naming shards
// shard0, shard1, ... in the order given.
func NewGoRedisRemote(addrs []string) *GoRedisRemote {
	shards := make(map[string]string, len(addrs))
	for i, addr := range addrs {
		shards[fmt.Sprintf("shard%d", i)] = addr
	}
	return &GoRedisRemote{ring: redis.NewRing(&redis.RingOptions{Addrs: shards})}
}

func (g *GoRedisRemote) Get(ctx context.Context, key string) (string, error) {
	v, err := g.ring.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return v, err
}

func (g *GoRedisRemote) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return g.ring.Set(ctx, key, value, ttl).Err()
}
