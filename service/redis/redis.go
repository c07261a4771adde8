package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/nftdash/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key exists without expiry
	ErrNoTTL = errors.New("redis: key has no ttl")
)

// Forever as expire keeps the key without ttl
const Forever = time.Duration(-1)

// Service is the small set of redis commands the service relies on
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining seconds of key
	TTL(c ctx.Ctx, key string) (int, error)
	Ping(c ctx.Ctx) error
}
