package directory

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/emailotp/internal/pkg/goerror"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
)

// DefaultRedisKey is the set holding the roster when no key is configured.
const DefaultRedisKey = "emailotp:directory"

type setMember interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// Redis looks addresses up in a Redis set with SISMEMBER.
type Redis struct {
	client setMember
	key    string
	retry  RetryOptions
	ins    instrument.Instrumentation
}

func NewRedis(client setMember, key string, retry RetryOptions, ins instrument.Instrumentation) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}

	return &Redis{client: client, key: key, retry: retry, ins: ins}
}

func (r *Redis) Contains(ctx context.Context, address string) (bool, error) {
	found, err := lookup(ctx, r.ins, "Redis.Contains", r.retry, func(ctx context.Context) (bool, error) {
		return r.client.SIsMember(ctx, r.key, address).Result()
	})
	if err != nil {
		return false, goerror.NewServer(err)
	}

	return found, nil
}
