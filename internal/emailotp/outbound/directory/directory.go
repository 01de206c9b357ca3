package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DriverStatic selects the in-memory roster.
	DriverStatic = "static"
	// DriverRedis selects a Redis set.
	DriverRedis = "redis"
	// DriverPostgres selects a Postgres table.
	DriverPostgres = "postgres"
)

var (
	// ErrUnknownDriver indicates an unsupported directory driver.
	ErrUnknownDriver = errors.New("directory: unknown driver")
	// ErrMissingConnection indicates the selected driver has no client configured.
	ErrMissingConnection = errors.New("directory: connection not configured")
)

// Directory answers whether an address belongs to the roster. Lookups are
// exact and case-sensitive.
type Directory interface {
	Contains(ctx context.Context, address string) (bool, error)
}

// RetryOptions bounds lookups against remote rosters.
type RetryOptions struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries uint64
	// Base seeds the Fibonacci backoff.
	Base time.Duration
	// Cap limits a single delay.
	Cap time.Duration
}

func (o RetryOptions) backoff() retry.Backoff {
	base := o.Base
	if base <= 0 {
		base = 50 * time.Millisecond
	}

	b := retry.NewFibonacci(base)
	if o.Cap > 0 {
		b = retry.WithCappedDuration(o.Cap, b)
	}
	return retry.WithMaxRetries(o.MaxRetries, b)
}

// FactoryOptions groups configuration for directory drivers.
type FactoryOptions struct {
	Instrument instrument.Instrumentation
	Retry      RetryOptions

	// Addresses is the roster of the static driver.
	Addresses []string

	// RedisClient and RedisKey configure the redis driver.
	RedisClient *redis.Client
	RedisKey    string

	// PostgresPool and PostgresTable configure the postgres driver.
	PostgresPool  *pgxpool.Pool
	PostgresTable string
}

// NewFromDriver constructs a Directory implementation by driver name.
func NewFromDriver(driver string, opts FactoryOptions) (Directory, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverStatic, "":
		return NewStatic(opts.Addresses), nil
	case DriverRedis:
		if opts.RedisClient == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingConnection, driver)
		}
		return NewRedis(opts.RedisClient, opts.RedisKey, opts.Retry, opts.Instrument), nil
	case DriverPostgres:
		if opts.PostgresPool == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingConnection, driver)
		}
		return NewPostgres(opts.PostgresPool, opts.PostgresTable, opts.Retry, opts.Instrument), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}

// lookup runs fn with the retry policy; context errors are not retried.
func lookup(ctx context.Context, ins instrument.Instrumentation, spanName string, opts RetryOptions, fn func(context.Context) (bool, error)) (bool, error) {
	ctx, span := ins.Tracer("emailotp.outbound.directory").Start(ctx, spanName)
	defer span.End()

	var found bool
	err := retry.Do(ctx, opts.backoff(), func(ctx context.Context) error {
		ok, err := fn(ctx)
		if err == nil {
			found = ok
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		recordError(span, err)
		return false, err
	}

	return found, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
