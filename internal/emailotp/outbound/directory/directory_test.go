package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/emailotp/internal/pkg/goerror"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
)

var errFlaky = errors.New("connection reset")

var fastRetry = RetryOptions{MaxRetries: 2, Base: time.Millisecond, Cap: 2 * time.Millisecond}

type fakeSet struct {
	members map[string]bool
	fails   int
	calls   int
	lastKey string
}

func (f *fakeSet) SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd {
	f.calls++
	f.lastKey = key
	if f.calls <= f.fails {
		return redis.NewBoolResult(false, errFlaky)
	}
	return redis.NewBoolResult(f.members[member.(string)], nil)
}

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.exists
	return nil
}

type fakeQuerier struct {
	rows  []fakeRow
	calls int
	sql   string
	args  []any
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql = sql
	f.args = args
	row := f.rows[min(f.calls, len(f.rows)-1)]
	f.calls++
	return row
}

func TestNewFromDriver(t *testing.T) {
	t.Parallel()

	ins := instrument.NewNoop()

	tests := []struct {
		name    string
		driver  string
		opts    FactoryOptions
		wantErr error
	}{
		{name: "static default", driver: "", opts: FactoryOptions{Instrument: ins}},
		{name: "static explicit", driver: " Static ", opts: FactoryOptions{Instrument: ins}},
		{name: "redis without client", driver: DriverRedis, opts: FactoryOptions{Instrument: ins}, wantErr: ErrMissingConnection},
		{name: "postgres without pool", driver: DriverPostgres, opts: FactoryOptions{Instrument: ins}, wantErr: ErrMissingConnection},
		{name: "unknown", driver: "ldap", opts: FactoryOptions{Instrument: ins}, wantErr: ErrUnknownDriver},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Act
			dir, err := NewFromDriver(tt.driver, tt.opts)

			// Assert
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := dir.(*Static); !ok {
				t.Fatalf("expected *Static, got %T", dir)
			}
		})
	}
}

func TestRedis_Contains_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	// Arrange
	set := &fakeSet{members: map[string]bool{"admin@dso.org.sg": true}, fails: 2}
	dir := NewRedis(set, "", fastRetry, instrument.NewNoop())

	// Act
	got, err := dir.Contains(context.Background(), "admin@dso.org.sg")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected member to be found")
	}
	if set.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", set.calls)
	}
	if set.lastKey != DefaultRedisKey {
		t.Fatalf("expected key %q, got %q", DefaultRedisKey, set.lastKey)
	}
}

func TestRedis_Contains_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	// Arrange
	set := &fakeSet{fails: 10}
	dir := NewRedis(set, "roster", fastRetry, instrument.NewNoop())

	// Act
	got, err := dir.Contains(context.Background(), "admin@dso.org.sg")

	// Assert
	if got {
		t.Fatal("expected false on error")
	}
	if !errors.Is(err, errFlaky) {
		t.Fatalf("expected wrapped flaky error, got %v", err)
	}
	if goerror.CodeOf(err) != goerror.CodeInternal {
		t.Fatalf("expected internal code, got %v", goerror.CodeOf(err))
	}
	if set.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", set.calls)
	}
}

func TestPostgres_Contains(t *testing.T) {
	t.Parallel()

	// Arrange
	q := &fakeQuerier{rows: []fakeRow{{err: errFlaky}, {exists: true}}}
	dir := NewPostgres(q, "auth.roster", fastRetry, instrument.NewNoop())

	// Act
	got, err := dir.Contains(context.Background(), "admin@dso.org.sg")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected address to exist")
	}
	if q.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", q.calls)
	}
	wantSQL := `SELECT EXISTS (SELECT 1 FROM "auth"."roster" WHERE address = $1)`
	if q.sql != wantSQL {
		t.Fatalf("unexpected query: %s", q.sql)
	}
	if len(q.args) != 1 || q.args[0] != "admin@dso.org.sg" {
		t.Fatalf("unexpected args: %v", q.args)
	}
}

func TestPostgres_Contains_ContextCanceledIsNotRetried(t *testing.T) {
	t.Parallel()

	// Arrange
	q := &fakeQuerier{rows: []fakeRow{{err: context.Canceled}}}
	dir := NewPostgres(q, "", fastRetry, instrument.NewNoop())

	// Act
	_, err := dir.Contains(context.Background(), "admin@dso.org.sg")

	// Assert
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if q.calls != 1 {
		t.Fatalf("expected a single call, got %d", q.calls)
	}
}
