package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/emailotp/internal/pkg/goerror"
	"github.com/shandysiswandi/emailotp/internal/pkg/instrument"
)

// DefaultPostgresTable is the roster table when none is configured. It needs
// a text column named address.
const DefaultPostgresTable = "otp_directory"

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres looks addresses up in a table with an exact match on address.
type Postgres struct {
	conn  queryRower
	query string
	retry RetryOptions
	ins   instrument.Instrumentation
}

// NewPostgres accepts "table" or "schema.table".
func NewPostgres(conn queryRower, table string, retry RetryOptions, ins instrument.Instrumentation) *Postgres {
	if table == "" {
		table = DefaultPostgresTable
	}

	ident := pgx.Identifier(strings.Split(table, "."))

	return &Postgres{
		conn:  conn,
		query: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE address = $1)", ident.Sanitize()),
		retry: retry,
		ins:   ins,
	}
}

func (p *Postgres) Contains(ctx context.Context, address string) (bool, error) {
	found, err := lookup(ctx, p.ins, "Postgres.Contains", p.retry, func(ctx context.Context) (bool, error) {
		var exists bool
		err := p.conn.QueryRow(ctx, p.query, address).Scan(&exists)
		return exists, err
	})
	if err != nil {
		return false, goerror.NewServer(err)
	}

	return found, nil
}
