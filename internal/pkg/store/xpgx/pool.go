package xpgx

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool runs squirrel-built statements and scans the rows into db-tagged structs.
type Pool interface {
	Getx(ctx context.Context, dst any, query sq.Sqlizer) error
	Selectx(ctx context.Context, dst any, query sq.Sqlizer) error
	Execx(ctx context.Context, query sq.Sqlizer) (int64, error)
	Ping(ctx context.Context) error
	Close()
}

type PgPool struct {
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (*PgPool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	return &PgPool{pool: pool}, nil
}

// DSN builds a postgres URL with the credentials escaped.
func DSN(host string, port int, user, password, database string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + database,
	}
	return u.String()
}

func (p *PgPool) Getx(ctx context.Context, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}
	return pgxscan.Get(ctx, p.pool, dst, sql, args...)
}

func (p *PgPool) Selectx(ctx context.Context, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}
	return pgxscan.Select(ctx, p.pool, dst, sql, args...)
}

func (p *PgPool) Execx(ctx context.Context, query sq.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("ToSql: %w", err)
	}
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p *PgPool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PgPool) Close() {
	p.pool.Close()
}
