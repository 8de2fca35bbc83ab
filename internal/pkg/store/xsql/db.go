// Package xsql implements the store pool over database/sql with the pure-Go sqlite
// driver. It backs local runs and tests.
//
// sqlite's UPPER and LOWER fold ASCII letters only, so case-insensitive filters do
// not fold accented letters here ("bogotá" does not match "BOGOTÁ") while on postgres
// they do.
package xsql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	_ "modernc.org/sqlite"
)

var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

type DB struct {
	db *sql.DB
}

// Open opens a sqlite database. A single connection is kept so that ":memory:"
// databases survive between statements.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &DB{db: db}, nil
}

// rebind turns postgres $N placeholders into sqlite ?N ones.
func rebind(query string) string {
	return dollarPlaceholder.ReplaceAllString(query, "?$1")
}

func (d *DB) Getx(ctx context.Context, dst any, query sq.Sqlizer) error {
	q, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}
	return sqlscan.Get(ctx, d.db, dst, rebind(q), args...)
}

func (d *DB) Selectx(ctx context.Context, dst any, query sq.Sqlizer) error {
	q, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}
	return sqlscan.Select(ctx, d.db, dst, rebind(q), args...)
}

func (d *DB) Execx(ctx context.Context, query sq.Sqlizer) (int64, error) {
	q, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("ToSql: %w", err)
	}
	res, err := d.db.ExecContext(ctx, rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ExecScript runs a multi-statement script such as a schema file.
func (d *DB) ExecScript(ctx context.Context, script string) error {
	_, err := d.db.ExecContext(ctx, script)
	return err
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) Close() {
	_ = d.db.Close()
}
