package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/metrics"
	"github.com/ougirez/gerencia/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store runs the read queries shared by every reporting table.
type Store struct {
	pool   Pool
	schema string
}

// NewStore returns a store qualifying table names with schema. An empty schema
// leaves them unqualified.
func NewStore(pool Pool, schema string) *Store {
	return &Store{pool: pool, schema: schema}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) qualify(table string) string {
	if s.schema == "" {
		return table
	}
	return s.schema + "." + table
}

func (s *Store) observe(table, op string, start time.Time, err error) error {
	metrics.ObserveQuery(table, op, start)
	err = wrapErr(err)
	if err != nil && !isNotFound(err) {
		metrics.QueryFailed(table, op)
	}
	return err
}

// Count counts the rows of table matching where. A nil where counts every row.
func (s *Store) Count(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	query := builder().Select("COUNT(*)").From(s.qualify(table))
	if where != nil {
		query = query.Where(where)
	}

	var n int
	start := time.Now()
	err := s.observe(table, opCount, start, s.pool.Getx(ctx, &n, query))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// CountDistinct counts the distinct non-null values of column.
func (s *Store) CountDistinct(ctx context.Context, table, column string) (int, error) {
	query := builder().Select(fmt.Sprintf("COUNT(DISTINCT %s)", column)).From(s.qualify(table))

	var n int
	start := time.Now()
	err := s.observe(table, opDistinct, start, s.pool.Getx(ctx, &n, query))
	if err != nil {
		return 0, fmt.Errorf("count distinct %s.%s: %w", table, column, err)
	}
	return n, nil
}

// GroupCount counts rows per value of column, the NULL group included.
func (s *Store) GroupCount(ctx context.Context, table, column string) ([]aggregate.RawCount, error) {
	query := builder().
		Select(column+" AS "+aliasGroup, "COUNT(*) AS "+aliasCount).
		From(s.qualify(table)).
		GroupBy(column)

	var rows []aggregate.RawCount
	start := time.Now()
	err := s.observe(table, opGroupCount, start, s.pool.Selectx(ctx, &rows, query))
	if err != nil {
		return nil, fmt.Errorf("group %s.%s: %w", table, column, err)
	}
	return rows, nil
}

// GroupCount2 counts rows per (a, b) pair.
func (s *Store) GroupCount2(ctx context.Context, table, a, b string) ([]aggregate.RawPair, error) {
	query := builder().
		Select(a+" AS "+aliasGroup, b+" AS "+aliasGroupB, "COUNT(*) AS "+aliasCount).
		From(s.qualify(table)).
		GroupBy(a, b)

	var rows []aggregate.RawPair
	start := time.Now()
	err := s.observe(table, opGroupCount, start, s.pool.Selectx(ctx, &rows, query))
	if err != nil {
		return nil, fmt.Errorf("group %s.(%s, %s): %w", table, a, b, err)
	}
	return rows, nil
}

// Distinct lists the distinct non-null values of column, unsorted.
func (s *Store) Distinct(ctx context.Context, table, column string) ([]string, error) {
	query := builder().
		Select(column + " AS " + aliasValue).
		Distinct().
		From(s.qualify(table)).
		Where(sq.NotEq{column: nil})

	var values []string
	start := time.Now()
	err := s.observe(table, opDistinct, start, s.pool.Selectx(ctx, &values, query))
	if err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", table, column, err)
	}
	return values, nil
}
