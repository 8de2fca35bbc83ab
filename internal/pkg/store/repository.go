package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/constants"
)

// Table describes a reporting table.
type Table struct {
	Name    string
	Columns []string
	// OrderBy is the SQL order of List, used to make results deterministic before
	// any locale-aware sort.
	OrderBy []string
}

// Repository reads records of type T, whose db tags name the columns of Table.
type Repository[T any] struct {
	store *Store
	table Table
}

func NewRepository[T any](s *Store, table Table) *Repository[T] {
	return &Repository[T]{store: s, table: table}
}

func (r *Repository[T]) Table() Table {
	return r.table
}

func (r *Repository[T]) Store() *Store {
	return r.store
}

// List returns the rows matching where, every row when where is nil.
func (r *Repository[T]) List(ctx context.Context, where sq.Sqlizer) ([]*T, error) {
	query := builder().
		Select(r.table.Columns...).
		From(r.store.qualify(r.table.Name)).
		OrderBy(r.table.OrderBy...)
	if where != nil {
		query = query.Where(where)
	}

	var selected []*T
	start := time.Now()
	err := r.store.observe(r.table.Name, opList, start, r.store.pool.Selectx(ctx, &selected, query))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.Name, err)
	}
	if selected == nil {
		selected = []*T{}
	}
	return selected, nil
}

// Get returns the single row whose column equals value. It returns
// constants.ErrDBNotFound when there is none.
func (r *Repository[T]) Get(ctx context.Context, column string, value any) (*T, error) {
	query := builder().
		Select(r.table.Columns...).
		From(r.store.qualify(r.table.Name)).
		Where(sq.Eq{column: value}).
		Limit(1)

	var selected T
	start := time.Now()
	err := r.store.observe(r.table.Name, opGet, start, r.store.pool.Getx(ctx, &selected, query))
	if err != nil {
		return nil, fmt.Errorf("get %s by %s: %w", r.table.Name, column, err)
	}
	return &selected, nil
}

func (r *Repository[T]) Count(ctx context.Context, where sq.Sqlizer) (int, error) {
	return r.store.Count(ctx, r.table.Name, where)
}

func (r *Repository[T]) CountDistinct(ctx context.Context, column string) (int, error) {
	return r.store.CountDistinct(ctx, r.table.Name, column)
}

func (r *Repository[T]) GroupCount(ctx context.Context, column string) ([]aggregate.RawCount, error) {
	return r.store.GroupCount(ctx, r.table.Name, column)
}

func (r *Repository[T]) GroupCount2(ctx context.Context, a, b string) ([]aggregate.RawPair, error) {
	return r.store.GroupCount2(ctx, r.table.Name, a, b)
}

func (r *Repository[T]) Distinct(ctx context.Context, column string) ([]string, error) {
	return r.store.Distinct(ctx, r.table.Name, column)
}

func isNotFound(err error) bool {
	return errors.Is(err, constants.ErrDBNotFound)
}
