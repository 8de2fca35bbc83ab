package report

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/gerencia/internal/domain/dto"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/constants"
	"github.com/ougirez/gerencia/internal/pkg/logger"
	"github.com/ougirez/gerencia/internal/pkg/store"
)

// Service serves the read operations of one reporting domain.
type Service[T any] struct {
	desc Descriptor[T]
	repo *store.Repository[T]
}

func NewService[T any](s *store.Store, desc Descriptor[T]) *Service[T] {
	if desc.CountKey == "" {
		desc.CountKey = "total"
	}
	if desc.SearchParam == "" {
		desc.SearchParam = "nombre"
	}
	return &Service[T]{desc: desc, repo: store.NewRepository[T](s, desc.Table)}
}

func (s *Service[T]) Descriptor() Descriptor[T] {
	return s.desc
}

func (s *Service[T]) Repository() *store.Repository[T] {
	return s.repo
}

func (s *Service[T]) sorted(records []*T) []*T {
	if s.desc.SortKeys == nil {
		return records
	}
	c := aggregate.NewCollator()
	slices.SortStableFunc(records, func(a, b *T) int {
		return c.CompareKeys(s.desc.SortKeys(a), s.desc.SortKeys(b))
	})
	return records
}

func (s *Service[T]) list(ctx context.Context, where sq.Sqlizer) ([]*T, error) {
	records, err := s.repo.List(ctx, where)
	if err != nil {
		return nil, err
	}
	return s.sorted(records), nil
}

// List returns every record in display order.
func (s *Service[T]) List(ctx context.Context) ([]*T, error) {
	records, err := s.list(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", s.desc.Name, err)
	}
	return records, nil
}

// Get returns the record with the given id.
func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	record, err := s.repo.Get(ctx, s.desc.IDColumn, id)
	if err != nil {
		if isNotFound(err) {
			return nil, constants.NotFoundf("%s con ID %d no encontrado", s.desc.Entity, id)
		}
		return nil, fmt.Errorf("%s get %d: %w", s.desc.Name, id, err)
	}
	return record, nil
}

// Lookup returns the record whose unique column named by segment equals value.
func (s *Service[T]) Lookup(ctx context.Context, segment, value string) (*T, error) {
	l, ok := s.desc.lookup(segment)
	if !ok {
		return nil, constants.NotFoundf("búsqueda %q no soportada", segment)
	}

	var arg any = value
	if l.Int {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, constants.BadRequestf("%s inválido: %q", l.Label, value)
		}
		arg = n
	}

	record, err := s.repo.Get(ctx, l.Column, arg)
	if err != nil {
		if isNotFound(err) {
			return nil, constants.NotFoundf("%s con %s %s no encontrado", s.desc.Entity, l.Label, value)
		}
		return nil, fmt.Errorf("%s lookup %s: %w", s.desc.Name, segment, err)
	}
	return record, nil
}

// Filter returns the records whose column named by segment matches value.
func (s *Service[T]) Filter(ctx context.Context, segment, value string) ([]*T, error) {
	f, ok := s.desc.filter(segment)
	if !ok {
		return nil, constants.NotFoundf("filtro %q no soportado", segment)
	}

	records, err := s.list(ctx, store.Where(f.Match, f.Column, value))
	if err != nil {
		return nil, fmt.Errorf("%s filter %s: %w", s.desc.Name, segment, err)
	}
	return records, nil
}

// Search matches text as a case-insensitive substring of the search columns. A blank
// text returns the same as List.
func (s *Service[T]) Search(ctx context.Context, text string) ([]*T, error) {
	if strings.TrimSpace(text) == "" {
		return s.List(ctx)
	}

	records, err := s.list(ctx, store.Search(s.desc.Search, text))
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", s.desc.Name, err)
	}
	return records, nil
}

// Breakdown returns the grouped count published under key.
func (s *Service[T]) Breakdown(ctx context.Context, key string) ([]aggregate.Group, error) {
	b, ok := s.desc.breakdown(key)
	if !ok {
		return nil, fmt.Errorf("%s: unknown breakdown %q", s.desc.Name, key)
	}

	raw, err := s.repo.GroupCount(ctx, b.Column)
	if err != nil {
		return nil, fmt.Errorf("%s breakdown %s: %w", s.desc.Name, key, err)
	}
	return aggregate.Groups(raw, b.Spec), nil
}

// Summary runs the count, distinct counts and breakdowns concurrently.
func (s *Service[T]) Summary(ctx context.Context) (*dto.Summary, error) {
	summary := dto.NewSummary()
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		n, err := s.repo.Count(egCtx, nil)
		if err != nil {
			return err
		}
		summary.Put(s.desc.CountKey, n)
		return nil
	})

	for _, d := range s.desc.Distincts {
		d := d
		eg.Go(func() error {
			table := d.Table
			if table == "" {
				table = s.desc.Table.Name
			}
			n, err := s.repo.Store().CountDistinct(egCtx, table, d.Column)
			if err != nil {
				return err
			}
			summary.Put(d.Key, n)
			return nil
		})
	}

	for _, b := range s.desc.Breakdowns {
		b := b
		eg.Go(func() error {
			raw, err := s.repo.GroupCount(egCtx, b.Column)
			if err != nil {
				return err
			}
			summary.Put(b.Key, aggregate.Groups(raw, b.Spec))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s summary: %w", s.desc.Name, err)
	}
	summary.MarkNotComputed(s.desc.NotComputed...)

	logger.Debugf(ctx, "%s summary: %d fields", s.desc.Name, len(summary.Fields))
	return summary, nil
}

// FilterOptions lists the distinct values of every option column concurrently.
func (s *Service[T]) FilterOptions(ctx context.Context) (aggregate.Options, error) {
	options := dto.NewOptions()
	eg, egCtx := errgroup.WithContext(ctx)

	for _, o := range s.desc.Options {
		o := o
		eg.Go(func() error {
			values, err := s.repo.Distinct(egCtx, o.Column)
			if err != nil {
				return err
			}
			options.Put(o.Key, aggregate.Distinct(values))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s filter options: %w", s.desc.Name, err)
	}
	return options.Values, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, constants.ErrDBNotFound)
}
