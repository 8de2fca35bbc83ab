package staffing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/logger"
	"github.com/ougirez/gerencia/internal/pkg/metrics"
	"github.com/ougirez/gerencia/internal/pkg/store"
	"github.com/ougirez/gerencia/internal/service/report"
)

// GrupoPersonal is the staff of one department.
type GrupoPersonal struct {
	Departamento string             `json:"departamento"`
	TotalAgentes int                `json:"total_agentes"`
	Agentes      []*domain.Personal `json:"agentes"`
}

// Cobertura relates staff counts to the members of a dimension table.
type Cobertura struct {
	aggregate.Coverage
	aggregate.JoinResult
}

// Service holds the staffing views that cross the personal tables with their
// dimensions.
type Service struct {
	store          *store.Store
	personal       *report.Service[domain.Personal]
	personalCitrep *report.Service[domain.PersonalCitrep]
	capPerUnit     int
}

func NewStaffingService(
	s *store.Store,
	personal *report.Service[domain.Personal],
	personalCitrep *report.Service[domain.PersonalCitrep],
	capPerUnit int,
) *Service {
	return &Service{store: s, personal: personal, personalCitrep: personalCitrep, capPerUnit: capPerUnit}
}

// Agrupado lists the territorial staff under their department, departments in
// display order and the unassigned last.
func (s *Service) Agrupado(ctx context.Context) ([]*GrupoPersonal, error) {
	records, err := s.personal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("personal.List: %w", err)
	}

	index := make(map[string]*GrupoPersonal)
	groups := make([]*GrupoPersonal, 0)
	var unassigned *GrupoPersonal
	for _, p := range records {
		key := aggregate.KeyOrSentinel(p.Departamento, domain.SinAsignar)

		g, ok := index[key]
		if !ok {
			g = &GrupoPersonal{Departamento: key, Agentes: make([]*domain.Personal, 0, 1)}
			index[key] = g
			if key == domain.SinAsignar {
				unassigned = g
			} else {
				groups = append(groups, g)
			}
		}
		g.Agentes = append(g.Agentes, p)
		g.TotalAgentes++
	}

	if unassigned != nil {
		groups = append(groups, unassigned)
	}
	return groups, nil
}

// PorDepartamento is the staff count per department.
func (s *Service) PorDepartamento(ctx context.Context) ([]aggregate.Group, error) {
	return s.personal.Breakdown(ctx, "por_departamento")
}

// PorCircunscripcion counts circumscription staff per (citrep, departamento). A code
// spanning several departments yields one entry per department.
func (s *Service) PorCircunscripcion(ctx context.Context) ([]aggregate.PairGroup, error) {
	raw, err := s.personalCitrep.Repository().GroupCount2(ctx, "citrep", "departamento")
	if err != nil {
		return nil, fmt.Errorf("GroupCount2: %w", err)
	}
	return aggregate.PairGroups(raw,
		aggregate.Spec{Label: "citrep", Sentinel: domain.SinCircunscripcion},
		aggregate.Spec{Label: "departamento", Sentinel: domain.SinDepartamento},
	), nil
}

// CoberturaDepartamentos soft-joins territorial staff to the department dimension.
func (s *Service) CoberturaDepartamentos(ctx context.Context) (*Cobertura, error) {
	return s.cobertura(ctx, "personal",
		report.TableDepartamentos, "departamento",
		report.TablePersonal, "departamento", domain.SinAsignar)
}

// CoberturaCircunscripciones soft-joins circumscription staff to the circumscription
// dimension.
func (s *Service) CoberturaCircunscripciones(ctx context.Context) (*Cobertura, error) {
	return s.cobertura(ctx, "circunscripciones/personal",
		report.TableCircunscripciones, "citrep",
		report.TablePersonalCitrep, "citrep", domain.SinCircunscripcion)
}

func (s *Service) cobertura(ctx context.Context, name, dimTable, dimColumn, table, column, sentinel string) (*Cobertura, error) {
	var (
		dimension []string
		raw       []aggregate.RawCount
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		dimension, err = s.store.Distinct(egCtx, dimTable, dimColumn)
		return err
	})
	eg.Go(func() error {
		var err error
		raw, err = s.store.GroupCount(egCtx, table, column)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s cobertura: %w", name, err)
	}

	join := aggregate.SoftJoin(aggregate.Distinct(dimension), aggregate.Groups(raw, aggregate.Spec{Sentinel: sentinel}), sentinel, s.capPerUnit)

	metrics.SetOrphans(name, len(join.Orphans))
	if len(join.Orphans) > 0 {
		logger.Warnf(ctx, "%s: %d keys match no %s member: %v", name, len(join.Orphans), dimTable, join.Orphans)
	}

	matched := make([]aggregate.Group, 0, len(join.Rows))
	for _, r := range join.Rows {
		matched = append(matched, aggregate.Group{Key: r.Key, Count: r.Count})
	}

	return &Cobertura{
		Coverage:   aggregate.CoverageOf(matched, len(join.Rows), s.capPerUnit, ""),
		JoinResult: join,
	}, nil
}
