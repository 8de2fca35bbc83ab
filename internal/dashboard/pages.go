package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ougirez/gerencia/internal/client"
	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/logger"
)

type Settings struct {
	// Units and CapPerUnit define national coverage: Units*CapPerUnit agents is 100%.
	Units      int
	CapPerUnit int
	TopN       int
	Location   *time.Location
	Now        func() time.Time
}

// Dashboard builds the pages of the web dashboard from the API.
type Dashboard struct {
	client   *client.Client
	settings Settings

	territorio        Loader[*TerritorioPage]
	circunscripciones Loader[*CircunscripcionesPage]
	pmo               Loader[*PMOPage]
	kpis              Loader[*KPIsPage]
}

func New(c *client.Client, settings Settings) *Dashboard {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &Dashboard{client: c, settings: settings}
}

func (d *Dashboard) today() time.Time {
	return d.settings.Now().In(d.settings.Location)
}

type MapaDepartamento struct {
	domain.DepartamentoResponse
	Semaforo Semaforo `json:"semaforo"`
}

type TerritorioPage struct {
	Departamento          string             `json:"departamento,omitempty"`
	Departamentos         []MapaDepartamento `json:"departamentos"`
	TotalAgentes          int                `json:"total_agentes"`
	Cobertura             Cobertura          `json:"cobertura"`
	CoberturaDepartamento *Cobertura         `json:"cobertura_departamento,omitempty"`
	PorCargo              Truncated          `json:"por_cargo"`
}

// BuildTerritorio builds the territorial staff page, focused on departamento when it
// is not empty.
func (d *Dashboard) BuildTerritorio(ctx context.Context, departamento string) *TerritorioPage {
	var (
		departamentos []domain.DepartamentoResponse
		porDepto      []aggregate.Group
		personal      []domain.Personal
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		departamentos = d.client.Departamentos(egCtx)
		return nil
	})
	eg.Go(func() error {
		porDepto = d.client.PersonalPorDepartamento(egCtx)
		return nil
	})
	eg.Go(func() error {
		personal = d.client.Personal(egCtx, departamento)
		return nil
	})
	_ = eg.Wait()

	counts := CountsByKey(porDepto)
	page := &TerritorioPage{
		Departamento:  departamento,
		Departamentos: make([]MapaDepartamento, 0, len(departamentos)),
		TotalAgentes:  aggregate.Total(porDepto),
		Cobertura:     NationalCoverage(porDepto, d.settings.Units, d.settings.CapPerUnit, domain.SinAsignar),
		PorCargo: TopN(aggregate.GroupByCount(personal, func(p domain.Personal) *string { return p.Cargo },
			aggregate.Spec{Label: "cargo", Sentinel: domain.SinCargo}), d.settings.TopN, nil),
	}
	for _, dep := range departamentos {
		dep.Value = counts[aggregate.Normalize(dep.Departamento)]
		page.Departamentos = append(page.Departamentos, MapaDepartamento{
			DepartamentoResponse: dep,
			Semaforo:             SemaforoByAgentes(dep.Value, d.settings.CapPerUnit),
		})
	}

	if departamento != "" {
		page.TotalAgentes = len(personal)
		cov := UnitCoverage(counts[aggregate.Normalize(departamento)], d.settings.CapPerUnit)
		page.CoberturaDepartamento = &cov
	}
	return page
}

type MapaCircunscripcion struct {
	domain.Circunscripcion
	Semaforo Semaforo `json:"semaforo"`
}

type CircunscripcionesPage struct {
	Citrep                   string                `json:"citrep,omitempty"`
	Circunscripciones        []MapaCircunscripcion `json:"circunscripciones"`
	TotalAgentes             int                   `json:"total_agentes"`
	Cobertura                Cobertura             `json:"cobertura"`
	CoberturaCircunscripcion *Cobertura            `json:"cobertura_circunscripcion,omitempty"`
	PorCargo                 Truncated             `json:"por_cargo"`
}

// BuildCircunscripciones builds the circumscription staff page, focused on citrep
// when it is not empty.
func (d *Dashboard) BuildCircunscripciones(ctx context.Context, citrep string) *CircunscripcionesPage {
	var (
		circunscripciones []domain.Circunscripcion
		conteos           []client.ConteoCircunscripcion
		personal          []domain.PersonalCitrep
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		circunscripciones = d.client.Circunscripciones(egCtx)
		return nil
	})
	eg.Go(func() error {
		conteos = d.client.PersonalPorCircunscripcion(egCtx)
		return nil
	})
	eg.Go(func() error {
		personal = d.client.PersonalCitrep(egCtx, citrep)
		return nil
	})
	_ = eg.Wait()

	// one code may span several departments; coverage is per code
	raw := make([]aggregate.RawCount, 0, len(conteos))
	for _, c := range conteos {
		c := c
		raw = append(raw, aggregate.RawCount{Key: &c.Citrep, Count: c.Cantidad})
	}
	porCitrep := aggregate.Groups(raw, aggregate.Spec{Label: "citrep", Sentinel: domain.SinCircunscripcion})

	counts := CountsByKey(porCitrep)
	page := &CircunscripcionesPage{
		Citrep:            citrep,
		Circunscripciones: make([]MapaCircunscripcion, 0, len(circunscripciones)),
		TotalAgentes:      aggregate.Total(porCitrep),
		Cobertura:         NationalCoverage(porCitrep, d.settings.Units, d.settings.CapPerUnit, domain.SinCircunscripcion),
		PorCargo: TopN(aggregate.GroupByCount(personal, func(p domain.PersonalCitrep) *string { return p.Cargo },
			aggregate.Spec{Label: "cargo", Sentinel: domain.SinCargo}), d.settings.TopN, nil),
	}
	for _, circ := range circunscripciones {
		circ.Value = counts[aggregate.Normalize(circ.Citrep)]
		page.Circunscripciones = append(page.Circunscripciones, MapaCircunscripcion{
			Circunscripcion: circ,
			Semaforo:        SemaforoByAgentes(circ.Value, d.settings.CapPerUnit),
		})
	}

	if citrep != "" {
		page.TotalAgentes = len(personal)
		cov := UnitCoverage(counts[aggregate.Normalize(citrep)], d.settings.CapPerUnit)
		page.CoberturaCircunscripcion = &cov
	}
	return page
}

// Filter narrows the deliverables of the PMO page, e.g. {"estado-plazo", "Vencida"}.
type Filter struct {
	Segment string `json:"segmento,omitempty"`
	Value   string `json:"valor,omitempty"`
}

type PMOPage struct {
	Filtro             Filter            `json:"filtro"`
	Total              int               `json:"total"`
	PorVencer          []Bucket          `json:"por_vencer"`
	PorEstadoPlazo     Truncated         `json:"por_estado_plazo"`
	PorEstadoEjecucion Truncated         `json:"por_estado_ejecucion"`
	PorComponente      Truncated         `json:"por_componente"`
	PorResponsable     Truncated         `json:"por_responsable"`
	Opciones           aggregate.Options `json:"opciones"`
}

func (d *Dashboard) BuildPMO(ctx context.Context, filter Filter) *PMOPage {
	var (
		entregables []domain.Entregable
		opciones    aggregate.Options
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		entregables = d.client.Entregables(egCtx, filter.Segment, filter.Value)
		return nil
	})
	eg.Go(func() error {
		opciones = d.client.Filtros(egCtx, "seguimiento-pmo")
		return nil
	})
	_ = eg.Wait()

	group := func(key func(domain.Entregable) *string, label, sentinel string) []aggregate.Group {
		return aggregate.GroupByCount(entregables, key, aggregate.Spec{Label: label, Sentinel: sentinel})
	}
	n := d.settings.TopN

	return &PMOPage{
		Filtro:    filter,
		Total:     len(entregables),
		PorVencer: DueBuckets(entregables, d.today()),
		PorEstadoPlazo: TopN(group(func(e domain.Entregable) *string { return e.EstadoActividadPlazo },
			"estado", domain.SinEstado), 0, ByPalette(EstadoPMO)),
		PorEstadoEjecucion: TopN(group(func(e domain.Entregable) *string { return e.EstadoActividadEjecucion },
			"estado", domain.SinEstado), 0, ByPalette(EstadoPMO)),
		PorComponente: TopN(group(func(e domain.Entregable) *string { return e.Componente },
			"componente", domain.SinComponente), n, nil),
		PorResponsable: TopN(group(func(e domain.Entregable) *string { return e.ResponsablePrincipal },
			"responsable", domain.SinResponsable), n, nil),
		Opciones: opciones,
	}
}

type KPIPanel struct {
	Total       int               `json:"total"`
	PorEstado   Truncated         `json:"por_estado"`
	PorPeriodo  []aggregate.Group `json:"por_periodo"`
	NoCalculado []string          `json:"no_calculado,omitempty"`
}

type KPIsPage struct {
	Gerencia    KPIPanel `json:"gerencia"`
	Componentes KPIPanel `json:"componentes"`
	Cargos      KPIPanel `json:"cargos"`
}

func (d *Dashboard) panel(r client.Resumen, total, estado, periodo string) KPIPanel {
	periodos := r.Groups(periodo)
	if periodos == nil {
		periodos = []aggregate.Group{}
	}
	return KPIPanel{
		Total:       r.Int(total),
		PorEstado:   TopN(r.Groups(estado), 0, ByPalette(EstadoKPI)),
		PorPeriodo:  periodos,
		NoCalculado: r.NotComputed(),
	}
}

func (d *Dashboard) BuildKPIs(ctx context.Context) *KPIsPage {
	var gerencia, componentes, cargos client.Resumen

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		gerencia = d.client.Resumen(egCtx, "kpis-control-gerencia")
		return nil
	})
	eg.Go(func() error {
		componentes = d.client.Resumen(egCtx, "kpis-seguimiento")
		return nil
	})
	eg.Go(func() error {
		cargos = d.client.Resumen(egCtx, "indicadores-cargos")
		return nil
	})
	_ = eg.Wait()

	page := &KPIsPage{
		Gerencia:    d.panel(gerencia, "total_kpis", "por_estado", "por_periodicidad"),
		Componentes: d.panel(componentes, "total_kpis", "por_estado", "por_periodo"),
		Cargos:      d.panel(cargos, "total_indicadores", "por_resultado", "por_frecuencia"),
	}
	if len(page.Componentes.NoCalculado) > 0 {
		logger.Debugf(ctx, "kpis-seguimiento fields not computed: %v", page.Componentes.NoCalculado)
	}
	return page
}

// LoadTerritorio builds the territorial page through its loader: a newer call cancels
// this one and the stale result is not kept.
func (d *Dashboard) LoadTerritorio(ctx context.Context, departamento string) (*TerritorioPage, bool) {
	return d.territorio.Load(ctx, func(ctx context.Context) *TerritorioPage {
		return d.BuildTerritorio(ctx, departamento)
	})
}

func (d *Dashboard) LoadCircunscripciones(ctx context.Context, citrep string) (*CircunscripcionesPage, bool) {
	return d.circunscripciones.Load(ctx, func(ctx context.Context) *CircunscripcionesPage {
		return d.BuildCircunscripciones(ctx, citrep)
	})
}

func (d *Dashboard) LoadPMO(ctx context.Context, filter Filter) (*PMOPage, bool) {
	return d.pmo.Load(ctx, func(ctx context.Context) *PMOPage {
		return d.BuildPMO(ctx, filter)
	})
}

func (d *Dashboard) LoadKPIs(ctx context.Context) (*KPIsPage, bool) {
	return d.kpis.Load(ctx, d.BuildKPIs)
}
