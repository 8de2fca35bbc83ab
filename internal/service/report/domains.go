package report

import (
	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/store"
)

// Tables of the dimensions other domains are soft-joined to.
const (
	TableDepartamentos     = "dim_departamento"
	TableCircunscripciones = "dim_circunscripcion"
	TablePersonal          = "tbl_personal_territorio"
	TablePersonalCitrep    = "tbl_personal_citrep"
)

func table[T any](name string, orderBy ...string) store.Table {
	return store.Table{Name: name, Columns: store.Columns[T](), OrderBy: orderBy}
}

func Departamentos() Descriptor[domain.Departamento] {
	return Descriptor[domain.Departamento]{
		Name:     "departamentos",
		Entity:   "Departamento",
		Table:    table[domain.Departamento](TableDepartamentos, "codigo_dane"),
		IDColumn: "codigo_dane",
		SortKeys: func(d *domain.Departamento) []string { return []string{d.Departamento} },
		Search:   []string{"departamento"},
		Lookups: []Lookup{
			{Segment: "dane", Column: "codigo_dane", Label: "código DANE", Int: true},
			{Segment: "codigo", Column: "codigo", Label: "código"},
		},
	}
}

func Personal() Descriptor[domain.Personal] {
	return Descriptor[domain.Personal]{
		Name:     "personal",
		Entity:   "Personal",
		Table:    table[domain.Personal](TablePersonal, "id_personal"),
		IDColumn: "id_personal",
		SortKeys: func(p *domain.Personal) []string { return []string{str(p.Departamento), str(p.Nombre)} },
		Search:   []string{"nombre", "departamento", "cargo"},
		Filters: []Filter{
			{Segment: "departamento", Column: "departamento", Match: store.MatchFold},
		},
		CountKey: "total_agentes",
		Distincts: []DistinctCount{
			{Key: "total_departamentos", Column: "departamento"},
		},
		Breakdowns: []Breakdown{
			{Key: "por_departamento", Column: "departamento", Spec: aggregate.Spec{Label: "departamento", Sentinel: domain.SinAsignar}},
		},
		Options: []Option{
			{Key: "departamentos", Column: "departamento"},
			{Key: "cargos", Column: "cargo"},
			{Key: "empresas", Column: "empresa"},
		},
	}
}

func Circunscripciones() Descriptor[domain.Circunscripcion] {
	return Descriptor[domain.Circunscripcion]{
		Name:     "circunscripciones",
		Entity:   "Circunscripción",
		Table:    table[domain.Circunscripcion](TableCircunscripciones, "id"),
		IDColumn: "id",
		SortKeys: func(c *domain.Circunscripcion) []string { return []string{c.Citrep} },
		Search:   []string{"citrep", "departamento"},
		Filters: []Filter{
			{Segment: "departamento", Column: "departamento", Match: store.MatchExact},
		},
		Lookups: []Lookup{
			{Segment: "citrep", Column: "citrep", Label: "código"},
		},
	}
}

func PersonalCitrep() Descriptor[domain.PersonalCitrep] {
	return Descriptor[domain.PersonalCitrep]{
		Name:     "circunscripciones/personal",
		Entity:   "Personal de circunscripción",
		Table:    table[domain.PersonalCitrep](TablePersonalCitrep, "id_personal_citrep"),
		IDColumn: "id_personal_citrep",
		SortKeys: func(p *domain.PersonalCitrep) []string { return []string{str(p.Nombre)} },
		Search:   []string{"nombre", "citrep", "departamento"},
		Filters: []Filter{
			{Segment: "citrep", Column: "citrep", Match: store.MatchExact},
			{Segment: "departamento", Column: "departamento", Match: store.MatchPartial},
		},
		CountKey: "total_agentes",
		Distincts: []DistinctCount{
			{Key: "total_circunscripciones_dim", Column: "citrep", Table: TableCircunscripciones},
			{Key: "total_circunscripciones_con_agentes", Column: "citrep"},
		},
		Breakdowns: []Breakdown{
			{Key: "por_circunscripcion", Column: "citrep", Spec: aggregate.Spec{Label: "citrep", Sentinel: domain.SinCircunscripcion}},
		},
		Options: []Option{
			{Key: "citreps", Column: "citrep"},
			{Key: "departamentos", Column: "departamento"},
			{Key: "cargos", Column: "cargo"},
		},
	}
}

func IndicadoresCargos() Descriptor[domain.IndicadorCargo] {
	return Descriptor[domain.IndicadorCargo]{
		Name:        "indicadores-cargos",
		Entity:      "Indicador",
		Table:       table[domain.IndicadorCargo]("tbl_indicadores_desempeno_cargos", "id_indicador"),
		IDColumn:    "id_indicador",
		SortKeys:    func(i *domain.IndicadorCargo) []string { return []string{str(i.Cargo), str(i.Indicador)} },
		Search:      []string{"cargo", "indicador"},
		SearchParam: "cargo",
		Filters: []Filter{
			{Segment: "cargo", Column: "cargo", Match: store.MatchPartial},
			{Segment: "resultado", Column: "resultado_enero", Match: store.MatchExact},
			{Segment: "frecuencia", Column: "frecuencia", Match: store.MatchExact},
		},
		CountKey: "total_indicadores",
		Distincts: []DistinctCount{
			{Key: "total_cargos", Column: "cargo"},
		},
		Breakdowns: []Breakdown{
			{Key: "por_cargo", Column: "cargo", Spec: aggregate.Spec{Label: "cargo", Sentinel: domain.SinCargo}},
			{Key: "por_resultado", Column: "resultado_enero", Spec: aggregate.Spec{Label: "resultado", Sentinel: domain.SinResultado}},
			{Key: "por_frecuencia", Column: "frecuencia", Spec: aggregate.Spec{Label: "frecuencia", Sentinel: domain.SinFrecuencia, Order: aggregate.ByKey}},
		},
		Options: []Option{
			{Key: "cargos", Column: "cargo"},
			{Key: "resultados", Column: "resultado_enero"},
			{Key: "frecuencias", Column: "frecuencia"},
			{Key: "indicadores", Column: "indicador"},
		},
	}
}

func KpisControlGerencia() Descriptor[domain.KpiControlGerencia] {
	return Descriptor[domain.KpiControlGerencia]{
		Name:        "kpis-control-gerencia",
		Entity:      "KPI",
		Table:       table[domain.KpiControlGerencia]("tbl_kpis_control_gerencia", "id_kpi"),
		IDColumn:    "id_kpi",
		SortKeys:    func(k *domain.KpiControlGerencia) []string { return []string{str(k.Kpi)} },
		Search:      []string{"kpi", "responsable"},
		SearchParam: "kpi",
		Filters: []Filter{
			{Segment: "estado", Column: "estado", Match: store.MatchExact},
			{Segment: "periodicidad", Column: "periodicidad", Match: store.MatchExact},
			{Segment: "responsable", Column: "responsable", Match: store.MatchPartial},
		},
		CountKey: "total_kpis",
		Breakdowns: []Breakdown{
			{Key: "por_estado", Column: "estado", Spec: aggregate.Spec{Label: "estado", Sentinel: domain.SinEstado}},
			{Key: "por_periodicidad", Column: "periodicidad", Spec: aggregate.Spec{Label: "periodicidad", Sentinel: domain.SinPeriodicidad, Order: aggregate.ByKey}},
			{Key: "por_responsable", Column: "responsable", Spec: aggregate.Spec{Label: "responsable", Sentinel: domain.SinResponsable}},
		},
		Options: []Option{
			{Key: "estados", Column: "estado"},
			{Key: "periodicidades", Column: "periodicidad"},
			{Key: "responsables", Column: "responsable"},
			{Key: "kpis", Column: "kpi"},
		},
	}
}

func KpisSeguimiento() Descriptor[domain.KpiSeguimiento] {
	return Descriptor[domain.KpiSeguimiento]{
		Name:        "kpis-seguimiento",
		Entity:      "KPI",
		Table:       table[domain.KpiSeguimiento]("tbl_kpis_seguimiento", "id_kpi"),
		IDColumn:    "id_kpi",
		SortKeys:    func(k *domain.KpiSeguimiento) []string { return []string{str(k.Componente), str(k.KpiNombre)} },
		Search:      []string{"componente", "kpi_nombre"},
		SearchParam: "kpi",
		Filters: []Filter{
			{Segment: "componente", Column: "componente", Match: store.MatchPartial},
			{Segment: "resultado", Column: "resultado", Match: store.MatchExact},
			{Segment: "frecuencia", Column: "frecuencia", Match: store.MatchExact},
		},
		CountKey: "total_kpis",
		Distincts: []DistinctCount{
			{Key: "total_componentes", Column: "componente"},
		},
		Breakdowns: []Breakdown{
			{Key: "por_componente", Column: "componente", Spec: aggregate.Spec{
				Label:       "componente",
				Sentinel:    domain.SinComponente,
				NotComputed: []string{"promedio_cumplimiento"},
			}},
			{Key: "por_estado", Column: "resultado", Spec: aggregate.Spec{Label: "estado", Sentinel: domain.SinResultado}},
			{Key: "por_periodo", Column: "frecuencia", Spec: aggregate.Spec{Label: "periodo", Sentinel: domain.SinFrecuencia, Order: aggregate.ByKey}},
		},
		Options: []Option{
			{Key: "componentes", Column: "componente"},
			{Key: "resultados", Column: "resultado"},
			{Key: "frecuencias", Column: "frecuencia"},
			{Key: "kpi_nombres", Column: "kpi_nombre"},
		},
		NotComputed: []string{"kpis_por_encima_meta", "kpis_por_debajo_meta"},
	}
}

func SeguimientoPMO() Descriptor[domain.Entregable] {
	return Descriptor[domain.Entregable]{
		Name:        "seguimiento-pmo",
		Entity:      "Entregable",
		Table:       table[domain.Entregable]("tbl_seguimiento_entregables", "id"),
		IDColumn:    "id",
		Search:      []string{"actividad", "componente"},
		SearchParam: "actividad",
		Filters: []Filter{
			{Segment: "tipo", Column: "tipo", Match: store.MatchExact},
			{Segment: "estado-plazo", Column: "estado_actividad_plazo", Match: store.MatchExact},
			{Segment: "estado-ejecucion", Column: "estado_actividad_ejecucion", Match: store.MatchExact},
			{Segment: "componente", Column: "componente", Match: store.MatchPartial},
			{Segment: "responsable", Column: "responsable_principal", Match: store.MatchPartial},
		},
		CountKey: "total_entregables",
		Distincts: []DistinctCount{
			{Key: "total_componentes", Column: "componente"},
		},
		Breakdowns: []Breakdown{
			{Key: "por_estado_plazo", Column: "estado_actividad_plazo", Spec: aggregate.Spec{Label: "estado", Sentinel: domain.SinEstado}},
			{Key: "por_estado_ejecucion", Column: "estado_actividad_ejecucion", Spec: aggregate.Spec{Label: "estado", Sentinel: domain.SinEstado}},
			{Key: "por_componente", Column: "componente", Spec: aggregate.Spec{Label: "componente", Sentinel: domain.SinComponente}},
			{Key: "por_tipo", Column: "tipo", Spec: aggregate.Spec{Label: "tipo", Sentinel: domain.SinTipo}},
			{Key: "por_responsable", Column: "responsable_principal", Spec: aggregate.Spec{Label: "responsable", Sentinel: domain.SinResponsable}},
		},
		Options: []Option{
			{Key: "tipos", Column: "tipo"},
			{Key: "componentes", Column: "componente"},
			{Key: "estados_plazo", Column: "estado_actividad_plazo"},
			{Key: "estados_ejecucion", Column: "estado_actividad_ejecucion"},
			{Key: "responsables", Column: "responsable_principal"},
			{Key: "tipos_eleccion", Column: "tipo_eleccion"},
		},
	}
}
