package domain

import "time"

type IndicadorCargo struct {
	IDIndicador    int64      `db:"id_indicador" json:"id_indicador"`
	Cargo          *string    `db:"cargo" json:"cargo"`
	Indicador      *string    `db:"indicador" json:"indicador"`
	Descripcion    *string    `db:"descripcion" json:"descripcion,omitempty"`
	Formula        *string    `db:"formula" json:"formula,omitempty"`
	MetaUmbral     *string    `db:"meta_umbral" json:"meta_umbral,omitempty"`
	Unidad         *string    `db:"unidad" json:"unidad,omitempty"`
	Frecuencia     *string    `db:"frecuencia" json:"frecuencia,omitempty"`
	ResultadoEnero *string    `db:"resultado_enero" json:"resultado_enero,omitempty"`
	FechaRegistro  *time.Time `db:"fecha_registro" json:"fecha_registro,omitempty"`
}

type KpiControlGerencia struct {
	IDKpi              int64      `db:"id_kpi" json:"id_kpi"`
	Kpi                *string    `db:"kpi" json:"kpi"`
	Descripcion        *string    `db:"descripcion" json:"descripcion,omitempty"`
	FormulaMetodo      *string    `db:"formula_metodo" json:"formula_metodo,omitempty"`
	Meta               *string    `db:"meta" json:"meta,omitempty"`
	ResultadoActual    *string    `db:"resultado_actual" json:"resultado_actual,omitempty"`
	Estado             *string    `db:"estado" json:"estado,omitempty"`
	Periodicidad       *string    `db:"periodicidad" json:"periodicidad,omitempty"`
	Responsable        *string    `db:"responsable" json:"responsable,omitempty"`
	FechaActualizacion *time.Time `db:"fecha_actualizacion" json:"fecha_actualizacion,omitempty"`
}

type KpiSeguimiento struct {
	IDKpi              int64      `db:"id_kpi" json:"id_kpi"`
	Componente         *string    `db:"componente" json:"componente"`
	KpiNombre          *string    `db:"kpi_nombre" json:"kpi_nombre"`
	Objetivo           *string    `db:"objetivo" json:"objetivo,omitempty"`
	QueResponde        *string    `db:"que_responde" json:"que_responde,omitempty"`
	QueMide            *string    `db:"que_mide" json:"que_mide,omitempty"`
	BaseContractual    *string    `db:"base_contractual" json:"base_contractual,omitempty"`
	Formula            *string    `db:"formula" json:"formula,omitempty"`
	Unidad             *string    `db:"unidad" json:"unidad,omitempty"`
	Fuente             *string    `db:"fuente" json:"fuente,omitempty"`
	Frecuencia         *string    `db:"frecuencia" json:"frecuencia,omitempty"`
	MetaUmbral         *string    `db:"meta_umbral" json:"meta_umbral,omitempty"`
	Resultado          *string    `db:"resultado" json:"resultado,omitempty"`
	ResponsableDato    *string    `db:"responsable_dato" json:"responsable_dato,omitempty"`
	UltimaFechaReporte *string    `db:"ultima_fecha_reporte" json:"ultima_fecha_reporte,omitempty"`
	FechaCreacion      *time.Time `db:"fecha_creacion" json:"fecha_creacion,omitempty"`
	FechaActualizacion *time.Time `db:"fecha_actualizacion" json:"fecha_actualizacion,omitempty"`
}
