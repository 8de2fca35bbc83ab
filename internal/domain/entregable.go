package domain

import "time"

// Entregable is a PMO deliverable.
type Entregable struct {
	ID                              int64      `db:"id" json:"id"`
	Tipo                            *string    `db:"tipo" json:"tipo,omitempty"`
	Componente                      *string    `db:"componente" json:"componente,omitempty"`
	Actividad                       *string    `db:"actividad" json:"actividad,omitempty"`
	FechaInicio                     *time.Time `db:"fecha_inicio" json:"fecha_inicio,omitempty"`
	FechaFinal                      *time.Time `db:"fecha_final" json:"fecha_final,omitempty"`
	FechaRealEjecucion              *time.Time `db:"fecha_real_ejecucion" json:"fecha_real_ejecucion,omitempty"`
	EstadoActividadPlazo            *string    `db:"estado_actividad_plazo" json:"estado_actividad_plazo,omitempty"`
	TipoEleccion                    *string    `db:"tipo_eleccion" json:"tipo_eleccion,omitempty"`
	CortesContractuales             *string    `db:"cortes_contractuales" json:"cortes_contractuales,omitempty"`
	ResponsablePrincipal            *string    `db:"responsable_principal" json:"responsable_principal,omitempty"`
	Encargado                       *string    `db:"encargado" json:"encargado,omitempty"`
	EstadoActividadPlazoSeguimiento *string    `db:"estado_actividad_plazo_seguimiento" json:"estado_actividad_plazo_seguimiento,omitempty"`
	EstadoActividadEjecucion        *string    `db:"estado_actividad_ejecucion" json:"estado_actividad_ejecucion,omitempty"`
	EvidenciaRecibida               *string    `db:"evidencia_recibida" json:"evidencia_recibida,omitempty"`
	Notas                           *string    `db:"notas" json:"notas,omitempty"`
}
