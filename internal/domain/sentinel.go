package domain

// Labels standing in for null or blank category values.
const (
	SinAsignar         = "Sin asignar"
	SinCircunscripcion = "Sin circunscripción"
	SinDepartamento    = "Sin departamento"
	SinCargo           = "Sin cargo"
	SinResultado       = "Sin resultado"
	SinFrecuencia      = "Sin frecuencia"
	SinEstado          = "Sin estado"
	SinPeriodicidad    = "Sin periodicidad"
	SinResponsable     = "Sin responsable"
	SinComponente      = "Sin componente"
	SinTipo            = "Sin tipo"
)
