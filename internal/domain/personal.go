package domain

import "time"

// Personal is a territorial staff member.
type Personal struct {
	IDPersonal    int64      `db:"id_personal" json:"id_personal"`
	Nro           *int       `db:"nro" json:"nro"`
	Cargo         *string    `db:"cargo" json:"cargo"`
	Nombre        *string    `db:"nombre" json:"nombre"`
	Departamento  *string    `db:"departamento" json:"departamento"`
	Roles         *string    `db:"roles" json:"roles"`
	Celular       *string    `db:"celular" json:"celular"`
	Correo        *string    `db:"correo" json:"correo"`
	Documentacion *string    `db:"documentacion" json:"documentacion,omitempty"`
	Observacion   *string    `db:"observacion" json:"observacion,omitempty"`
	Profesion     *string    `db:"profesion" json:"profesion"`
	Seniority     *string    `db:"seniority" json:"seniority"`
	Empresa       *string    `db:"empresa" json:"empresa"`
	FechaCreacion *time.Time `db:"fecha_creacion" json:"fecha_creacion,omitempty"`
}

type Circunscripcion struct {
	ID           int64  `db:"id" json:"id"`
	Citrep       string `db:"citrep" json:"citrep"`
	Departamento string `db:"departamento" json:"departamento"`
	Value        int    `db:"-" json:"value"`
}

// PersonalCitrep is a staff member assigned to an electoral circumscription.
type PersonalCitrep struct {
	IDPersonalCitrep   int64      `db:"id_personal_citrep" json:"id_personal_citrep"`
	Nro                *int       `db:"nro" json:"nro"`
	Cargo              *string    `db:"cargo" json:"cargo"`
	Nombre             *string    `db:"nombre" json:"nombre"`
	Seniority          *string    `db:"seniority" json:"seniority,omitempty"`
	Empresa            *string    `db:"empresa" json:"empresa,omitempty"`
	Citrep             *string    `db:"citrep" json:"citrep"`
	Departamento       *string    `db:"departamento" json:"departamento"`
	MunicipioPrincipal *string    `db:"municipio_principal" json:"municipio_principal,omitempty"`
	Ticket             *string    `db:"ticket" json:"-"`
	FechaIngreso       *time.Time `db:"fecha_ingreso" json:"fecha_ingreso,omitempty"`
	HvDrive            *string    `db:"hv_drive" json:"-"`
	Correo             *string    `db:"correo" json:"correo,omitempty"`
	Celular            *string    `db:"celular" json:"celular,omitempty"`
	Profesion          *string    `db:"profesion" json:"profesion,omitempty"`
	Estado             *string    `db:"estado" json:"estado,omitempty"`
	Observacion        *string    `db:"observacion" json:"-"`
	FechaCreacion      *time.Time `db:"fecha_creacion" json:"-"`
}
