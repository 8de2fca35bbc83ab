package domain

import (
	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
)

type Departamento struct {
	CodigoDane   int                 `db:"codigo_dane" json:"codigo_dane"`
	Codigo       string              `db:"codigo" json:"codigo"`
	Departamento string              `db:"departamento" json:"departamento"`
	Latitud      decimal.NullDecimal `db:"latitud" json:"-"`
	Longitud     decimal.NullDecimal `db:"longitud" json:"-"`
}

// DepartamentoResponse is what the map consumes: coordinates as plain numbers and a
// value slot the client fills in.
type DepartamentoResponse struct {
	CodigoDane   int      `json:"codigo_dane"`
	Codigo       string   `json:"codigo"`
	Departamento string   `json:"departamento"`
	Latitud      *float64 `json:"latitud,omitempty"`
	Longitud     *float64 `json:"longitud,omitempty"`
	Value        int      `json:"value"`
}

func coordinate(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func (d Departamento) Response() DepartamentoResponse {
	return DepartamentoResponse{
		CodigoDane:   d.CodigoDane,
		Codigo:       d.Codigo,
		Departamento: d.Departamento,
		Latitud:      coordinate(d.Latitud),
		Longitud:     coordinate(d.Longitud),
	}
}

func (d Departamento) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(d.Response())
}
