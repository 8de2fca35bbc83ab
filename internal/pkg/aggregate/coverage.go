package aggregate

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Coverage struct {
	Units      int     `json:"unidades"`
	CapPerUnit int     `json:"tope_por_unidad"`
	Target     int     `json:"meta_total"`
	Effective  int     `json:"agentes_efectivos"`
	Percentage float64 `json:"porcentaje"`
}

// Effective caps a group's contribution at capPerGroup.
func Effective(count, capPerGroup int) int {
	if count < 0 {
		return 0
	}
	return min(count, capPerGroup)
}

// Percentage returns min(100, 100*part/whole) rounded to two decimals, 0 when whole
// is not positive.
func Percentage(part, whole int) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	return pct.Round(2).InexactFloat64()
}

// CoverageOf sums effective counts over groups and relates them to units*capPerUnit.
// Groups labelled with skip (usually the sentinel) do not count.
func CoverageOf(groups []Group, units, capPerUnit int, skip string) Coverage {
	effective := 0
	for _, g := range groups {
		if skip != "" && g.Key == skip {
			continue
		}
		effective += Effective(g.Count, capPerUnit)
	}

	target := units * capPerUnit
	return Coverage{
		Units:      units,
		CapPerUnit: capPerUnit,
		Target:     target,
		Effective:  effective,
		Percentage: Percentage(effective, target),
	}
}
