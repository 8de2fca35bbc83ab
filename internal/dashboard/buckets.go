package dashboard

import (
	"time"

	"github.com/ougirez/gerencia/internal/domain"
)

// Due-date buckets, in display order.
const (
	BucketVencidas = "Vencidas"
	BucketHoy      = "Vencen hoy"
	BucketProx7    = "Próximos 7 días"
	BucketProx15   = "Próximos 15 días"
	BucketProx30   = "Próximos 30 días"
	BucketMasDe30  = "Más de 30 días"
)

type Bucket struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// civilDate drops the clock and the zone of t, keeping its calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil is the number of calendar days from today to due. Due dates are dates
// without zone; today is taken in its own location.
func DaysUntil(due, today time.Time) int {
	return int(civilDate(due).Sub(civilDate(today)).Hours() / 24)
}

func bucketIndex(days int) int {
	switch {
	case days < 0:
		return 0
	case days == 0:
		return 1
	case days <= 7:
		return 2
	case days <= 15:
		return 3
	case days <= 30:
		return 4
	default:
		return 5
	}
}

// DueBuckets partitions deliverables by days until their due date. Deliverables with
// no due date are left out.
func DueBuckets(entregables []domain.Entregable, today time.Time) []Bucket {
	buckets := []Bucket{
		{Label: BucketVencidas, Color: "#ef4444"},
		{Label: BucketHoy, Color: "#f97316"},
		{Label: BucketProx7, Color: "#eab308"},
		{Label: BucketProx15, Color: "#22c55e"},
		{Label: BucketProx30, Color: "#3b82f6"},
		{Label: BucketMasDe30, Color: "#6b7280"},
	}

	for _, e := range entregables {
		if e.FechaFinal == nil {
			continue
		}
		buckets[bucketIndex(DaysUntil(*e.FechaFinal, today))].Value++
	}
	return buckets
}
