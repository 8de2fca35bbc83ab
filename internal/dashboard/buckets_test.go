package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/gerencia/internal/domain"
)

func due(t time.Time) domain.Entregable {
	return domain.Entregable{FechaFinal: &t}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bucketValues(buckets []Bucket) map[string]int {
	m := make(map[string]int, len(buckets))
	for _, b := range buckets {
		m[b.Label] = b.Value
	}
	return m
}

func TestDueBuckets_OverdueAndToday(t *testing.T) {
	today := time.Date(2024, time.February, 20, 9, 30, 0, 0, time.UTC)

	got := bucketValues(DueBuckets([]domain.Entregable{
		due(date(2024, time.February, 19)),
		due(date(2024, time.February, 20)),
	}, today))

	assert.Equal(t, 1, got[BucketVencidas])
	assert.Equal(t, 1, got[BucketHoy])
}

func TestDueBuckets_Boundaries(t *testing.T) {
	today := date(2024, time.February, 20)

	tests := []struct {
		days int
		want string
	}{
		{days: -30, want: BucketVencidas},
		{days: -1, want: BucketVencidas},
		{days: 0, want: BucketHoy},
		{days: 1, want: BucketProx7},
		{days: 7, want: BucketProx7},
		{days: 8, want: BucketProx15},
		{days: 15, want: BucketProx15},
		{days: 16, want: BucketProx30},
		{days: 30, want: BucketProx30},
		{days: 31, want: BucketMasDe30},
		{days: 400, want: BucketMasDe30},
	}
	for _, tt := range tests {
		got := bucketValues(DueBuckets([]domain.Entregable{due(today.AddDate(0, 0, tt.days))}, today))
		assert.Equal(t, 1, got[tt.want], "days=%d", tt.days)
	}
}

func TestDueBuckets_Exhaustive(t *testing.T) {
	today := date(2024, time.February, 20)

	var entregables []domain.Entregable
	for d := -40; d <= 40; d++ {
		entregables = append(entregables, due(today.AddDate(0, 0, d)))
	}
	entregables = append(entregables, domain.Entregable{}, domain.Entregable{})

	buckets := DueBuckets(entregables, today)
	require.Len(t, buckets, 6)

	total := 0
	for _, b := range buckets {
		total += b.Value
	}
	assert.Equal(t, 81, total)
}

func TestDueBuckets_Order(t *testing.T) {
	buckets := DueBuckets(nil, time.Now())

	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
		assert.NotEmpty(t, b.Color)
		assert.Zero(t, b.Value)
	}
	assert.Equal(t, []string{BucketVencidas, BucketHoy, BucketProx7, BucketProx15, BucketProx30, BucketMasDe30}, labels)
}

func TestDaysUntil_LocalToday(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	// 22:00 in Bogotá is already the next day in UTC
	today := time.Date(2024, time.February, 20, 22, 0, 0, 0, bogota)

	assert.Equal(t, 0, DaysUntil(date(2024, time.February, 20), today))
	assert.Equal(t, -1, DaysUntil(date(2024, time.February, 19), today))
}
