package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/gerencia/internal/pkg/aggregate"
)

func groups(counts ...any) []aggregate.Group {
	var gs []aggregate.Group
	for i := 0; i < len(counts); i += 2 {
		gs = append(gs, aggregate.Group{Label: "cargo", Key: counts[i].(string), Count: counts[i+1].(int)})
	}
	return gs
}

func TestTopN_Truncates(t *testing.T) {
	got := TopN(groups("Analista", 1, "Gestor", 5, "Coordinador", 3, "Enlace", 1), 2, nil)

	require.Len(t, got.Bars, 2)
	assert.Equal(t, Bar{Label: "Gestor", Value: 5, Percentage: 50, Color: ChartColor(0)}, got.Bars[0])
	assert.Equal(t, Bar{Label: "Coordinador", Value: 3, Percentage: 30, Color: ChartColor(1)}, got.Bars[1])
	assert.Equal(t, 2, got.Remaining)
	assert.Equal(t, 10, got.Total)
	assert.Equal(t, "+2 más", got.More())
}

func TestTopN_KeepsAll(t *testing.T) {
	got := TopN(groups("Árbol", 1, "Zeta", 1, "Bote", 1), 0, nil)

	labels := make([]string, 0, len(got.Bars))
	for _, b := range got.Bars {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Árbol", "Bote", "Zeta"}, labels)
	assert.Zero(t, got.Remaining)
	assert.Empty(t, got.More())
}

func TestTopN_Palette(t *testing.T) {
	got := TopN(groups("Completado", 2, "Vencida", 1), 5, ByPalette(EstadoPMO))

	require.Len(t, got.Bars, 2)
	assert.Equal(t, "#22c55e", got.Bars[0].Color)
	assert.Equal(t, EstadoPMO.Default, got.Bars[1].Color)
}

func TestTopN_Empty(t *testing.T) {
	got := TopN(nil, 3, nil)

	assert.NotNil(t, got.Bars)
	assert.Zero(t, got.Total)
	assert.Empty(t, got.More())
}
