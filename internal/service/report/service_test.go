package report_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/constants"
	"github.com/ougirez/gerencia/internal/pkg/store/storetest"
	"github.com/ougirez/gerencia/internal/service/report"
)

func names(records []*domain.Personal) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, *r.Nombre)
	}
	return out
}

func requireCode(t *testing.T, err error, code int) *constants.CodedError {
	t.Helper()
	var coded *constants.CodedError
	require.True(t, errors.As(err, &coded), "want coded error, got %v", err)
	require.Equal(t, code, coded.Code())
	return coded
}

func TestService_ListSortedByDisplayKeys(t *testing.T) {
	svc := report.NewService(storetest.Open(t), report.Personal())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 6)

	// null department first, then Spanish order of department and name
	assert.Equal(t, "Pedro Díaz", *got[0].Nombre)
	assert.Equal(t, []string{"Ana Pérez", "Luis Gómez"}, names(got[1:3]))
	assert.Equal(t, "Zoe Ruiz", *got[5].Nombre)
}

func TestService_SearchFallsBackToList(t *testing.T) {
	ctx := context.Background()
	svc := report.NewService(storetest.Open(t), report.Personal())

	all, err := svc.List(ctx)
	require.NoError(t, err)

	for _, q := range []string{"", "   "} {
		got, err := svc.Search(ctx, q)
		require.NoError(t, err)
		if diff := cmp.Diff(all, got); diff != "" {
			t.Errorf("Search(%q) mismatch (-list +search):\n%s", q, diff)
		}
	}
}

func TestService_Search(t *testing.T) {
	svc := report.NewService(storetest.Open(t), report.Personal())

	got, err := svc.Search(context.Background(), "ANA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Pérez", "Zoe Ruiz"}, names(got))
}

func TestService_GetNotFound(t *testing.T) {
	svc := report.NewService(storetest.Empty(t), report.SeguimientoPMO())

	_, err := svc.Get(context.Background(), 999)
	coded := requireCode(t, err, http.StatusNotFound)
	assert.Contains(t, coded.Error(), "999")
	assert.Equal(t, "Entregable con ID 999 no encontrado", coded.Error())
}

func TestService_Get(t *testing.T) {
	svc := report.NewService(storetest.Open(t), report.SeguimientoPMO())

	got, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Pruebas de software", *got.Actividad)
	require.NotNil(t, got.FechaFinal)
	assert.Equal(t, 15, got.FechaFinal.Day())
}

func TestService_Lookup(t *testing.T) {
	ctx := context.Background()
	svc := report.NewService(storetest.Open(t), report.Departamentos())

	dep, err := svc.Lookup(ctx, "dane", "5")
	require.NoError(t, err)
	assert.Equal(t, "Antioquia", dep.Departamento)

	dep, err = svc.Lookup(ctx, "codigo", "BOG")
	require.NoError(t, err)
	assert.Equal(t, 11, dep.CodigoDane)

	_, err = svc.Lookup(ctx, "dane", "abc")
	requireCode(t, err, http.StatusBadRequest)

	_, err = svc.Lookup(ctx, "codigo", "XXX")
	coded := requireCode(t, err, http.StatusNotFound)
	assert.Contains(t, coded.Error(), "XXX")
}

func TestService_Filter(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)

	personal := report.NewService(s, report.Personal())
	got, err := personal.Filter(ctx, "departamento", "ANTIOQUIA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Pérez", "Luis Gómez"}, names(got))

	citrep := report.NewService(s, report.PersonalCitrep())
	partial, err := citrep.Filter(ctx, "departamento", "antio")
	require.NoError(t, err)
	require.Len(t, partial, 2)
	assert.Equal(t, "Andrés Vega", *partial[0].Nombre)
	assert.Equal(t, "Beatriz Rojas", *partial[1].Nombre)

	kpis := report.NewService(s, report.KpisControlGerencia())
	byOwner, err := kpis.Filter(ctx, "responsable", "gerencia")
	require.NoError(t, err)
	assert.Len(t, byOwner, 2)

	_, err = kpis.Filter(ctx, "color", "rojo")
	requireCode(t, err, http.StatusNotFound)
}

func TestService_SummaryNotComputed(t *testing.T) {
	svc := report.NewService(storetest.Open(t), report.KpisSeguimiento())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Fields["total_kpis"])
	assert.Equal(t, 2, summary.Fields["total_componentes"])
	assert.Equal(t, []string{"kpis_por_encima_meta", "kpis_por_debajo_meta"}, summary.NotComputed)
	assert.Contains(t, summary.Fields, "kpis_por_encima_meta")
	assert.Nil(t, summary.Fields["kpis_por_encima_meta"])

	groups, ok := summary.Fields["por_componente"].([]aggregate.Group)
	require.True(t, ok)
	require.Len(t, groups, 2)
	assert.Equal(t, "Logística", groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, []string{"promedio_cumplimiento"}, groups[0].NotComputed)

	periods := summary.Fields["por_periodo"].([]aggregate.Group)
	assert.Equal(t, []string{"Diaria", "Mensual", "Semanal"}, []string{periods[0].Key, periods[1].Key, periods[2].Key})
}

func TestService_SummaryTotals(t *testing.T) {
	svc := report.NewService(storetest.Open(t), report.SeguimientoPMO())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	total := summary.Fields["total_entregables"].(int)
	for _, key := range []string{"por_estado_plazo", "por_estado_ejecucion", "por_componente", "por_tipo", "por_responsable"} {
		groups := summary.Fields[key].([]aggregate.Group)
		assert.Equal(t, total, aggregate.Total(groups), key)
	}

	byComponent := summary.Fields["por_componente"].([]aggregate.Group)
	assert.Equal(t, "Sin componente", byComponent[1].Key)
	assert.Empty(t, summary.NotComputed)
}

func TestService_SummaryEmpty(t *testing.T) {
	svc := report.NewService(storetest.Empty(t), report.IndicadoresCargos())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Fields["total_indicadores"])
	assert.Empty(t, summary.Fields["por_cargo"])
}

func TestService_Breakdown(t *testing.T) {
	ctx := context.Background()
	svc := report.NewService(storetest.Open(t), report.IndicadoresCargos())

	freq, err := svc.Breakdown(ctx, "por_frecuencia")
	require.NoError(t, err)
	require.Len(t, freq, 2)
	assert.Equal(t, aggregate.Group{Label: "frecuencia", Key: "Mensual", Count: 2}, freq[0])

	results, err := svc.Breakdown(ctx, "por_resultado")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Sin resultado", results[2].Key)

	_, err = svc.Breakdown(ctx, "por_color")
	assert.Error(t, err)
}

func TestService_FilterOptions(t *testing.T) {
	svc := report.NewService(storetest.Open(t), report.Personal())

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Analista", "Coordinador", "Gestor"}, opts["cargos"])
	assert.Equal(t, []string{"Acme", "Beta"}, opts["empresas"])
	assert.Len(t, opts["departamentos"], 4)
}
