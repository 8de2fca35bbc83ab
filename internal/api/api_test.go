package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/store"
	"github.com/ougirez/gerencia/internal/pkg/store/storetest"
	"github.com/ougirez/gerencia/internal/pkg/store/xsql"
)

func newTestAPI(t *testing.T, s *store.Store) *APIService {
	t.Helper()
	svc, err := NewAPIService(s, Options{CORSOrigins: []string{"*"}, CoverageCap: 10})
	require.NoError(t, err)
	return svc
}

func get(t *testing.T, svc *APIService, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	svc.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestAPI_RoutePrecedence(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	for _, domainName := range []string{
		"personal",
		"circunscripciones/personal",
		"indicadores-cargos",
		"kpis-control-gerencia",
		"kpis-seguimiento",
		"seguimiento-pmo",
	} {
		t.Run(domainName, func(t *testing.T) {
			rec := get(t, svc, "/api/"+domainName+"/resumen")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			body := decode[map[string]any](t, rec)
			assert.NotContains(t, body, "message")

			rec = get(t, svc, "/api/"+domainName+"/filtros")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestAPI_NotFound(t *testing.T) {
	svc := newTestAPI(t, storetest.Empty(t))

	rec := get(t, svc, "/api/seguimiento-pmo/999")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decode[domain.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Contains(t, body.Message, "999")
}

func TestAPI_BadID(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/kpis-seguimiento/abc")
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, http.StatusBadRequest, decode[domain.ErrorResponse](t, rec).Code)
}

func TestAPI_SearchFallback(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	list := get(t, svc, "/api/personal")
	require.Equal(t, http.StatusOK, list.Code)

	for _, target := range []string{"/api/personal/search", "/api/personal/search?nombre="} {
		rec := get(t, svc, target)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, list.Body.String(), rec.Body.String(), target)
	}

	rec := get(t, svc, "/api/personal/search?nombre=ana")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	svc := newTestAPI(t, storetest.Empty(t))

	rec := get(t, svc, "/api/seguimiento-pmo")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAPI_Get(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/indicadores-cargos/1")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, float64(1), body["id_indicador"])
	assert.Equal(t, "Visitas", body["indicador"])
}

func TestAPI_Departamentos(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/departamentos/dane/5")
	require.Equal(t, http.StatusOK, rec.Code)
	dep := decode[domain.DepartamentoResponse](t, rec)
	assert.Equal(t, "ANT", dep.Codigo)
	require.NotNil(t, dep.Latitud)
	assert.InDelta(t, 6.2442, *dep.Latitud, 1e-9)

	rec = get(t, svc, "/api/departamentos/codigo/ZZZ")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[domain.ErrorResponse](t, rec).Message, "ZZZ")

	rec = get(t, svc, "/api/departamentos")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]domain.DepartamentoResponse](t, rec)
	require.Len(t, all, 4)
	assert.Equal(t, "Antioquia", all[0].Departamento)
	assert.Nil(t, all[3].Latitud)
}

func TestAPI_Filters(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/personal/departamento/antioquia")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = get(t, svc, "/api/seguimiento-pmo/estado-plazo/Vencida")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = get(t, svc, "/api/circunscripciones/personal/citrep/CITREP%201")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)
}

func TestAPI_SummaryBody(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/kpis-seguimiento/resumen")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, float64(3), body["total_kpis"])
	assert.Contains(t, body, "kpis_por_encima_meta")
	assert.Nil(t, body["kpis_por_encima_meta"])
	assert.ElementsMatch(t, []any{"kpis_por_encima_meta", "kpis_por_debajo_meta"}, body["no_calculado"])

	groups := body["por_componente"].([]any)
	first := groups[0].(map[string]any)
	assert.Equal(t, "Logística", first["componente"])
	assert.Equal(t, float64(2), first["cantidad"])
	assert.Contains(t, first, "promedio_cumplimiento")
}

func TestAPI_Staffing(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/personal/agrupado")
	require.Equal(t, http.StatusOK, rec.Code)
	grouped := decode[[]map[string]any](t, rec)
	require.Len(t, grouped, 5)
	assert.Equal(t, "Antioquia", grouped[0]["departamento"])
	assert.Equal(t, float64(2), grouped[0]["total_agentes"])
	assert.Len(t, grouped[0]["agentes"], 2)

	rec = get(t, svc, "/api/circunscripciones/personal/por-circunscripcion")
	require.Equal(t, http.StatusOK, rec.Code)
	pairs := decode[[]map[string]any](t, rec)
	require.Len(t, pairs, 4)
	assert.Equal(t, "CITREP 1", pairs[0]["citrep"])

	rec = get(t, svc, "/api/personal/cobertura")
	require.Equal(t, http.StatusOK, rec.Code)
	cov := decode[map[string]any](t, rec)
	assert.Equal(t, float64(10), cov["porcentaje"])
	assert.Equal(t, []any{"Narnia"}, cov["huerfanos"])
}

func TestAPI_StaffSummaryKeys(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	for target, total := range map[string]float64{
		"/api/personal/resumen":                   6,
		"/api/circunscripciones/personal/resumen": 4,
	} {
		rec := get(t, svc, target)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[map[string]any](t, rec)
		assert.Equal(t, total, body["total_agentes"], target)
		assert.NotContains(t, body, "total_personal", target)
	}
}

func TestAPI_InternalErrorHidesCause(t *testing.T) {
	db, err := xsql.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(db.Close)
	svc := newTestAPI(t, store.NewStore(db, ""))

	rec := get(t, svc, "/api/personal")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode[domain.ErrorResponse](t, rec)
	assert.Equal(t, internalErrorMessage, body.Message)
	assert.NotContains(t, rec.Body.String(), "no such table")
}

func TestAPI_RequestID(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/departamentos")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_UnknownRoute(t *testing.T) {
	svc := newTestAPI(t, storetest.Open(t))

	rec := get(t, svc, "/api/desconocido")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decode[domain.ErrorResponse](t, rec).Code)
}
