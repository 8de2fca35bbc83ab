package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/constants"
	"github.com/ougirez/gerencia/internal/pkg/store"
	"github.com/ougirez/gerencia/internal/pkg/store/storetest"
)

var personalTable = store.Table{
	Name:    "tbl_personal_territorio",
	Columns: []string{"id_personal", "nro", "cargo", "nombre", "departamento", "empresa", "fecha_creacion"},
	OrderBy: []string{"id_personal"},
}

type personal struct {
	IDPersonal   int64   `db:"id_personal"`
	Nro          *int    `db:"nro"`
	Cargo        *string `db:"cargo"`
	Nombre       *string `db:"nombre"`
	Departamento *string `db:"departamento"`
	Empresa      *string `db:"empresa"`
	FechaCreacion *time.Time `db:"fecha_creacion"`
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository[personal](storetest.Open(t), personalTable)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.EqualValues(t, 1, all[0].IDPersonal)
	assert.Nil(t, all[3].Departamento)
	require.NotNil(t, all[0].FechaCreacion)
	assert.Equal(t, time.January, all[0].FechaCreacion.Month())

	fold, err := repo.List(ctx, store.Where(store.MatchFold, "departamento", "antioquia"))
	require.NoError(t, err)
	assert.Len(t, fold, 2)

	exact, err := repo.List(ctx, store.Where(store.MatchExact, "departamento", "antioquia"))
	require.NoError(t, err)
	assert.Empty(t, exact)
	assert.NotNil(t, exact)
}

func TestRepository_ListSearch(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository[personal](storetest.Open(t), personalTable)

	found, err := repo.List(ctx, store.Search([]string{"nombre", "cargo"}, "ANA"))
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Ana Pérez", *found[0].Nombre)
	assert.Equal(t, "Analista", *found[1].Cargo)

	none, err := repo.List(ctx, store.Search([]string{"nombre"}, "100%"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository[domain.Departamento](storetest.Open(t), store.Table{
		Name:    "dim_departamento",
		Columns: []string{"codigo_dane", "codigo", "departamento", "latitud", "longitud"},
	})

	dep, err := repo.Get(ctx, "codigo", "ANT")
	require.NoError(t, err)
	assert.Equal(t, 5, dep.CodigoDane)
	assert.True(t, dep.Latitud.Valid)

	cauca, err := repo.Get(ctx, "codigo_dane", 19)
	require.NoError(t, err)
	assert.False(t, cauca.Latitud.Valid)

	_, err = repo.Get(ctx, "codigo_dane", 999)
	require.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository[personal](storetest.Open(t), personalTable)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = repo.Count(ctx, store.Where(store.MatchExact, "empresa", "Acme"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.CountDistinct(ctx, "departamento")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	raw, err := repo.GroupCount(ctx, "departamento")
	require.NoError(t, err)
	groups := aggregate.Groups(raw, aggregate.Spec{Label: "departamento", Sentinel: "Sin asignar"})
	assert.Equal(t, n+1, len(groups))
	assert.Equal(t, 6, aggregate.Total(groups))
	assert.Equal(t, "Antioquia", groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)

	values, err := repo.Distinct(ctx, "empresa")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Acme", "Beta"}, values)
}

func TestStore_GroupCount2(t *testing.T) {
	ctx := context.Background()
	s := storetest.Open(t)

	raw, err := s.GroupCount2(ctx, "tbl_personal_citrep", "citrep", "departamento")
	require.NoError(t, err)

	pairs := aggregate.PairGroups(raw,
		aggregate.Spec{Label: "citrep", Sentinel: "Sin circunscripción"},
		aggregate.Spec{Label: "departamento", Sentinel: "Sin departamento"})
	require.Len(t, pairs, 4)
	assert.Equal(t, "CITREP 1", pairs[0].A)
	assert.Equal(t, "Cauca", pairs[0].B)
	assert.Equal(t, "CITREP 1", pairs[1].A)
	assert.Equal(t, "Nariño", pairs[1].B)
}

func TestStore_Empty(t *testing.T) {
	ctx := context.Background()
	s := storetest.Empty(t)

	n, err := s.Count(ctx, "tbl_seguimiento_entregables", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	raw, err := s.GroupCount(ctx, "tbl_seguimiento_entregables", "componente")
	require.NoError(t, err)
	assert.Empty(t, aggregate.Groups(raw, aggregate.Spec{Label: "componente", Sentinel: "Sin componente"}))
}
