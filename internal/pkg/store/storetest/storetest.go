// Package storetest opens an in-memory sqlite store with the reporting schema.
package storetest

import (
	"context"
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ougirez/gerencia/internal/pkg/store"
	"github.com/ougirez/gerencia/internal/pkg/store/xsql"
)

var (
	//go:embed schema.sql
	Schema string
	//go:embed fixtures.sql
	Fixtures string
)

// Empty returns a store over the schema with no rows.
func Empty(t testing.TB) *store.Store {
	t.Helper()
	return open(t, Schema)
}

// Open returns a store over the schema loaded with the fixtures.
func Open(t testing.TB) *store.Store {
	t.Helper()
	return open(t, Schema, Fixtures)
}

// With returns a store over the schema loaded with the given scripts only.
func With(t testing.TB, scripts ...string) *store.Store {
	t.Helper()
	return open(t, append([]string{Schema}, scripts...)...)
}

func open(t testing.TB, scripts ...string) *store.Store {
	t.Helper()

	db, err := xsql.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, s := range scripts {
		require.NoError(t, db.ExecScript(ctx, s))
	}
	return store.NewStore(db, "")
}
