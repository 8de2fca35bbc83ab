package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "BOGOTA D.C.", Normalize("  Bogotá D.C. "))
	assert.Equal(t, "NARINO", Normalize("nariño"))
}

func TestSoftJoinMatchesNormalizedNames(t *testing.T) {
	dims := []string{"Antioquia", "Bogotá D.C.", "Nariño"}
	groups := []Group{
		{Key: "ANTIOQUIA", Count: 12},
		{Key: "bogota d.c.", Count: 3},
		{Key: "Narino ", Count: 1},
		{Key: "Atlantis", Count: 2},
		{Key: "Sin asignar", Count: 4},
	}

	got := SoftJoin(dims, groups, "Sin asignar", 10)

	require.Len(t, got.Rows, 3)
	assert.Equal(t, JoinRow{Key: "Antioquia", Count: 12, Effective: 10, Coverage: 100}, got.Rows[0])
	assert.Equal(t, JoinRow{Key: "Bogotá D.C.", Count: 3, Effective: 3, Coverage: 30}, got.Rows[1])
	assert.Equal(t, 1, got.Rows[2].Count)
	assert.Equal(t, []string{"Atlantis"}, got.Orphans)
	assert.Equal(t, 4, got.Unassigned)
}
