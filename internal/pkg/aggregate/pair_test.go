package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type citrepStaff struct {
	citrep *string
	dept   *string
}

func TestTwoKeyGroupCountKeepsSecondaryDimension(t *testing.T) {
	records := []citrepStaff{
		{citrep: ptr("CITREP 1"), dept: ptr("Cauca")},
		{citrep: ptr("CITREP 1"), dept: ptr("Cauca")},
		{citrep: ptr("CITREP 1"), dept: ptr("Nariño")},
		{citrep: ptr("CITREP 2"), dept: nil},
	}

	got := TwoKeyGroupCount(records,
		func(s citrepStaff) *string { return s.citrep },
		func(s citrepStaff) *string { return s.dept },
		Spec{Label: "citrep", Sentinel: "Sin citrep"},
		Spec{Label: "departamento", Sentinel: "Sin departamento"},
	)

	require.Len(t, got, 3)
	assert.Equal(t, PairGroup{LabelA: "citrep", A: "CITREP 1", LabelB: "departamento", B: "Cauca", Count: 2}, got[0])
	assert.Equal(t, "CITREP 1", got[1].A)
	assert.Equal(t, "Nariño", got[1].B)
	assert.Equal(t, "Sin departamento", got[2].B)

	// a single-key grouping would merge the first two rows
	single := GroupByCount(records, func(s citrepStaff) *string { return s.citrep }, Spec{Label: "citrep"})
	assert.Equal(t, 3, single[0].Count)
}
