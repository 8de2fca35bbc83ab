package aggregate

import (
	"slices"

	"github.com/bytedance/sonic"
)

// RawPair is one row of a two-column GROUP BY.
type RawPair struct {
	A     *string `db:"grupo"`
	B     *string `db:"grupo_b"`
	Count int     `db:"cantidad"`
}

// PairGroup keeps the secondary dimension so that one primary key spanning several
// secondary values stays split.
type PairGroup struct {
	LabelA string
	A      string
	LabelB string
	B      string
	Count  int
}

func (p PairGroup) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(map[string]any{
		p.LabelA: p.A,
		p.LabelB: p.B,
		CountKey: p.Count,
	})
}

func PairGroups(raw []RawPair, a, b Spec) []PairGroup {
	type pairKey struct{ a, b string }

	counts := make(map[pairKey]int, len(raw))
	for _, r := range raw {
		counts[pairKey{KeyOrSentinel(r.A, a.Sentinel), KeyOrSentinel(r.B, b.Sentinel)}] += r.Count
	}

	groups := make([]PairGroup, 0, len(counts))
	for k, n := range counts {
		groups = append(groups, PairGroup{LabelA: a.Label, A: k.a, LabelB: b.Label, B: k.b, Count: n})
	}

	c := NewCollator()
	slices.SortFunc(groups, func(x, y PairGroup) int {
		if x.Count != y.Count {
			return y.Count - x.Count
		}
		if r := c.Compare(x.A, y.A); r != 0 {
			return r
		}
		return c.Compare(x.B, y.B)
	})
	return groups
}

func TwoKeyGroupCount[T any](records []T, keyA, keyB func(T) *string, a, b Spec) []PairGroup {
	raw := make([]RawPair, 0, len(records))
	for _, r := range records {
		raw = append(raw, RawPair{A: keyA(r), B: keyB(r), Count: 1})
	}
	return PairGroups(raw, a, b)
}
