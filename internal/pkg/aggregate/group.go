package aggregate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
)

// CountKey is the JSON key holding the size of a group.
const CountKey = "cantidad"

type Order int

const (
	// ByCount sorts groups by descending count, ties by key.
	ByCount Order = iota
	// ByKey sorts groups by key for orderable dimensions (frequency, buckets).
	ByKey
)

// Spec describes how one category field is grouped.
type Spec struct {
	Label    string // JSON key carrying the group value, e.g. "departamento"
	Sentinel string // label for null or blank values, e.g. "Sin cargo"
	Order    Order
	// NotComputed lists per-group fields emitted as null.
	NotComputed []string
}

// RawCount is one row of a GROUP BY query. Key is nil for the NULL group.
type RawCount struct {
	Key   *string `db:"grupo"`
	Count int     `db:"cantidad"`
}

type Group struct {
	Label       string
	Key         string
	Count       int
	NotComputed []string
}

func (g Group) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 2+len(g.NotComputed))
	for _, k := range g.NotComputed {
		m[k] = nil
	}
	m[g.Label] = g.Key
	m[CountKey] = g.Count
	return sonic.Marshal(m)
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := sonic.Unmarshal(data, &m); err != nil {
		return err
	}

	g.NotComputed = nil
	labels := make([]string, 0, 1)
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			g.NotComputed = append(g.NotComputed, k)
		case float64:
			if k == CountKey {
				g.Count = int(val)
			}
		case string:
			labels = append(labels, k)
		}
	}
	if len(labels) != 1 {
		return fmt.Errorf("group: expected exactly one label field, got %d", len(labels))
	}
	g.Label = labels[0]
	g.Key = m[g.Label].(string)
	slices.Sort(g.NotComputed)
	return nil
}

// KeyOrSentinel returns *key, or sentinel when key is null or blank.
func KeyOrSentinel(key *string, sentinel string) string {
	if key == nil || strings.TrimSpace(*key) == "" {
		return sentinel
	}
	return *key
}

// Groups merges raw counts into one group per key. Null and blank keys land in the
// sentinel group.
func Groups(raw []RawCount, spec Spec) []Group {
	counts := make(map[string]int, len(raw))
	for _, r := range raw {
		counts[KeyOrSentinel(r.Key, spec.Sentinel)] += r.Count
	}

	groups := make([]Group, 0, len(counts))
	for k, n := range counts {
		groups = append(groups, Group{Label: spec.Label, Key: k, Count: n, NotComputed: spec.NotComputed})
	}
	sortGroups(groups, spec.Order)
	return groups
}

func sortGroups(groups []Group, order Order) {
	c := NewCollator()
	slices.SortFunc(groups, func(a, b Group) int {
		if order == ByCount && a.Count != b.Count {
			return b.Count - a.Count
		}
		return c.Compare(a.Key, b.Key)
	})
}

// Count returns the number of records.
func Count[T any](records []T) int {
	return len(records)
}

// GroupByCount partitions records by the value key returns.
func GroupByCount[T any](records []T, key func(T) *string, spec Spec) []Group {
	raw := make([]RawCount, 0, len(records))
	for _, r := range records {
		raw = append(raw, RawCount{Key: key(r), Count: 1})
	}
	return Groups(raw, spec)
}

// DistinctCount counts unique non-null values.
func DistinctCount[T any](records []T, key func(T) *string) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		if v := key(r); v != nil {
			seen[*v] = struct{}{}
		}
	}
	return len(seen)
}

// Total sums the counts of groups.
func Total(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}
