package report

import (
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
	"github.com/ougirez/gerencia/internal/pkg/store"
)

// Filter is an exact or partial match on one column, exposed as /{Segment}/:value.
type Filter struct {
	Segment string
	Column  string
	Match   store.Match
}

// Lookup fetches a single record by a unique column, exposed as /{Segment}/:value.
type Lookup struct {
	Segment string
	Column  string
	// Label names the column in not found messages.
	Label string
	// Int parses the value as an integer before querying.
	Int bool
}

// Breakdown is a grouped count of Column published under Key.
type Breakdown struct {
	Key    string
	Column string
	Spec   aggregate.Spec
}

// DistinctCount is a count of distinct values of Column published under Key. Table
// defaults to the record table.
type DistinctCount struct {
	Key    string
	Column string
	Table  string
}

// Option is a filter option list of Column published under Key.
type Option struct {
	Key    string
	Column string
}

// Descriptor tells the generic service how a record type is stored, filtered and
// summarized.
type Descriptor[T any] struct {
	// Name is the route of the domain below /api.
	Name string
	// Entity names a record in not found messages.
	Entity   string
	Table    store.Table
	IDColumn string
	// SortKeys gives the display order, compared with Spanish collation.
	SortKeys func(*T) []string
	Search   []string
	// SearchParam is the query parameter of /search.
	SearchParam string
	Filters     []Filter
	Lookups     []Lookup
	// CountKey is the summary key of the total row count.
	CountKey    string
	Distincts   []DistinctCount
	Breakdowns  []Breakdown
	Options     []Option
	NotComputed []string
}

func (d *Descriptor[T]) filter(segment string) (Filter, bool) {
	for _, f := range d.Filters {
		if f.Segment == segment {
			return f, true
		}
	}
	return Filter{}, false
}

func (d *Descriptor[T]) lookup(segment string) (Lookup, bool) {
	for _, l := range d.Lookups {
		if l.Segment == segment {
			return l, true
		}
	}
	return Lookup{}, false
}

func (d *Descriptor[T]) breakdown(key string) (Breakdown, bool) {
	for _, b := range d.Breakdowns {
		if b.Key == key {
			return b, true
		}
	}
	return Breakdown{}, false
}

// str returns the value of a nullable column, "" when null.
func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
