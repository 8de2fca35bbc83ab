package aggregate

import (
	"slices"
	"strings"
)

// Options maps a filter name ("cargos", "estados_plazo") to its selectable values.
type Options map[string][]string

// Distinct returns the sorted, de-duplicated non-blank values.
func Distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	c := NewCollator()
	slices.SortFunc(out, c.Compare)
	return out
}

// FilterOptions builds the option lists for each named field.
func FilterOptions[T any](records []T, fields map[string]func(T) *string) Options {
	opts := make(Options, len(fields))
	for name, key := range fields {
		values := make([]string, 0, len(records))
		for _, r := range records {
			if v := key(r); v != nil {
				values = append(values, *v)
			}
		}
		opts[name] = Distinct(values)
	}
	return opts
}
