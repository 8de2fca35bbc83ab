package dashboard

import (
	"github.com/ougirez/gerencia/internal/pkg/aggregate"
)

// Cobertura is a coverage figure with its colour.
type Cobertura struct {
	aggregate.Coverage
	Band Band `json:"banda"`
}

// NationalCoverage relates the capped group counts to units*capPerUnit. Groups keyed
// skip do not count.
func NationalCoverage(groups []aggregate.Group, units, capPerUnit int, skip string) Cobertura {
	cov := aggregate.CoverageOf(groups, units, capPerUnit, skip)
	return Cobertura{Coverage: cov, Band: PercentageBand(cov.Percentage)}
}

// UnitCoverage is the coverage of a single unit with count agents.
func UnitCoverage(count, capPerUnit int) Cobertura {
	cov := aggregate.CoverageOf([]aggregate.Group{{Count: count}}, 1, capPerUnit, "")
	return Cobertura{Coverage: cov, Band: PercentageBand(cov.Percentage)}
}

// CountsByKey sums group counts per normalized key.
func CountsByKey(groups []aggregate.Group) map[string]int {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[aggregate.Normalize(g.Key)] += g.Count
	}
	return counts
}
