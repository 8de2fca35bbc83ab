package dashboard

import (
	"fmt"
	"slices"

	"github.com/ougirez/gerencia/internal/pkg/aggregate"
)

// Bar is one bar of a chart.
type Bar struct {
	Label      string  `json:"label"`
	Value      int     `json:"value"`
	Percentage float64 `json:"porcentaje"`
	Color      string  `json:"color"`
}

// Truncated is the head of a bar chart with the number of entries left out.
type Truncated struct {
	Bars []Bar `json:"barras"`
	// Remaining is the number of groups not shown.
	Remaining int `json:"restantes"`
	Total     int `json:"total"`
}

// More is the "+K más" caption of the hidden tail, empty when nothing is hidden.
func (t Truncated) More() string {
	if t.Remaining <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d más", t.Remaining)
}

// TopN keeps the n largest groups. Each bar carries its share of the total of all
// groups, hidden ones included. A non-positive n keeps every group.
func TopN(groups []aggregate.Group, n int, palette func(i int, label string) string) Truncated {
	sorted := slices.Clone(groups)
	c := aggregate.NewCollator()
	slices.SortStableFunc(sorted, func(a, b aggregate.Group) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return c.Compare(a.Key, b.Key)
	})

	total := aggregate.Total(sorted)
	shown := sorted
	if n > 0 && len(sorted) > n {
		shown = sorted[:n]
	}

	bars := make([]Bar, 0, len(shown))
	for i, g := range shown {
		color := ChartColor(i)
		if palette != nil {
			color = palette(i, g.Key)
		}
		bars = append(bars, Bar{
			Label:      g.Key,
			Value:      g.Count,
			Percentage: aggregate.Percentage(g.Count, total),
			Color:      color,
		})
	}
	return Truncated{Bars: bars, Remaining: len(sorted) - len(shown), Total: total}
}

// ByPalette colours bars by label.
func ByPalette(p Palette) func(int, string) string {
	return func(_ int, label string) string {
		return p.Color(label)
	}
}
