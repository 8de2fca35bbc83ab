package aggregate

// JoinRow is one dimension member with the counts that matched it.
type JoinRow struct {
	Key       string  `json:"clave"`
	Count     int     `json:"cantidad"`
	Effective int     `json:"efectivos"`
	Coverage  float64 `json:"porcentaje"`
}

type JoinResult struct {
	Rows []JoinRow `json:"por_unidad"`
	// Orphans are group keys that matched no dimension member.
	Orphans    []string `json:"huerfanos"`
	Unassigned int      `json:"sin_asignar"`
}

// SoftJoin matches groups to dimension names by normalized string equality. No
// referential integrity is assumed: unmatched group keys are reported as orphans and
// the sentinel group is reported as unassigned.
func SoftJoin(dimension []string, groups []Group, sentinel string, capPerUnit int) JoinResult {
	index := make(map[string]int, len(dimension))
	res := JoinResult{Rows: make([]JoinRow, 0, len(dimension)), Orphans: []string{}}
	for _, name := range dimension {
		n := Normalize(name)
		if _, ok := index[n]; ok {
			continue
		}
		index[n] = len(res.Rows)
		res.Rows = append(res.Rows, JoinRow{Key: name})
	}

	for _, g := range groups {
		if g.Key == sentinel {
			res.Unassigned += g.Count
			continue
		}
		i, ok := index[Normalize(g.Key)]
		if !ok {
			res.Orphans = append(res.Orphans, g.Key)
			continue
		}
		res.Rows[i].Count += g.Count
	}

	for i := range res.Rows {
		res.Rows[i].Effective = Effective(res.Rows[i].Count, capPerUnit)
		res.Rows[i].Coverage = Percentage(res.Rows[i].Effective, capPerUnit)
	}
	res.Orphans = Distinct(res.Orphans)
	return res
}
