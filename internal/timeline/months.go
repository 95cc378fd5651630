package timeline

import (
	"github.com/segyhp/loan-guide/internal/domain"
)

// GroupByMonth buckets rows by their month label. Buckets come out in the order
// their label is first seen and rows keep their relative order.
func GroupByMonth(rows []domain.TimelineRow) domain.MonthGroups {
	groups := make(domain.MonthGroups, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Month]
		if !ok {
			i = len(groups)
			index[row.Month] = i
			groups = append(groups, domain.MonthGroup{Month: row.Month})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}
