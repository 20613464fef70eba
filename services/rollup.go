package services

import (
	"sort"

	"github.com/samber/lo"

	"ecommerce-dashboard/models"
)

// RegionalRollup counts order rows per state, largest first. Equal counts
// keep alphabetical state order.
func RegionalRollup(rows []models.GeoOrder) []models.RegionRow {
	counts := lo.CountValuesBy(rows, func(g models.GeoOrder) string { return g.State })

	states := lo.Keys(counts)
	sort.Strings(states)

	out := make([]models.RegionRow, 0, len(states))
	for _, s := range states {
		out = append(out, models.RegionRow{State: s, TotalOrders: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalOrders > out[j].TotalOrders
	})
	return out
}

// CollapseTopN keeps the first n rows of a descending rollup and sums the
// rest into an Others row, which is always last whatever its size.
func CollapseTopN(rollup []models.RegionRow, n int) []models.RegionRow {
	if len(rollup) == 0 {
		return nil
	}
	if n > len(rollup) {
		n = len(rollup)
	}

	out := make([]models.RegionRow, 0, n+1)
	out = append(out, rollup[:n]...)
	others := lo.SumBy(rollup[n:], func(r models.RegionRow) int { return r.TotalOrders })
	return append(out, models.RegionRow{State: models.OthersLabel, TotalOrders: others})
}

// Share returns each row's percentage of the total, in row order.
func Share(rows []models.RegionRow) []float64 {
	total := lo.SumBy(rows, func(r models.RegionRow) int { return r.TotalOrders })
	out := make([]float64, len(rows))
	if total == 0 {
		return out
	}
	for i, r := range rows {
		out[i] = float64(r.TotalOrders) * 100 / float64(total)
	}
	return out
}
