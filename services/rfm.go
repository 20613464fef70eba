package services

import (
	"sort"

	"github.com/samber/lo"

	"ecommerce-dashboard/models"
)

// ComputeRFM builds one row per customer, ordered by customer id.
//
// Recency is measured in whole days from the latest delivery day in rows,
// so the most recent customer always has recency 0.
func ComputeRFM(rows []models.OrderPayment) []models.RFMRow {
	if len(rows) == 0 {
		return nil
	}

	groups := lo.GroupBy(rows, func(p models.OrderPayment) string { return p.CustomerUniqueID })

	latest := models.Day(lo.MaxBy(rows, func(a, b models.OrderPayment) bool {
		return a.DeliveredAt.After(b.DeliveredAt)
	}).DeliveredAt)

	ids := lo.Keys(groups)
	sort.Strings(ids)

	out := make([]models.RFMRow, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		last := models.Day(lo.MaxBy(g, func(a, b models.OrderPayment) bool {
			return a.DeliveredAt.After(b.DeliveredAt)
		}).DeliveredAt)

		out = append(out, models.RFMRow{
			CustomerUniqueID: id,
			Recency:          int(latest.Sub(last).Hours() / 24),
			Frequency:        len(g),
			Monetary:         lo.SumBy(g, func(p models.OrderPayment) float64 { return p.PaymentValue }),
		})
	}
	return out
}

// RankRFM picks the n most recent, most frequent and highest spending
// customers. Ties keep the order of rfm.
func RankRFM(rfm []models.RFMRow, n int) models.RFMRanking {
	return models.RFMRanking{
		ByRecency:   topBy(rfm, n, func(a, b models.RFMRow) bool { return a.Recency < b.Recency }),
		ByFrequency: topBy(rfm, n, func(a, b models.RFMRow) bool { return a.Frequency > b.Frequency }),
		ByMonetary:  topBy(rfm, n, func(a, b models.RFMRow) bool { return a.Monetary > b.Monetary }),
	}
}

func topBy(rfm []models.RFMRow, n int, less func(a, b models.RFMRow) bool) []models.RFMRow {
	sorted := make([]models.RFMRow, len(rfm))
	copy(sorted, rfm)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
