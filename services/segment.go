package services

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"ecommerce-dashboard/models"
)

// DefaultTier is the value tier the highest value groups are drawn from.
const DefaultTier = "Sangat tinggi"

type segmentKey struct {
	paymentType string
	tier        string
}

// Segment groups payment rows by (payment type, value tier) and returns
// the groups of the given tier, ordered by payment type. Each row names
// the k most frequent states of its group.
func Segment(rows []models.OrderPayment, tier string, k int) []models.SegmentRow {
	groups := lo.GroupBy(
		lo.Filter(rows, func(p models.OrderPayment, _ int) bool { return p.ValueTier == tier }),
		func(p models.OrderPayment) segmentKey { return segmentKey{p.PaymentType, p.ValueTier} },
	)

	keys := lo.Keys(groups)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].paymentType != keys[j].paymentType {
			return keys[i].paymentType < keys[j].paymentType
		}
		return keys[i].tier < keys[j].tier
	})

	out := make([]models.SegmentRow, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		total := lo.SumBy(g, func(p models.OrderPayment) float64 { return p.PaymentValue })
		states := lo.Map(g, func(p models.OrderPayment, _ int) string { return p.CustomerState })

		out = append(out, models.SegmentRow{
			PaymentType:     key.paymentType,
			ValueTier:       key.tier,
			TotalOrders:     len(g),
			UniqueCustomers: len(lo.UniqBy(g, func(p models.OrderPayment) string { return p.CustomerUniqueID })),
			TopStates:       strings.Join(TopKValues(states, k), ", "),
			MeanPayment:     total / float64(len(g)),
		})
	}
	return out
}

// TopKValues returns the k most frequent values, most frequent first.
// Equal frequencies keep first-appearance order.
func TopKValues(values []string, k int) []string {
	counts := lo.CountValues(values)
	uniq := lo.Uniq(values)
	sort.SliceStable(uniq, func(i, j int) bool {
		return counts[uniq[i]] > counts[uniq[j]]
	})
	if len(uniq) > k {
		uniq = uniq[:k]
	}
	return uniq
}
