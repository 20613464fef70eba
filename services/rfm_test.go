package services

import (
	"testing"

	"ecommerce-dashboard/models"
)

func TestComputeRFMExample(t *testing.T) {
	rows := []models.OrderPayment{
		{OrderID: "a", CustomerUniqueID: "C1", DeliveredAt: at(2018, 3, 1, 10), PaymentValue: 10},
		{OrderID: "b", CustomerUniqueID: "C1", DeliveredAt: at(2018, 3, 3, 10), PaymentValue: 20},
		{OrderID: "c", CustomerUniqueID: "C1", DeliveredAt: at(2018, 3, 5, 18), PaymentValue: 30},
		{OrderID: "d", CustomerUniqueID: "C2", DeliveredAt: at(2018, 2, 24, 23), PaymentValue: 7},
	}

	got := ComputeRFM(rows)
	if len(got) != 2 {
		t.Fatalf("rows: got %d, want 2", len(got))
	}

	c1 := got[0]
	if c1.CustomerUniqueID != "C1" || c1.Frequency != 3 || c1.Monetary != 60 || c1.Recency != 0 {
		t.Errorf("C1: got %+v, want frequency=3 monetary=60 recency=0", c1)
	}
	// Feb 24 23:00 → Mar 5 counts calendar days, not elapsed hours.
	if got[1].Recency != 9 {
		t.Errorf("C2 recency: got %d, want 9", got[1].Recency)
	}
}

func TestComputeRFMEmpty(t *testing.T) {
	if got := ComputeRFM(nil); len(got) != 0 {
		t.Errorf("expected no rows, got %d", len(got))
	}
}

func TestRankRFM(t *testing.T) {
	rfm := []models.RFMRow{
		{CustomerUniqueID: "a", Recency: 5, Frequency: 1, Monetary: 10},
		{CustomerUniqueID: "b", Recency: 0, Frequency: 4, Monetary: 10},
		{CustomerUniqueID: "c", Recency: 0, Frequency: 2, Monetary: 99},
		{CustomerUniqueID: "d", Recency: 30, Frequency: 4, Monetary: 1},
	}

	got := RankRFM(rfm, 2)

	if ids(got.ByRecency) != "b,c" {
		t.Errorf("ByRecency: got %s, want b,c", ids(got.ByRecency))
	}
	if ids(got.ByFrequency) != "b,d" {
		t.Errorf("ByFrequency: got %s, want b,d", ids(got.ByFrequency))
	}
	if ids(got.ByMonetary) != "c,a" {
		t.Errorf("ByMonetary: got %s, want c,a", ids(got.ByMonetary))
	}
	if rfm[0].CustomerUniqueID != "a" {
		t.Error("RankRFM must not reorder its input")
	}
}

func ids(rows []models.RFMRow) string {
	s := ""
	for i, r := range rows {
		if i > 0 {
			s += ","
		}
		s += r.CustomerUniqueID
	}
	return s
}
